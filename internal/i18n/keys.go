// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess     = "success"
	KeyError       = "error"
	KeyRateLimited = "common.rate_limited"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyProductMoved    = "product.moved"
	KeyReviewAdded     = "review.added"

	// Orders
	KeyOrderNotFound       = "order.not_found"
	KeyOrderNoSelection    = "order.no_selection"
	KeyOrderBatchComplete  = "order.batch_complete" // plural: _one / _other
	KeyOrderExportSuccess  = "order.export_success"
	KeyOrderExportArchived = "order.export_archived"

	// Cart
	KeyCartItemAdded       = "cart.item_added"
	KeyCartItemRemoved     = "cart.item_removed"
	KeyCartCheckoutSuccess = "cart.checkout_success"

	// Validation
	KeyValidationInvalid    = "validation.invalid"
	KeyValidationOutOfRange = "validation.out_of_range"
)
