// internal/handlers/cart.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/i18n"
	"github.com/javajoker/commerce-dashboard/internal/services"
	"github.com/javajoker/commerce-dashboard/internal/utils"
)

type CartHandler struct {
	cartService         *services.CartService
	catalogService      *services.CatalogService
	notificationService *services.NotificationService
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService, notificationService *services.NotificationService) *CartHandler {
	return &CartHandler{
		cartService:         cartService,
		catalogService:      catalogService,
		notificationService: notificationService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"cart": h.cartService.Summary(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.GetProduct(uuid.MustParse(req.ProductID))
	if err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	h.cartService.AddToCart(*product)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"cart":    h.cartService.Summary(),
	})
}

// DELETE /cart/items/:position
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "position"), nil)
		return
	}

	if _, err := h.cartService.RemoveFromCart(position); err != nil {
		respondError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
		"cart":    h.cartService.Summary(),
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	itemCount := h.cartService.ItemCount()
	total := h.cartService.Checkout()

	if err := h.notificationService.NotifyCheckout(c.Request.Context(), total, itemCount); err != nil {
		logrus.WithError(err).Warn("Checkout notice not delivered")
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCheckoutSuccess, "$"+total.StringFixed(2)),
		"total":   total,
	})
}
