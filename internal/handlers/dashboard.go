// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/commerce-dashboard/internal/services"
	"github.com/javajoker/commerce-dashboard/internal/utils"
)

type DashboardHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
	cartService    *services.CartService
}

func NewDashboardHandler(catalogService *services.CatalogService, orderService *services.OrderService, cartService *services.CartService) *DashboardHandler {
	return &DashboardHandler{
		catalogService: catalogService,
		orderService:   orderService,
		cartService:    cartService,
	}
}

// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	cart := h.cartService.Summary()

	utils.SuccessResponse(c, gin.H{
		"catalog": h.catalogService.Stats(),
		"orders": gin.H{
			"by_status": h.orderService.StatusCounts(),
			"selection": h.orderService.Selection(),
		},
		"cart": gin.H{
			"item_count": cart.ItemCount,
			"total":      cart.Total,
		},
	})
}
