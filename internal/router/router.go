// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/commerce-dashboard/internal/config"
	"github.com/javajoker/commerce-dashboard/internal/handlers"
	"github.com/javajoker/commerce-dashboard/internal/middleware"
	"github.com/javajoker/commerce-dashboard/internal/services"
)

// Services are the collaborators the HTTP layer calls into. They are built
// by the caller so tests can supply their own.
type Services struct {
	Catalog       *services.CatalogService
	Orders        *services.OrderService
	Cart          *services.CartService
	Notifications *services.NotificationService
	Storage       *services.StorageService
}

// Initialize builds the engine. Background work started here (rate limiter
// cleanup) stops when ctx is done.
func Initialize(ctx context.Context, cfg *config.Config, svc Services) *gin.Engine {
	productHandler := handlers.NewProductHandler(svc.Catalog)
	orderHandler := handlers.NewOrderHandler(svc.Orders, svc.Notifications, svc.Storage)
	cartHandler := handlers.NewCartHandler(svc.Cart, svc.Catalog, svc.Notifications)
	dashboardHandler := handlers.NewDashboardHandler(svc.Catalog, svc.Orders, svc.Cart)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.NewRateLimiterFromConfig(ctx, cfg.RateLimit).Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard/stats", dashboardHandler.GetStats)

		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.POST("/move", productHandler.MoveProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.GET("/:id/reviews", productHandler.GetReviews)
			products.POST("/:id/reviews", productHandler.SubmitReview)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("/select-all", orderHandler.SelectAll)
			orders.DELETE("/selection", orderHandler.ClearSelection)
			orders.POST("/batch-advance", orderHandler.BatchAdvance)
			orders.GET("/export", orderHandler.ExportOrders)
			orders.POST("/export/archive", orderHandler.ArchiveExport)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/toggle-select", orderHandler.ToggleSelect)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:position", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
		}
	}

	return r
}
