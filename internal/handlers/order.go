// internal/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/i18n"
	"github.com/javajoker/commerce-dashboard/internal/models"
	"github.com/javajoker/commerce-dashboard/internal/services"
	"github.com/javajoker/commerce-dashboard/internal/utils"
)

type OrderHandler struct {
	orderService        *services.OrderService
	notificationService *services.NotificationService
	storageService      *services.StorageService
}

func NewOrderHandler(orderService *services.OrderService, notificationService *services.NotificationService, storageService *services.StorageService) *OrderHandler {
	return &OrderHandler{
		orderService:        orderService,
		notificationService: notificationService,
		storageService:      storageService,
	}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	orders := h.orderService.ListOrders()

	if status := c.Query("status"); status != "" {
		orderStatus := models.OrderStatus(status)
		if !orderStatus.Valid() {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "status"), nil)
			return
		}
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == orderStatus {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	utils.SuccessResponse(c, gin.H{
		"orders":    orders,
		"selection": h.orderService.Selection(),
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, err, i18n.KeyOrderNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// POST /orders/:id/toggle-select
func (h *OrderHandler) ToggleSelect(c *gin.Context) {
	selection, err := h.orderService.ToggleSelect(c.Param("id"))
	if err != nil {
		respondError(c, err, i18n.KeyOrderNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"selection": selection,
	})
}

// POST /orders/select-all
func (h *OrderHandler) SelectAll(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"selection": h.orderService.SelectAll(),
	})
}

// DELETE /orders/selection
func (h *OrderHandler) ClearSelection(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"selection": h.orderService.ClearSelection(),
	})
}

// POST /orders/batch-advance
func (h *OrderHandler) BatchAdvance(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	result, err := h.orderService.BatchAdvance()
	if err != nil {
		respondError(c, err, i18n.KeyOrderNotFound)
		return
	}

	// The batch already happened; a broker outage must not turn it into an error.
	if err := h.notificationService.NotifyBatchProcessed(c.Request.Context(), result); err != nil {
		logrus.WithError(err).Warn("Batch notice not delivered")
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.TN(lang, i18n.KeyOrderBatchComplete, result.Processed, result.Processed),
		"result":  result,
		"orders":  h.orderService.ListOrders(),
	})
}

// GET /orders/export
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	report := h.orderService.ExportReport()

	if err := h.notificationService.NotifyReportExported(c.Request.Context(), report, ""); err != nil {
		logrus.WithError(err).Warn("Export notice not delivered")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Header("X-Export-Rows", strconv.Itoa(report.Rows))
	c.Header("X-Export-Message", i18n.T(lang, i18n.KeyOrderExportSuccess, report.Rows))
	c.Data(http.StatusOK, report.ContentType, []byte(report.Content))
}

// POST /orders/export/archive
func (h *OrderHandler) ArchiveExport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	report := h.orderService.ExportReport()

	result, err := h.storageService.SaveReport(c.Request.Context(), report)
	if err != nil {
		logrus.WithError(err).WithField("file_name", report.FileName).Error("Failed to archive export")
		utils.InternalErrorResponse(c, "")
		return
	}

	if err := h.notificationService.NotifyReportExported(c.Request.Context(), report, result.URL); err != nil {
		logrus.WithError(err).Warn("Export notice not delivered")
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderExportArchived, report.FileName),
		"report":  report,
		"upload":  result,
	})
}
