package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

func testOrder(id string, status models.OrderStatus) models.Order {
	return models.Order{
		ID:       id,
		Customer: "Customer " + id,
		Date:     "2023-06-15",
		Amount:   decimal.RequireFromString("10.00"),
		Status:   status,
		Items:    []models.OrderItem{{Name: "Item", Price: decimal.RequireFromString("10.00"), Quantity: 1}},
	}
}

func newTestOrders(statuses ...models.OrderStatus) *OrderService {
	seed := make([]models.Order, len(statuses))
	for i, st := range statuses {
		seed[i] = testOrder(string(rune('A'+i)), st)
	}
	return NewOrderService(seed, fixedClock(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)))
}

func statusOf(t *testing.T, svc *OrderService, id string) models.OrderStatus {
	t.Helper()
	o, err := svc.GetOrder(id)
	require.NoError(t, err)
	return o.Status
}

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		to   models.OrderStatus
		ok   bool
	}{
		{models.OrderStatusPending, models.OrderStatusShipped, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusDelivered, "", false},
		{models.OrderStatusCancelled, "", false},
	}
	for _, tt := range tests {
		next, ok := tt.from.Next()
		assert.Equal(t, tt.ok, ok, string(tt.from))
		if ok {
			assert.Equal(t, tt.to, next)
		}
	}
}

func TestToggleSelect(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusShipped)

	sel, err := svc.ToggleSelect("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, sel.SelectedIDs)
	assert.False(t, sel.AllSelected)

	sel, err = svc.ToggleSelect("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sel.SelectedIDs)
	assert.True(t, sel.AllSelected)

	sel, err = svc.ToggleSelect("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, sel.SelectedIDs)
	assert.Equal(t, 1, sel.Selected)
	assert.Equal(t, 2, sel.Total)

	_, err = svc.ToggleSelect("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"B"}, svc.Selection().SelectedIDs)
}

func TestSelectAll(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusShipped, models.OrderStatusDelivered)

	_, err := svc.ToggleSelect("B")
	require.NoError(t, err)

	sel := svc.SelectAll()
	assert.Equal(t, []string{"A", "B", "C"}, sel.SelectedIDs)
	assert.True(t, sel.AllSelected)

	sel = svc.SelectAll()
	assert.Empty(t, sel.SelectedIDs)
	assert.False(t, sel.AllSelected)
}

func TestSelectAllWithNoOrders(t *testing.T) {
	svc := NewOrderService(nil, nil)
	sel := svc.SelectAll()
	assert.Empty(t, sel.SelectedIDs)
	assert.Equal(t, 0, sel.Total)
}

func TestClearSelection(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusShipped)
	svc.SelectAll()

	sel := svc.ClearSelection()
	assert.Empty(t, sel.SelectedIDs)
	assert.Empty(t, svc.Selection().SelectedIDs)
}

func TestBatchAdvance(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusShipped, models.OrderStatusPending)
	_, err := svc.ToggleSelect("A")
	require.NoError(t, err)
	_, err = svc.ToggleSelect("B")
	require.NoError(t, err)

	result, err := svc.BatchAdvance()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, []string{"A", "B"}, result.OrderIDs)

	assert.Equal(t, models.OrderStatusShipped, statusOf(t, svc, "A"))
	assert.Equal(t, models.OrderStatusDelivered, statusOf(t, svc, "B"))
	assert.Equal(t, models.OrderStatusPending, statusOf(t, svc, "C"), "unselected order is untouched")
	assert.Empty(t, svc.Selection().SelectedIDs)
}

func TestBatchAdvanceTerminalStatuses(t *testing.T) {
	svc := newTestOrders(models.OrderStatusDelivered, models.OrderStatusCancelled)
	svc.SelectAll()

	result, err := svc.BatchAdvance()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed, "selected orders count even when unchanged")
	assert.Equal(t, 0, result.Advanced)

	assert.Equal(t, models.OrderStatusDelivered, statusOf(t, svc, "A"))
	assert.Equal(t, models.OrderStatusCancelled, statusOf(t, svc, "B"))
	assert.Empty(t, svc.Selection().SelectedIDs)
}

func TestBatchAdvanceEmptySelection(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending)

	result, err := svc.BatchAdvance()
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, result)
	assert.Equal(t, models.OrderStatusPending, statusOf(t, svc, "A"))
}

func TestListOrdersReturnsCopies(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending)

	listed := svc.ListOrders()
	listed[0].Status = models.OrderStatusCancelled
	listed[0].Items[0].Name = "mutated"

	o, err := svc.GetOrder("A")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, "Item", o.Items[0].Name)

	_, err = svc.GetOrder("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatusCounts(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusPending, models.OrderStatusShipped)

	counts := svc.StatusCounts()
	assert.Equal(t, 2, counts[models.OrderStatusPending])
	assert.Equal(t, 1, counts[models.OrderStatusShipped])
	assert.Equal(t, 0, counts[models.OrderStatusDelivered])
	assert.Contains(t, counts, models.OrderStatusCancelled)
}

func TestExportReportHasNoSideEffects(t *testing.T) {
	svc := newTestOrders(models.OrderStatusPending, models.OrderStatusShipped)
	_, err := svc.ToggleSelect("B")
	require.NoError(t, err)

	report := svc.ExportReport()
	assert.Equal(t, "orders_export_2024-03-09.csv", report.FileName)
	assert.Equal(t, "text/csv;charset=utf-8", report.ContentType)
	assert.Equal(t, 1, report.Rows)
	assert.Equal(t, ReportHeader+"\nB,Customer B,2023-06-15,$10.00,shipped,Item (x1)", report.Content)

	assert.Equal(t, []string{"B"}, svc.Selection().SelectedIDs)
	assert.Equal(t, models.OrderStatusShipped, statusOf(t, svc, "B"))
}
