// internal/services/order_service.go
package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

// OrderService owns the order collection and the operator's selection set.
// Orders are seeded at construction; only their status changes afterwards.
type OrderService struct {
	mu       sync.Mutex
	orders   []models.Order
	selected map[string]struct{}
	now      func() time.Time
}

type Selection struct {
	SelectedIDs []string `json:"selected_ids"`
	Selected    int      `json:"selected"`
	Total       int      `json:"total"`
	AllSelected bool     `json:"all_selected"`
}

type BatchResult struct {
	// Processed is the number of selected orders, including ones that were
	// already delivered or cancelled and therefore did not change.
	Processed int      `json:"processed"`
	Advanced  int      `json:"advanced"`
	OrderIDs  []string `json:"order_ids"`
}

func NewOrderService(seed []models.Order, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	orders := make([]models.Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, o.Clone())
	}
	return &OrderService{
		orders:   orders,
		selected: make(map[string]struct{}),
		now:      now,
	}
}

func (s *OrderService) ListOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	o := s.orders[idx].Clone()
	return &o, nil
}

// ToggleSelect adds the order to the selection set or removes it if present.
func (s *OrderService) ToggleSelect(id string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return Selection{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
	return s.selection(), nil
}

// SelectAll selects every order, or clears the selection when every order
// is already selected.
func (s *OrderService) SelectAll() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allSelected() {
		s.selected = make(map[string]struct{})
	} else {
		for _, o := range s.orders {
			s.selected[o.ID] = struct{}{}
		}
	}
	return s.selection()
}

func (s *OrderService) ClearSelection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[string]struct{})
	return s.selection()
}

func (s *OrderService) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection()
}

// BatchAdvance moves every selected order one step along
// pending -> shipped -> delivered and clears the selection. Delivered and
// cancelled orders are left as they are but still count as processed.
func (s *OrderService) BatchAdvance() (*BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selected) == 0 {
		return nil, ErrEmptySelection
	}

	result := &BatchResult{Processed: len(s.selected)}
	for i := range s.orders {
		order := &s.orders[i]
		if _, ok := s.selected[order.ID]; !ok {
			continue
		}
		result.OrderIDs = append(result.OrderIDs, order.ID)
		if next, ok := order.Status.Next(); ok {
			logrus.WithFields(logrus.Fields{
				"order_id": order.ID,
				"from":     order.Status,
				"to":       next,
			}).Debug("Order advanced")
			order.Status = next
			result.Advanced++
		}
	}
	s.selected = make(map[string]struct{})

	logrus.WithFields(logrus.Fields{
		"processed": result.Processed,
		"advanced":  result.Advanced,
	}).Info("Batch advance completed")

	return result, nil
}

// ExportReport renders the current orders, restricted to the selection when
// one exists. Order and selection state are left untouched.
func (s *OrderService) ExportReport() *Report {
	s.mu.Lock()
	lines, rows := reportLines(s.orders, s.selectedIDs())
	s.mu.Unlock()

	return &Report{
		FileName:    ExportFileName(s.now()),
		ContentType: "text/csv;charset=utf-8",
		Rows:        rows,
		Content:     strings.Join(lines, "\n"),
	}
}

func (s *OrderService) StatusCounts() map[models.OrderStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.OrderStatus]int, len(models.Statuses))
	for _, st := range models.Statuses {
		counts[st] = 0
	}
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts
}

func (s *OrderService) snapshot() []models.Order {
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *OrderService) selection() Selection {
	ids := s.selectedIDs()
	return Selection{
		SelectedIDs: ids,
		Selected:    len(ids),
		Total:       len(s.orders),
		AllSelected: s.allSelected(),
	}
}

// selectedIDs lists selected ids in collection order.
func (s *OrderService) selectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, o := range s.orders {
		if _, ok := s.selected[o.ID]; ok {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func (s *OrderService) allSelected() bool {
	if len(s.orders) == 0 {
		return false
	}
	for _, o := range s.orders {
		if _, ok := s.selected[o.ID]; !ok {
			return false
		}
	}
	return true
}

func (s *OrderService) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
