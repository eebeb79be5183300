// internal/services/cart_service.go
package services

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

// CartService accumulates line items for the checkout simulation. Items are
// snapshots of the product at the time it was first added.
type CartService struct {
	mu    sync.Mutex
	items []models.CartLineItem
}

type CartSummary struct {
	Items     []models.CartLineItem `json:"items"`
	ItemCount int                   `json:"item_count"`
	Total     decimal.Decimal       `json:"total"`
}

func NewCartService() *CartService {
	return &CartService{items: []models.CartLineItem{}}
}

// AddToCart increments the quantity of the product's line item, or appends a
// new line item with quantity 1 when the product is not in the cart yet.
func (s *CartService) AddToCart(product models.Product) []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			return s.snapshot()
		}
	}

	s.items = append(s.items, models.CartLineItem{
		ProductID: product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  1,
	})
	return s.snapshot()
}

func (s *CartService) RemoveFromCart(position int) ([]models.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.items) {
		return nil, fmt.Errorf("cart position %d with %d items: %w", position, len(s.items), ErrPrecondition)
	}
	s.items = append(s.items[:position], s.items[position+1:]...)
	return s.snapshot(), nil
}

func (s *CartService) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// ItemCount is the sum of quantities across all line items.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount()
}

func (s *CartService) Summary() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartSummary{
		Items:     s.snapshot(),
		ItemCount: s.itemCount(),
		Total:     s.total(),
	}
}

// Checkout returns the cart total and empties the cart. It always succeeds.
func (s *CartService) Checkout() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.total()
	count := s.itemCount()
	s.items = []models.CartLineItem{}

	logrus.WithFields(logrus.Fields{
		"total": total.StringFixed(2),
		"items": count,
	}).Info("Checkout completed")

	return total
}

func (s *CartService) total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *CartService) itemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartService) snapshot() []models.CartLineItem {
	return append([]models.CartLineItem{}, s.items...)
}
