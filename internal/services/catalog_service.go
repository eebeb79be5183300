// internal/services/catalog_service.go
package services

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/config"
	"github.com/javajoker/commerce-dashboard/internal/models"
)

// CatalogService owns the ordered product list. Every read hands out copies;
// the operations below are the only way to change it.
type CatalogService struct {
	mu       sync.Mutex
	products []models.Product
	reviews  *ReviewAggregator
	config   config.CatalogConfig
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=255"`
	SKU          string  `json:"sku" validate:"required,sku,max=64"`
	Price        float64 `json:"price" validate:"gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	ImageKeyword string  `json:"image_keyword,omitempty" validate:"max=100"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	SKU          *string  `json:"sku,omitempty" validate:"omitempty,sku,max=64"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock        *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageKeyword *string  `json:"image_keyword,omitempty" validate:"omitempty,max=100"`
}

type SubmitReviewRequest struct {
	User    string `json:"user,omitempty" validate:"max=100"`
	Rating  *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

type CatalogStats struct {
	ProductCount   int             `json:"product_count"`
	TotalStock     int             `json:"total_stock"`
	TotalSales     int64           `json:"total_sales"`
	AverageRating  float64         `json:"average_rating"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

func NewCatalogService(cfg config.CatalogConfig, reviews *ReviewAggregator, seed []models.Product) *CatalogService {
	products := make([]models.Product, 0, len(seed))
	for _, p := range seed {
		products = append(products, p.Clone())
	}
	return &CatalogService{
		products: products,
		reviews:  reviews,
		config:   cfg,
	}
}

func (s *CatalogService) ListProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	p := s.products[idx].Clone()
	return &p, nil
}

func (s *CatalogService) AddProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		SKU:     strings.TrimSpace(req.SKU),
		Price:   decimal.NewFromFloat(req.Price),
		Stock:   req.Stock,
		Sales:   0,
		Rating:  models.DefaultRating,
		Image:   s.imageURL(req.ImageKeyword),
		Reviews: []models.Review{},
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"sku":        product.SKU,
	}).Info("Product added to catalog")

	out := product.Clone()
	return &out, nil
}

// UpdateProduct applies the non-nil fields of req. Reviews, rating and sales
// are never touched here.
func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	product := &s.products[idx]
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.SKU != nil {
		product.SKU = strings.TrimSpace(*req.SKU)
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageKeyword != nil {
		product.Image = s.imageURL(*req.ImageKeyword)
	}

	out := product.Clone()
	return &out, nil
}

// DeleteProduct removes the product and reports whether it was present.
// Deleting an unknown id is not an error.
func (s *CatalogService) DeleteProduct(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	logrus.WithField("product_id", id).Info("Product deleted from catalog")
	return true
}

// MoveProduct relocates the product at from to position to, shifting the
// products in between. It is called repeatedly while a drag is in progress,
// each time with the dragged item's current index.
func (s *CatalogService) MoveProduct(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.products)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d -> %d with %d products: %w", from, to, n, ErrPrecondition)
	}
	if from == to {
		return nil
	}

	moved := s.products[from]
	if from < to {
		copy(s.products[from:to], s.products[from+1:to+1])
	} else {
		copy(s.products[to+1:from+1], s.products[to:from])
	}
	s.products[to] = moved

	logrus.WithFields(logrus.Fields{
		"product_id": moved.ID,
		"from":       from,
		"to":         to,
	}).Debug("Product moved")
	return nil
}

func (s *CatalogService) SubmitReview(productID uuid.UUID, req *SubmitReviewRequest) (*models.Review, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	review := s.reviews.NewReview(strings.TrimSpace(req.User), req.Rating, strings.TrimSpace(req.Comment))
	s.reviews.AddReview(&s.products[idx], review)

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"review_id":  review.ID,
		"rating":     s.products[idx].Rating,
	}).Info("Review submitted")

	return &review, nil
}

func (s *CatalogService) Reviews(productID uuid.UUID) ([]models.Review, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return product.Reviews, nil
}

func (s *CatalogService) Stats() CatalogStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := CatalogStats{ProductCount: len(s.products), InventoryValue: decimal.Zero}
	ratingSum := decimal.Zero
	for _, p := range s.products {
		stats.TotalStock += p.Stock
		stats.TotalSales += p.Sales
		stats.InventoryValue = stats.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		ratingSum = ratingSum.Add(decimal.NewFromFloat(p.Rating))
	}
	if len(s.products) > 0 {
		stats.AverageRating, _ = ratingSum.Div(decimal.NewFromInt(int64(len(s.products)))).Round(1).Float64()
	}
	return stats
}

func (s *CatalogService) indexOf(id uuid.UUID) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogService) imageURL(keyword string) string {
	return ImageURL(s.config, keyword)
}

// ImageURL resolves an image keyword into the product image reference,
// falling back to the configured default keyword.
func ImageURL(cfg config.CatalogConfig, keyword string) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		keyword = cfg.DefaultImageKeyword
	}
	return fmt.Sprintf(cfg.ImageURLTemplate, url.QueryEscape(keyword))
}
