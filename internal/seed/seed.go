// internal/seed/seed.go
//
// Package seed supplies the catalog and orders the dashboard starts with.
package seed

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

// productNamespace keeps seeded product ids stable across restarts.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("commerce-dashboard/products"))

type productSeed struct {
	name    string
	sku     string
	price   string
	stock   int
	sales   int64
	rating  float64
	keyword string
	reviews []models.Review
}

var productSeeds = []productSeed{
	{"Premium Wireless Headphones", "SKU-001", "299.99", 50, 128, 4.8, "headphones", []models.Review{
		{ID: 1, User: "John", Rating: intPtr(5), Comment: "Excellent sound quality and noise cancellation!", Date: "Jun 15, 2023"},
		{ID: 2, User: "Sarah", Rating: intPtr(4), Comment: "Comfortable but battery life could be better", Date: "Jun 10, 2023"},
	}},
	{"Smart Fitness Watch", "SKU-002", "199.99", 75, 256, 4.6, "smartwatch", nil},
	{"Portable Bluetooth Speaker", "SKU-003", "89.99", 100, 312, 4.7, "speaker", nil},
	{"4K Ultra HD Smart TV", "SKU-004", "899.99", 30, 85, 4.9, "smart tv", nil},
	{"Gaming Laptop", "SKU-005", "1499.99", 25, 42, 4.7, "gaming laptop", nil},
	{"Wireless Charger", "SKU-006", "29.99", 150, 210, 4.3, "wireless charger", nil},
	{"Noise Cancelling Earbuds", "SKU-007", "159.99", 65, 178, 4.5, "earbuds", nil},
	{"Smart Security Camera", "SKU-008", "129.99", 40, 95, 4.4, "security camera", nil},
	{"Ergonomic Office Chair", "SKU-009", "249.99", 35, 68, 4.6, "office chair", nil},
	{"Electric Toothbrush", "SKU-010", "79.99", 120, 310, 4.2, "electric toothbrush", nil},
}

// Products returns the starting catalog. imageURL turns an image keyword into
// the product's image reference.
func Products(imageURL func(keyword string) string) []models.Product {
	products := make([]models.Product, 0, len(productSeeds))
	for _, ps := range productSeeds {
		reviews := append([]models.Review{}, ps.reviews...)
		products = append(products, models.Product{
			ID:      ProductID(ps.sku),
			Name:    ps.name,
			SKU:     ps.sku,
			Price:   decimal.RequireFromString(ps.price),
			Stock:   ps.stock,
			Sales:   ps.sales,
			Rating:  ps.rating,
			Image:   imageURL(ps.keyword),
			Reviews: reviews,
		})
	}
	return products
}

// ProductID is the id a seeded product with the given SKU receives.
func ProductID(sku string) uuid.UUID {
	return uuid.NewSHA1(productNamespace, []byte(sku))
}

func Orders() []models.Order {
	return []models.Order{
		{
			ID:       "ORD-2023-001",
			Customer: "John Doe",
			Date:     "2023-06-15",
			Amount:   decimal.RequireFromString("128.50"),
			Status:   models.OrderStatusShipped,
			Items: []models.OrderItem{
				{Name: "Men's Sneakers", Price: decimal.RequireFromString("89.99"), Quantity: 1},
				{Name: "Sports Socks", Price: decimal.RequireFromString("19.99"), Quantity: 2},
			},
		},
		{
			ID:       "ORD-2023-002",
			Customer: "Jane Smith",
			Date:     "2023-06-14",
			Amount:   decimal.RequireFromString("45.99"),
			Status:   models.OrderStatusDelivered,
			Items: []models.OrderItem{
				{Name: "Wireless Earbuds", Price: decimal.RequireFromString("45.99"), Quantity: 1},
			},
		},
		{
			ID:       "ORD-2023-003",
			Customer: "Robert Johnson",
			Date:     "2023-06-13",
			Amount:   decimal.RequireFromString("210.00"),
			Status:   models.OrderStatusPending,
			Items: []models.OrderItem{
				{Name: "Smart Watch", Price: decimal.RequireFromString("199.00"), Quantity: 1},
				{Name: "Watch Band", Price: decimal.RequireFromString("11.00"), Quantity: 1},
			},
		},
	}
}

func intPtr(v int) *int { return &v }
