// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultRating is the rating a product carries until a rated review arrives.
const DefaultRating = 4.0

type Product struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	SKU     string          `json:"sku"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
	Sales   int64           `json:"sales"`
	Rating  float64         `json:"rating"`
	Image   string          `json:"image,omitempty"`
	Reviews []Review        `json:"reviews"`
}

// Review is immutable once created. Rating is nil when the reviewer left no score.
type Review struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Rating  *int   `json:"rating"`
	Comment string `json:"comment,omitempty"`
	Date    string `json:"date"`
}

// Clone returns a deep copy so callers never share the review slice.
func (p Product) Clone() Product {
	out := p
	out.Reviews = make([]Review, len(p.Reviews))
	for i, r := range p.Reviews {
		out.Reviews[i] = r.clone()
	}
	return out
}

func (r Review) clone() Review {
	if r.Rating != nil {
		v := *r.Rating
		r.Rating = &v
	}
	return r
}
