// internal/services/review_service.go
package services

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

const (
	DefaultReviewAuthor = "You"
	reviewDateLayout    = "Jan 2, 2006"
)

// ReviewAggregator creates reviews and keeps a product's rating in step with
// its review list.
type ReviewAggregator struct {
	mu     sync.Mutex
	now    func() time.Time
	lastID int64
}

func NewReviewAggregator(now func() time.Time) *ReviewAggregator {
	if now == nil {
		now = time.Now
	}
	return &ReviewAggregator{now: now}
}

// NewReview stamps a review with a millisecond id that is strictly greater
// than any id this aggregator handed out before.
func (a *ReviewAggregator) NewReview(author string, rating *int, comment string) models.Review {
	a.mu.Lock()
	defer a.mu.Unlock()

	ts := a.now()
	id := ts.UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id

	if author == "" {
		author = DefaultReviewAuthor
	}
	var r *int
	if rating != nil {
		v := *rating
		r = &v
	}

	return models.Review{
		ID:      id,
		User:    author,
		Rating:  r,
		Comment: comment,
		Date:    ts.Format(reviewDateLayout),
	}
}

// AddReview appends review to a fresh copy of the product's review list and
// recomputes the rating from it.
func (a *ReviewAggregator) AddReview(product *models.Product, review models.Review) {
	reviews := make([]models.Review, 0, len(product.Reviews)+1)
	reviews = append(reviews, product.Reviews...)
	reviews = append(reviews, review)

	product.Reviews = reviews
	product.Rating = ComputeRating(reviews, product.Rating)
}

// ComputeRating returns the mean of all present ratings rounded to one
// decimal place, or prior when no review carries a rating.
func ComputeRating(reviews []models.Review, prior float64) float64 {
	sum := decimal.Zero
	count := int64(0)
	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(int64(*r.Rating)))
		count++
	}
	if count == 0 {
		return prior
	}

	mean := sum.Div(decimal.NewFromInt(count)).Round(1)
	f, _ := mean.Float64()
	return f
}
