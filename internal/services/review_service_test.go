package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/commerce-dashboard/internal/models"
)

func rated(v int) models.Review               { return models.Review{Rating: &v} }
func unrated() models.Review                  { return models.Review{Comment: "no score"} }
func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestComputeRating(t *testing.T) {
	tests := []struct {
		name    string
		reviews []models.Review
		prior   float64
		want    float64
	}{
		{name: "no reviews keeps prior", reviews: nil, prior: 4.0, want: 4.0},
		{name: "only unrated keeps prior", reviews: []models.Review{unrated(), unrated()}, prior: 4.7, want: 4.7},
		{name: "single rating", reviews: []models.Review{rated(3)}, prior: 4.0, want: 3.0},
		{name: "mean of two", reviews: []models.Review{rated(5), rated(4)}, prior: 4.8, want: 4.5},
		{name: "unrated ignored", reviews: []models.Review{rated(5), unrated(), rated(2)}, prior: 1.0, want: 3.5},
		{name: "rounds to one decimal", reviews: []models.Review{rated(5), rated(5), rated(4)}, prior: 0, want: 4.7},
		{name: "rounds down", reviews: []models.Review{rated(1), rated(1), rated(2)}, prior: 0, want: 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRating(tt.reviews, tt.prior)
			assert.Equal(t, tt.want, got)
			// Recomputing from the same list gives the same value.
			assert.Equal(t, got, ComputeRating(tt.reviews, got))
		})
	}
}

func TestReviewAggregatorAddReview(t *testing.T) {
	agg := NewReviewAggregator(fixedClock(time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)))
	product := &models.Product{Rating: models.DefaultRating, Reviews: []models.Review{}}

	five := 5
	agg.AddReview(product, agg.NewReview("", nil, "just a comment"))
	assert.Equal(t, models.DefaultRating, product.Rating)

	agg.AddReview(product, agg.NewReview("Ann", &five, ""))
	assert.Equal(t, 5.0, product.Rating)
	require.Len(t, product.Reviews, 2)
	assert.Equal(t, DefaultReviewAuthor, product.Reviews[0].User)
	assert.Equal(t, "Ann", product.Reviews[1].User)
	assert.Equal(t, "Jun 15, 2023", product.Reviews[1].Date)
}

func TestReviewAggregatorDoesNotAliasReviewSlice(t *testing.T) {
	agg := NewReviewAggregator(nil)
	original := make([]models.Review, 1, 4)
	original[0] = rated(2)
	product := &models.Product{Reviews: original}

	agg.AddReview(product, rated(4))

	assert.Len(t, original, 1)
	assert.Equal(t, original[:2][1], models.Review{}, "backing array of the old slice must not be written")
	assert.Equal(t, 3.0, product.Rating)
}

func TestNewReviewIDsStrictlyIncrease(t *testing.T) {
	agg := NewReviewAggregator(fixedClock(time.UnixMilli(1_700_000_000_000)))

	first := agg.NewReview("a", nil, "")
	second := agg.NewReview("b", nil, "")
	third := agg.NewReview("c", nil, "")

	assert.Equal(t, int64(1_700_000_000_000), first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.Greater(t, third.ID, second.ID)
}

func TestNewReviewCopiesRating(t *testing.T) {
	agg := NewReviewAggregator(nil)
	r := 3
	review := agg.NewReview("", &r, "")
	r = 1
	assert.Equal(t, 3, *review.Rating)
}
