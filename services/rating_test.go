package services

import (
	"testing"

	"github.com/ava1313/Portfolio-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]int{}))
	assert.Equal(t, 5.0, AverageRating([]int{5, 5, 5, 5}))
	assert.Equal(t, 3.5, AverageRating([]int{3, 4}))
	assert.InDelta(t, 4.2, AverageRating([]int{5, 4, 4, 3, 5}), 1e-9)
}

func TestStarDisplay(t *testing.T) {
	tests := []struct {
		name    string
		average float64
		want    []string
	}{
		{"three and a half", 3.5, []string{StarFull, StarFull, StarFull, StarHalf, StarEmpty}},
		{"fraction below half rounds down", 3.4, []string{StarFull, StarFull, StarFull, StarEmpty, StarEmpty}},
		{"four point two", 4.2, []string{StarFull, StarFull, StarFull, StarFull, StarEmpty}},
		{"perfect score", 5.0, []string{StarFull, StarFull, StarFull, StarFull, StarFull}},
		{"no ratings", 0.0, []string{StarEmpty, StarEmpty, StarEmpty, StarEmpty, StarEmpty}},
		{"half star only", 0.5, []string{StarHalf, StarEmpty, StarEmpty, StarEmpty, StarEmpty}},
		{"almost perfect", 4.9, []string{StarFull, StarFull, StarFull, StarFull, StarHalf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StarDisplay(tt.average)
			assert.Len(t, got, 5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeReviews(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 4}, {Rating: 3}, {Rating: 5},
	}

	summary := SummarizeReviews(reviews)
	assert.InDelta(t, 4.2, summary.AverageRating, 1e-9)
	assert.Equal(t, []string{StarFull, StarFull, StarFull, StarFull, StarEmpty}, summary.Stars)
	assert.Equal(t, 5, summary.TotalCount)
}

func TestSummarizeReviewsEmpty(t *testing.T) {
	summary := SummarizeReviews(nil)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Equal(t, 0, summary.TotalCount)
	assert.Equal(t, []string{StarEmpty, StarEmpty, StarEmpty, StarEmpty, StarEmpty}, summary.Stars)
}
