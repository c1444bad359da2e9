package services

import (
	"math"

	"github.com/ava1313/Portfolio-sub000/models"
)

const (
	StarFull  = "full"
	StarHalf  = "half"
	StarEmpty = "empty"
)

// AverageRating averages a list of 1..5 ratings; an empty list averages to 0
// (callers render that as "no ratings", not as a zero-star score).
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return float64(sum) / float64(len(ratings))
}

// StarDisplay discretizes an average into exactly 5 star slots. A half star
// appears only when the fraction reaches 0.5; the rest of the slots are empty.
func StarDisplay(average float64) []string {
	stars := make([]string, 0, 5)

	full := int(math.Floor(average))
	if full > 5 {
		full = 5
	}
	for i := 0; i < full; i++ {
		stars = append(stars, StarFull)
	}

	if full < 5 && average-float64(full) >= 0.5 {
		stars = append(stars, StarHalf)
	}

	for len(stars) < 5 {
		stars = append(stars, StarEmpty)
	}
	return stars
}

// SummarizeReviews aggregates reviews into the display summary
func SummarizeReviews(reviews []models.Review) models.ReviewSummary {
	ratings := make([]int, 0, len(reviews))
	for _, review := range reviews {
		ratings = append(ratings, review.Rating)
	}

	average := AverageRating(ratings)
	return models.ReviewSummary{
		AverageRating: average,
		Stars:         StarDisplay(average),
		TotalCount:    len(reviews),
	}
}
