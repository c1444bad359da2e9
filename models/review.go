package models

import "time"

// Review is an immutable user review of a business
type Review struct {
	ID         string    `json:"id" firestore:"id"`
	BusinessID string    `json:"businessId" firestore:"businessId"`
	AuthorID   string    `json:"authorId" firestore:"authorId"`
	AuthorName string    `json:"authorName" firestore:"authorName"`
	Rating     int       `json:"rating" firestore:"rating"` // 1..5
	Comment    string    `json:"comment" firestore:"comment"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

// ReviewSummary aggregates the reviews of one business for display
type ReviewSummary struct {
	AverageRating float64  `json:"averageRating"`
	Stars         []string `json:"stars"` // always 5 entries: full | half | empty
	TotalCount    int      `json:"totalCount"`
}
