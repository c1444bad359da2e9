package models

import "time"

// Offer is a promotion published by a business
type Offer struct {
	ID          string    `json:"id" firestore:"id"`
	BusinessID  string    `json:"businessId" firestore:"businessId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}
