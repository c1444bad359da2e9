package models

import "time"

// Event is a dated happening published by a business; attendance is a
// set of user ids mutated through the toggle protocol.
type Event struct {
	ID          string    `json:"id" firestore:"id"`
	BusinessID  string    `json:"businessId" firestore:"businessId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Date        string    `json:"date,omitempty" firestore:"date"`
	StartTime   string    `json:"startTime,omitempty" firestore:"startTime"`
	EndTime     string    `json:"endTime,omitempty" firestore:"endTime"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl"`
	Attendees   []string  `json:"attendees" firestore:"attendees"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`

	// Attending is filled per request for the signed-in user; never stored.
	Attending bool `json:"attending" firestore:"-"`
}
