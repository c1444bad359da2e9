package models

import "time"

// NotificationType tags what a user did to a listing
type NotificationType string

const (
	NotificationFavorite   NotificationType = "favorite"
	NotificationUnfavorite NotificationType = "unfavorite"
	NotificationReview     NotificationType = "review"
	NotificationGoing      NotificationType = "going"
	NotificationNotGoing   NotificationType = "not_going"
)

// Notification is an append-only audit record shown to a business owner.
// Only the Read flag is ever mutated after creation.
type Notification struct {
	ID        string           `json:"id" firestore:"id"`
	Type      NotificationType `json:"type" firestore:"type"`
	ActorID   string           `json:"actorId" firestore:"actorId"`
	ActorName string           `json:"actorName" firestore:"actorName"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt"`
	Read      bool             `json:"read" firestore:"read"`
}
