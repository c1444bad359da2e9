package models

import "time"

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Username  string    `json:"username" firestore:"username"`
	Password  string    `json:"-" firestore:"password"` // bcrypt hash, never serialized
	Favorites []string  `json:"favorites" firestore:"favorites"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Actor is the authenticated user attributed to a toggle or review
type Actor struct {
	ID   string
	Name string
}
