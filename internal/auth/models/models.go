package models

import "time"

// Collection name
const UsersCollection = "users"

// User represents an account credential record in the database
type User struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	LastLogin    time.Time `bson:"last_login" json:"last_login"`
}

// AuthenticatedUser represents an authenticated identity in request context
type AuthenticatedUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
