package models

import "time"

// User roles. The access gate only distinguishes admin from everyone else.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is an account that can authenticate against the booking endpoints.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
