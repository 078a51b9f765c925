package models

import "time"

// User represents a registered account
type User struct {
	ID           int64     `json:"id"`         // auto-increment id (sqlite) or counter (memory)
	Username     string    `json:"username"`   // unique username, immutable
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"` // registration time
}
