package models

import "time"

// Note represents a single text note owned by one user.
// Owner is fixed at creation time; only the owner may read, update or
// delete the note.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     string    `json:"owner"` // username of the creating user
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
