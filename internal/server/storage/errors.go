package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoteNotFound indicates that no note with the given id exists
	ErrNoteNotFound = errors.New("note not found")

	// ErrNotOwner indicates that the requester does not own the note
	ErrNotOwner = errors.New("requester is not the note owner")
)
