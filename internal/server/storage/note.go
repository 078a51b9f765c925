package storage

import (
	"context"

	"notesvc/internal/models"
)

// NoteStorage defines the note store contract.
// Ownership checks live here so every backend enforces them identically:
// update and delete verify existence first, then that requester matches
// the note's owner.
type NoteStorage interface {
	// CreateNote stores a new note for owner and returns it with its
	// assigned id. Ids are monotonically increasing and never reused.
	CreateNote(ctx context.Context, title, content, owner string) (*models.Note, error)

	// ListNotes returns all notes owned by owner in insertion order.
	// Returns an empty slice, not nil, when the owner has no notes.
	ListNotes(ctx context.Context, owner string) ([]*models.Note, error)

	// UpdateNote replaces title and content of the note with the given id.
	// Returns ErrNoteNotFound if the id is unknown and ErrNotOwner if
	// requester does not own the note. Owner is never changed.
	UpdateNote(ctx context.Context, id int64, title, content, requester string) (*models.Note, error)

	// DeleteNote removes the note with the given id.
	// Same existence and ownership rules as UpdateNote.
	DeleteNote(ctx context.Context, id int64, requester string) error
}
