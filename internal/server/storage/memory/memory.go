package memory

import (
	"context"
	"sync"
	"time"

	"notesvc/internal/models"
	"notesvc/internal/server/storage"
)

// Storage is an in-memory implementation of the user and note stores.
// All state lives in maps guarded by a single mutex; note ids come from
// a monotonic counter so deleted ids are never handed out again.
type Storage struct {
	mu         sync.RWMutex
	users      map[string]*models.User // username -> user
	notes      map[int64]*models.Note  // id -> note
	noteOrder  []int64                 // insertion order for listing
	nextNoteID int64
	nextUserID int64
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{
		users: make(map[string]*models.User),
		notes: make(map[int64]*models.Note),
	}
}

// CreateUser creates a new user.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}

	s.nextUserID++
	stored := *user
	stored.ID = s.nextUserID
	s.users[user.Username] = &stored

	return nil
}

// GetUserByUsername retrieves user by username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	u := *user
	return &u, nil
}

// CreateNote stores a new note for owner and returns it.
func (s *Storage) CreateNote(ctx context.Context, title, content, owner string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNoteID++
	now := time.Now()
	note := &models.Note{
		ID:        s.nextNoteID,
		Title:     title,
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notes[note.ID] = note
	s.noteOrder = append(s.noteOrder, note.ID)

	n := *note
	return &n, nil
}

// ListNotes returns all notes owned by owner in insertion order.
func (s *Storage) ListNotes(ctx context.Context, owner string) ([]*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Note, 0)
	for _, id := range s.noteOrder {
		note, ok := s.notes[id]
		if !ok || note.Owner != owner {
			continue
		}
		n := *note
		result = append(result, &n)
	}

	return result, nil
}

// GetNote retrieves a single note by id.
func (s *Storage) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, storage.ErrNoteNotFound
	}

	n := *note
	return &n, nil
}

// UpdateNote replaces title and content of an owned note.
func (s *Storage) UpdateNote(ctx context.Context, id int64, title, content, requester string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, storage.ErrNoteNotFound
	}

	if note.Owner != requester {
		return nil, storage.ErrNotOwner
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()

	n := *note
	return &n, nil
}

// DeleteNote removes an owned note.
func (s *Storage) DeleteNote(ctx context.Context, id int64, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return storage.ErrNoteNotFound
	}

	if note.Owner != requester {
		return storage.ErrNotOwner
	}

	delete(s.notes, id)
	for i, oid := range s.noteOrder {
		if oid == id {
			s.noteOrder = append(s.noteOrder[:i], s.noteOrder[i+1:]...)
			break
		}
	}

	return nil
}
