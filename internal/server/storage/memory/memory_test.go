package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesvc/internal/models"
	"notesvc/internal/server/storage"
)

func TestStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash1", CreatedAt: time.Now()})
	require.NoError(t, err)

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash1", user.PasswordHash)
	assert.EqualValues(t, 1, user.ID)
}

func TestStorage_CreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash1"}))

	err := s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "hash2"})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	// First user's credential is unchanged.
	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash1", user.PasswordHash)
}

func TestStorage_GetUserByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_CreateNote_AssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	n1, err := s.CreateNote(ctx, "t1", "c1", "bob")
	require.NoError(t, err)
	n2, err := s.CreateNote(ctx, "t2", "c2", "bob")
	require.NoError(t, err)

	assert.EqualValues(t, 1, n1.ID)
	assert.EqualValues(t, 2, n2.ID)
	assert.Equal(t, "bob", n1.Owner)
}

func TestStorage_CreateNote_NoIDReuseAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	n1, err := s.CreateNote(ctx, "t1", "c1", "bob")
	require.NoError(t, err)
	require.NoError(t, s.DeleteNote(ctx, n1.ID, "bob"))

	// A naive count+1 scheme would reissue id 1 here.
	n2, err := s.CreateNote(ctx, "t2", "c2", "bob")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n2.ID)
}

func TestStorage_ListNotes_FiltersByOwner(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.CreateNote(ctx, "bobs", "1", "bob")
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, "carols", "2", "carol")
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, "bobs two", "3", "bob")
	require.NoError(t, err)

	bobNotes, err := s.ListNotes(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobNotes, 2)
	assert.Equal(t, "bobs", bobNotes[0].Title)
	assert.Equal(t, "bobs two", bobNotes[1].Title)

	carolNotes, err := s.ListNotes(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, carolNotes, 1)
	assert.Equal(t, "carols", carolNotes[0].Title)
}

func TestStorage_ListNotes_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	s := New()

	notes, err := s.ListNotes(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestStorage_UpdateNote(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.CreateNote(ctx, "t1", "c1", "bob")
	require.NoError(t, err)

	updated, err := s.UpdateNote(ctx, created.ID, "t2", "c2", "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
	assert.Equal(t, "bob", updated.Owner)
}

func TestStorage_UpdateNote_Errors(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.CreateNote(ctx, "t1", "c1", "bob")
	require.NoError(t, err)

	_, err = s.UpdateNote(ctx, 999, "x", "y", "bob")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	_, err = s.UpdateNote(ctx, created.ID, "x", "y", "carol")
	assert.ErrorIs(t, err, storage.ErrNotOwner)

	// Note unchanged after the forbidden attempt.
	got, err := s.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Title)
}

func TestStorage_DeleteNote(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.CreateNote(ctx, "t1", "c1", "bob")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteNote(ctx, 999, "bob"), storage.ErrNoteNotFound)
	assert.ErrorIs(t, s.DeleteNote(ctx, created.ID, "carol"), storage.ErrNotOwner)

	require.NoError(t, s.DeleteNote(ctx, created.ID, "bob"))

	_, err = s.GetNote(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	notes, err := s.ListNotes(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestStorage_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := New()

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := s.CreateNote(ctx, "t", "c", "bob")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	notes, err := s.ListNotes(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, notes, goroutines)

	// Every note got a distinct id.
	seen := make(map[int64]bool)
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}
