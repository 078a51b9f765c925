package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"notesvc/internal/client/session"
	"notesvc/pkg/api"
)

// requireSession loads the stored session and arms the API client
// with its token.
func (c *Cli) requireSession(ctx context.Context) (*session.Session, error) {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("not logged in, run 'notesctl login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if sess.Expired() {
		return nil, fmt.Errorf("session expired, run 'notesctl login' again")
	}

	c.api.SetToken(sess.AccessToken)
	return sess, nil
}

// promptNote reads a title and content from the terminal.
func (c *Cli) promptNote() (api.NoteRequest, error) {
	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return api.NoteRequest{}, fmt.Errorf("failed to read title: %w", err)
	}

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return api.NoteRequest{}, fmt.Errorf("failed to read content: %w", err)
	}

	return api.NoteRequest{Title: title, Content: content}, nil
}

// parseNoteID reads the single positional note id argument.
func parseNoteID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one note id argument")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid note id %q", args[0])
	}
	return id, nil
}

// tokenExpiry extracts the expiry claim from a token without
// verifying the signature. Verification is the server's job; the
// client only uses the claim to warn about stale sessions.
func tokenExpiry(raw string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
