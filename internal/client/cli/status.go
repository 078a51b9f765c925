package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notesvc/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.io.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Printf("Logged in as %s\n", sess.Username)
	switch {
	case sess.Expired():
		c.io.Println("Session expired, run 'notesctl login' again")
	case !sess.ExpiresAt.IsZero():
		c.io.Printf("Session expires at %s\n", sess.ExpiresAt.Local().Format(time.RFC3339))
	}
	return nil
}
