package cli

import (
	"context"
	"errors"
	"fmt"

	"notesvc/internal/client/session"
)

func (c *Cli) runLogout(ctx context.Context) error {
	err := c.sessions.Delete(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.io.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("Logged out")
	return nil
}
