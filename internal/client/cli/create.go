package cli

import (
	"context"
)

func (c *Cli) runCreate(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	req, err := c.promptNote()
	if err != nil {
		return err
	}

	note, err := c.api.CreateNote(ctx, req)
	if err != nil {
		return err
	}

	c.io.Printf("Created note %d: %s\n", note.ID, note.Title)
	return nil
}
