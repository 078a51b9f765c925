package cli

import (
	"context"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	id, err := parseNoteID(args)
	if err != nil {
		return err
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	req, err := c.promptNote()
	if err != nil {
		return err
	}

	note, err := c.api.UpdateNote(ctx, id, req)
	if err != nil {
		return err
	}

	c.io.Printf("Updated note %d: %s\n", note.ID, note.Title)
	return nil
}
