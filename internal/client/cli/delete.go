package cli

import (
	"context"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseNoteID(args)
	if err != nil {
		return err
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	if err := c.api.DeleteNote(ctx, id); err != nil {
		return err
	}

	c.io.Printf("Deleted note %d\n", id)
	return nil
}
