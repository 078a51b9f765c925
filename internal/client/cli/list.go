package cli

import (
	"context"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	notes, err := c.api.ListNotes(ctx)
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		c.io.Println("No notes yet")
		return nil
	}

	c.io.Printf("%-6s %-40s %s\n", "ID", "TITLE", "CONTENT")
	for _, note := range notes {
		c.io.Printf("%-6d %-40s %s\n", note.ID, note.Title, note.Content)
	}
	return nil
}
