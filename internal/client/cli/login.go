package cli

import (
	"context"
	"fmt"

	"notesvc/internal/client/session"
	"notesvc/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.api.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	sess := &session.Session{
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   tokenExpiry(resp.AccessToken),
	}
	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Printf("Logged in as %s\n", username)
	return nil
}
