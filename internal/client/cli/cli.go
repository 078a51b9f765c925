package cli

import (
	"errors"
	"fmt"

	"notesvc/internal/client/api"
	"notesvc/internal/client/iocli"
	"notesvc/internal/client/session"
)

// ErrUnknownCommand is returned by Run for commands it does not know.
var ErrUnknownCommand = errors.New("unknown command")

type Cli struct {
	api      *api.Client
	sessions *session.Store
	io       iocli.IO
}

func New(apiClient *api.Client, sessions *session.Store, io iocli.IO) *Cli {
	return &Cli{
		api:      apiClient,
		sessions: sessions,
		io:       io,
	}
}

func PrintUsage() {
	fmt.Println("notesctl - notes service client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  notesctl [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to the local session database")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register       Register a new user")
	fmt.Println("  login          Log in and store the session")
	fmt.Println("  logout         Forget the stored session")
	fmt.Println("  status         Show who is logged in")
	fmt.Println("  create         Create a note")
	fmt.Println("  list           List your notes")
	fmt.Println("  update <id>    Replace a note's title and content")
	fmt.Println("  delete <id>    Delete a note")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  notesctl register")
	fmt.Println("  notesctl login")
	fmt.Println("  notesctl create")
	fmt.Println("  notesctl list")
	fmt.Println("  notesctl update 3")
	fmt.Println("  notesctl --server https://notes.example.com login")
}
