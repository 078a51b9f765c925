package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"notesvc/internal/client/api"
	"notesvc/internal/client/cli"
	"notesvc/internal/client/iocli"
	"notesvc/internal/client/session"
	"notesvc/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.LoadClient()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerAddress, "Server URL")
	dbPath := flag.String("db", cfg.SessionPath, "Path to the local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	os.Exit(run(*serverURL, *dbPath, args[0], args[1:]))
}

// run executes one command and returns the process exit code. Exiting
// from here rather than main keeps deferred cleanup running.
func run(serverURL, dbPath, command string, args []string) int {
	sessions, err := session.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		return 1
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close session database: %v\n", err)
		}
	}()

	c := cli.New(api.NewClient(serverURL), sessions, iocli.NewStdio())

	if err := c.Run(context.Background(), command, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage()
		}
		return 1
	}

	return 0
}

func printVersion() {
	fmt.Println("notesctl")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
