package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"notesvc/internal/config"
	"notesvc/internal/server"
	"notesvc/internal/server/storage"
	"notesvc/internal/server/storage/memory"
	"notesvc/internal/server/storage/sqlite"
	"notesvc/internal/server/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)
	logger.Info("starting notes server",
		slog.String("version", Version),
		slog.String("address", cfg.RunAddress),
		slog.String("storage", cfg.StorageDriver))

	ctx := context.Background()

	var users storage.UserStorage
	var notes storage.NoteStorage

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.New(ctx, cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to init sqlite storage: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close storage", slog.Any("error", err))
			}
		}()
		users, notes = store, store
	case config.DriverMemory:
		store := memory.New()
		users, notes = store, store
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	router := server.NewRouter(logger, cfg.CORSOrigin, tokens, users, notes)

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening for requests", slog.String("address", cfg.RunAddress))
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("notesvc server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
