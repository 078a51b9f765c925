package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"notesvc/internal/server/handlers"
	"notesvc/internal/server/middleware"
	"notesvc/internal/server/storage"
	"notesvc/internal/server/token"
)

// NewRouter assembles the HTTP route table and middleware chain.
// /auth and /health are public; everything under /notes requires a
// valid bearer token.
func NewRouter(
	logger *slog.Logger,
	corsOrigin string,
	tokens *token.Service,
	users storage.UserStorage,
	notes storage.NoteStorage,
) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, users, tokens)
	notesHandler := handlers.NewNotesHandler(logger, notes)
	healthHandler := handlers.NewHealthHandler(logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(corsOrigin))
	r.Use(chimw.StripSlashes)

	r.Get("/health", healthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.Auth(logger, tokens, users))
		r.Post("/", notesHandler.Create)
		r.Get("/", notesHandler.List)
		r.Put("/{id}", notesHandler.Update)
		r.Delete("/{id}", notesHandler.Delete)
	})

	return r
}
