package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"notesvc/internal/server/handlers"
	"notesvc/internal/server/storage"
	"notesvc/internal/server/token"
)

// Auth verifies the bearer token on every request and stores the
// authenticated subject in the request context. The response for every
// failure is the same generic 401 so callers learn nothing about which
// check rejected them; the WWW-Authenticate header signals the bearer
// scheme per RFC 6750.
func Auth(logger *slog.Logger, tokens *token.Service, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("token verification failed", "path", r.URL.Path, "error", err)
				unauthorized(w)
				return
			}

			// The token may outlive its subject in principle; reject
			// subjects the credential store no longer knows.
			if _, err := users.GetUserByUsername(r.Context(), subject); err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.Warn("token subject unknown", "subject", subject)
					unauthorized(w)
					return
				}
				logger.Error("failed to look up token subject", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.SubjectKey, subject)

			logger.Debug("user authenticated", "subject", subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized writes the generic 401 reply.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Invalid token"}`))
}
