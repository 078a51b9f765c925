package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notesvc/internal/models"
	"notesvc/internal/server/storage"
	"notesvc/internal/validation"
	"notesvc/pkg/api"
)

// NotesHandler handles the note CRUD requests.
// All routes require an authenticated subject in the request context;
// the handler performs no business logic beyond parameter marshaling
// and outcome translation.
type NotesHandler struct {
	logger *slog.Logger
	notes  storage.NoteStorage
}

// NewNotesHandler creates a new notes handler.
func NewNotesHandler(logger *slog.Logger, notes storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger: logger,
		notes:  notes,
	}
}

// Create handles POST /notes/.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := SubjectFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode note request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNote(req.Title, req.Content); err != nil {
		h.logger.WarnContext(ctx, "invalid note", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.notes.CreateNote(ctx, req.Title, req.Content, subject)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created",
		slog.Int64("note_id", note.ID),
		slog.String("owner", subject))

	sendJSON(h.logger, w, toAPINote(note), http.StatusOK)
}

// List handles GET /notes/.
// Only the caller's own notes are returned.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := SubjectFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "Invalid token", http.StatusUnauthorized)
		return
	}

	notes, err := h.notes.ListNotes(ctx, subject)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]api.Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, toAPINote(note))
	}

	sendJSON(h.logger, w, result, http.StatusOK)
}

// Update handles PUT /notes/{id}.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := SubjectFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "Invalid token", http.StatusUnauthorized)
		return
	}

	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode note request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNote(req.Title, req.Content); err != nil {
		h.logger.WarnContext(ctx, "invalid note", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.notes.UpdateNote(ctx, id, req.Title, req.Content, subject)
	if err != nil {
		h.sendNoteError(ctx, w, err, "update")
		return
	}

	h.logger.InfoContext(ctx, "note updated",
		slog.Int64("note_id", note.ID),
		slog.String("owner", subject))

	sendJSON(h.logger, w, toAPINote(note), http.StatusOK)
}

// Delete handles DELETE /notes/{id}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := SubjectFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "Invalid token", http.StatusUnauthorized)
		return
	}

	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	if err := h.notes.DeleteNote(ctx, id, subject); err != nil {
		h.sendNoteError(ctx, w, err, "delete")
		return
	}

	h.logger.InfoContext(ctx, "note deleted",
		slog.Int64("note_id", id),
		slog.String("owner", subject))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Note deleted successfully"}, http.StatusOK)
}

// noteID extracts the {id} path parameter. A non-numeric id cannot name
// an existing note, so it reports 404 like any other unknown id.
func (h *NotesHandler) noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		sendError(h.logger, w, "Note not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// sendNoteError translates store errors into the external representation.
func (h *NotesHandler) sendNoteError(ctx context.Context, w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, storage.ErrNoteNotFound):
		sendError(h.logger, w, "Note not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrNotOwner):
		sendError(h.logger, w, "Not authorized to "+op+" this note", http.StatusForbidden)
	default:
		h.logger.ErrorContext(ctx, "note operation failed", slog.String("op", op), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}
}

func toAPINote(note *models.Note) api.Note {
	return api.Note{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		Owner:   note.Owner,
	}
}
