package api

// NoteRequest represents the body of note create and update calls.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Note represents a note as returned by the API.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}
