package notes

import "time"

// Note is a single captured thought. ID and CreatedAt are assigned at
// capture time and never change; Content is immutable after capture.
// Pinned is the only mutable field.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"` // markdown
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateNoteInput is the input for capturing a note
type CreateNoteInput struct {
	Content string `json:"content"`
}
