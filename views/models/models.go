package models

import "time"

// NoteView represents a note for template rendering
type NoteView struct {
	ID        string
	Content   string
	Pinned    bool
	CreatedAt time.Time
}
