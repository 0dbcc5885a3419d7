package notes

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the in-memory note collection for the lifetime of the
// process. The slice is kept in insertion order, newest first; the
// pinned-first display order is derived in View, never stored.
//
// The captured semantics are single-user and synchronous, but the HTTP
// and MCP surfaces serve requests on separate goroutines, so every
// operation holds the mutex for its full duration.
type Store struct {
	mu    sync.Mutex
	notes []Note
}

func NewStore() *Store {
	return &Store{}
}

// Add captures a new note at the front of the collection. Content is
// trimmed; a blank result is a silent no-op and returns false. Add
// never fails: it inserts exactly one note or does nothing.
func (s *Store) Add(content string) (Note, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Note{}, false
	}

	n := Note{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = slices.Insert(s.notes, 0, n)
	return n, true
}

// Delete removes the note with the given id, if present. Unknown ids
// are a no-op, so deleting twice is safe.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = slices.Delete(s.notes, i, i+1)
			return
		}
	}
}

// TogglePin flips the pinned flag of the note with the given id, if
// present. All other notes and their relative order are untouched.
func (s *Store) TogglePin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Pinned = !s.notes[i].Pinned
			return
		}
	}
}

// Get returns a copy of the note with the given id.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			return s.notes[i], true
		}
	}
	return Note{}, false
}

// View returns the display order: pinned notes first, then unpinned,
// each group in insertion order. The partition is built in two passes
// so the within-group order is preserved structurally rather than by
// leaning on a sort's stability. The result is a fresh slice of
// copies; mutating it does not touch the collection.
func (s *Store) View() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.Pinned {
			out = append(out, n)
		}
	}
	for _, n := range s.notes {
		if !n.Pinned {
			out = append(out, n)
		}
	}
	return out
}

// Len reports the number of captured notes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}
