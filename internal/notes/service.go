package notes

import (
	"bytes"

	"github.com/yuin/goldmark"
)

type Service struct {
	store *Store
	md    goldmark.Markdown
}

func NewService(store *Store) *Service {
	return &Service{
		store: store,
		md:    goldmark.New(),
	}
}

// Create captures a note. Blank content (after trimming) is a silent
// no-op and returns false; nothing else can go wrong.
func (s *Service) Create(input CreateNoteInput) (Note, bool) {
	return s.store.Add(input.Content)
}

// GetByID retrieves a note by ID
func (s *Service) GetByID(id string) (Note, bool) {
	return s.store.Get(id)
}

// List returns notes in display order: pinned first, newest first
// within each group
func (s *Service) List() []Note {
	return s.store.View()
}

// TogglePin flips a note's pinned flag; unknown ids are a no-op
func (s *Service) TogglePin(id string) {
	s.store.TogglePin(id)
}

// Delete removes a note by ID; unknown ids are a no-op
func (s *Service) Delete(id string) {
	s.store.Delete(id)
}

// RenderMarkdown converts markdown content to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return content // Return raw content on error
	}
	return buf.String()
}

// Count returns total note count
func (s *Service) Count() int {
	return s.store.Len()
}
