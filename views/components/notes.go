package components

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"jotpad/views/models"
)

// Components are authored directly against templ's runtime API rather
// than generated from .templ sources, which keeps the code generation
// step out of the build. Handlers treat them exactly like generated
// components: build, then Render(ctx, w).

// CaptureForm renders the note input. The form posts to the list
// fragment and swaps the list in place, then resets itself.
func CaptureForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<form class="capture" hx-post="/fragments/notes" hx-target="#note-list" hx-swap="outerHTML" hx-on::after-request="this.reset()">`+
			`<input type="text" name="content" placeholder="Jot something down..." autocomplete="off" autofocus>`+
			`<button type="submit">Capture</button>`+
			`</form>`)
		return err
	})
}

// NoteCard renders one note. contentHTML is the markdown-rendered
// body, already escaped by the renderer.
func NoteCard(n models.NoteView, contentHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "note-card"
		pinLabel := "Pin"
		if n.Pinned {
			class += " pinned"
			pinLabel = "Unpin"
		}
		id := templ.EscapeString(n.ID)

		if _, err := fmt.Fprintf(w, `<article class="%s" id="note-%s">`, class, id); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<header><time datetime="%s" title="%s">%s</time>`,
			templ.EscapeString(n.CreatedAt.Format(time.RFC3339)),
			templ.EscapeString(n.CreatedAt.Format("Jan 2, 2006 15:04")),
			templ.EscapeString(RelTime(n.CreatedAt, time.Now()))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<button class="pin" hx-post="/fragments/notes/%s/pin" hx-target="#note-list" hx-swap="outerHTML">%s</button>`, id, pinLabel); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<button class="delete" hx-delete="/fragments/notes/%s" hx-target="#note-list" hx-swap="outerHTML">Delete</button></header>`, id); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="note-content">`); err != nil {
			return err
		}
		if err := templ.Raw(contentHTML).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></article>`)
		return err
	})
}

// NoteCardList renders the full list in display order: pinned notes
// first. rendered maps note ID to markdown-rendered HTML.
func NoteCardList(notes []models.NoteView, rendered map[string]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="note-list" class="note-list">`); err != nil {
			return err
		}
		if len(notes) == 0 {
			if _, err := io.WriteString(w, `<p class="empty">Nothing captured yet.</p>`); err != nil {
				return err
			}
		}
		for _, n := range notes {
			if err := NoteCard(n, rendered[n.ID]).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RelTime formats the age of a note for display ("just now", "5m ago").
func RelTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}
