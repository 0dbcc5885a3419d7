package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"jotpad/views/components"
	"jotpad/views/models"
)

// HomePage renders the whole single-page UI: capture form on top, the
// note list below. Everything after first load is swapped through the
// list fragment.
func HomePage(notes []models.NoteView, rendered map[string]string, total int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head>`+
			`<meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>Jotpad</title>`+
			`<link rel="stylesheet" href="/static/styles.css">`+
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
			`</head><body><main class="page">`+
			`<h1>Jotpad</h1>`); err != nil {
			return err
		}
		if err := components.CaptureForm().Render(ctx, w); err != nil {
			return err
		}
		if err := components.NoteCardList(notes, rendered).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<footer>%d captured</footer>`, total); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
