package notes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"jotpad/views/components"
	"jotpad/views/models"
	"jotpad/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes returns the JSON API, the single page and its HTMX fragments.
// Static assets and the MCP endpoint are mounted by the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Post("/", h.CreateNote)
		r.Get("/", h.ListNotes)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetNote)
			r.Delete("/", h.DeleteNote)
			r.Post("/pin", h.TogglePin)
		})
	})

	r.Get("/", h.HomePage)

	r.Route("/fragments/notes", func(r chi.Router) {
		r.Post("/", h.CreateNoteFragment)
		r.Post("/{id}/pin", h.TogglePinFragment)
		r.Delete("/{id}", h.DeleteNoteFragment)
	})

	return r
}

// --- REST API Handlers ---

// CreateNote handles POST /api/notes. Blank content is a defined
// no-op, answered with 204 rather than an error.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var input CreateNoteInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		h.jsonError(w, r, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note, ok := h.svc.Create(input)
	if !ok {
		render.NoContent(w, r)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, note)
}

// GetNote handles GET /api/notes/{id}
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.svc.GetByID(chi.URLParam(r, "id"))
	if !ok {
		h.jsonError(w, r, "note not found", http.StatusNotFound)
		return
	}
	render.JSON(w, r, note)
}

// ListNotes handles GET /api/notes, in display order
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"items": h.svc.List()})
}

// DeleteNote handles DELETE /api/notes/{id}. Deletion is idempotent:
// unknown ids still answer 204.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(chi.URLParam(r, "id"))
	render.NoContent(w, r)
}

// TogglePin handles POST /api/notes/{id}/pin. Toggling an unknown id
// is a no-op; the response is 204 either way.
func (h *Handler) TogglePin(w http.ResponseWriter, r *http.Request) {
	h.svc.TogglePin(chi.URLParam(r, "id"))
	render.NoContent(w, r)
}

// --- Helper methods ---

func (h *Handler) jsonError(w http.ResponseWriter, r *http.Request, message string, status int) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}

// --- View model converters ---

func (h *Handler) notesToViews(notes []Note) []models.NoteView {
	views := make([]models.NoteView, len(notes))
	for i, note := range notes {
		views[i] = models.NoteView{
			ID:        note.ID,
			Content:   note.Content,
			Pinned:    note.Pinned,
			CreatedAt: note.CreatedAt,
		}
	}
	return views
}

func (h *Handler) renderAll(views []models.NoteView) map[string]string {
	rendered := make(map[string]string, len(views))
	for _, v := range views {
		rendered[v.ID] = h.svc.RenderMarkdown(v.Content)
	}
	return rendered
}

// --- HTMX Web Handlers ---

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	views := h.notesToViews(h.svc.List())
	pages.HomePage(views, h.renderAll(views), h.svc.Count()).Render(r.Context(), w)
}

// CreateNoteFragment handles POST /fragments/notes. It captures the
// form input and re-renders the list; a blank input re-renders the
// unchanged list, which is the whole of the required feedback.
func (h *Handler) CreateNoteFragment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Error("failed to parse capture form", "error", err)
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	h.svc.Create(CreateNoteInput{Content: r.PostFormValue("content")})
	h.noteListFragment(w, r)
}

// TogglePinFragment handles POST /fragments/notes/{id}/pin
func (h *Handler) TogglePinFragment(w http.ResponseWriter, r *http.Request) {
	h.svc.TogglePin(chi.URLParam(r, "id"))
	h.noteListFragment(w, r)
}

// DeleteNoteFragment handles DELETE /fragments/notes/{id}
func (h *Handler) DeleteNoteFragment(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(chi.URLParam(r, "id"))
	h.noteListFragment(w, r)
}

func (h *Handler) noteListFragment(w http.ResponseWriter, r *http.Request) {
	views := h.notesToViews(h.svc.List())
	components.NoteCardList(views, h.renderAll(views)).Render(r.Context(), w)
}
