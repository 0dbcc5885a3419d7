package components

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jotpad/views/models"
)

func TestNoteCard_EscapesContentMetadata(t *testing.T) {
	n := models.NoteView{
		ID:        "id-1",
		Content:   `<b>raw</b>`,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, NoteCard(n, "<p>safe body</p>").Render(context.Background(), &buf))
	out := buf.String()

	require.Contains(t, out, `id="note-id-1"`)
	// The body comes from the renderer argument, never the raw content.
	require.Contains(t, out, "<p>safe body</p>")
	require.NotContains(t, out, "<b>raw</b>")
	require.Contains(t, out, `hx-post="/fragments/notes/id-1/pin"`)
	require.Contains(t, out, `hx-delete="/fragments/notes/id-1"`)
	require.Contains(t, out, ">Pin<")
}

func TestNoteCard_PinnedState(t *testing.T) {
	n := models.NoteView{ID: "id-2", Pinned: true, CreatedAt: time.Now()}

	var buf bytes.Buffer
	require.NoError(t, NoteCard(n, "").Render(context.Background(), &buf))
	out := buf.String()

	require.Contains(t, out, `class="note-card pinned"`)
	require.Contains(t, out, ">Unpin<")
}

func TestNoteCardList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NoteCardList(nil, nil).Render(context.Background(), &buf))
	require.Contains(t, buf.String(), "Nothing captured yet")

	notes := []models.NoteView{
		{ID: "a", CreatedAt: time.Now()},
		{ID: "b", CreatedAt: time.Now()},
	}
	rendered := map[string]string{"a": "<p>first</p>", "b": "<p>second</p>"}

	buf.Reset()
	require.NoError(t, NoteCardList(notes, rendered).Render(context.Background(), &buf))
	out := buf.String()
	require.Contains(t, out, `id="note-list"`)
	require.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
}

func TestRelTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "just now", RelTime(now.Add(-30*time.Second), now))
	require.Equal(t, "5m ago", RelTime(now.Add(-5*time.Minute), now))
	require.Equal(t, "3h ago", RelTime(now.Add(-3*time.Hour), now))
	require.Equal(t, "Feb 27", RelTime(now.Add(-48*time.Hour), now))
}
