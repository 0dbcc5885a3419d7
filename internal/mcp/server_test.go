package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"jotpad/internal/notes"
)

func toolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestAddNote(t *testing.T) {
	svc := notes.NewService(notes.NewStore())

	res, err := handleAddNote(svc)(context.Background(), toolRequest("add_note", map[string]any{
		"content": "from the agent",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got NoteResult
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
	require.Equal(t, "from the agent", got.Content)
	require.NotEmpty(t, got.ID)
	require.Equal(t, 1, svc.Count())
}

func TestAddNote_BlankCapturesNothing(t *testing.T) {
	svc := notes.NewService(notes.NewStore())

	res, err := handleAddNote(svc)(context.Background(), toolRequest("add_note", map[string]any{
		"content": "   ",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Contains(t, textOf(t, res), "nothing captured")
	require.Equal(t, 0, svc.Count())
}

func TestAddNote_MissingContent(t *testing.T) {
	svc := notes.NewService(notes.NewStore())

	res, err := handleAddNote(svc)(context.Background(), toolRequest("add_note", nil))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestListNotes_DisplayOrderAndLimit(t *testing.T) {
	svc := notes.NewService(notes.NewStore())
	svc.Create(notes.CreateNoteInput{Content: "older"})
	pinned, _ := svc.Create(notes.CreateNoteInput{Content: "pinned later"})
	svc.Create(notes.CreateNoteInput{Content: "newest"})
	svc.TogglePin(pinned.ID)

	res, err := handleListNotes(svc)(context.Background(), toolRequest("list_notes", nil))
	require.NoError(t, err)

	var got []NoteResult
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
	require.Len(t, got, 3)
	require.Equal(t, "pinned later", got[0].Content)
	require.Equal(t, "newest", got[1].Content)
	require.Equal(t, "older", got[2].Content)

	res, err = handleListNotes(svc)(context.Background(), toolRequest("list_notes", map[string]any{
		"limit": 1,
	}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
	require.Len(t, got, 1)
	require.Equal(t, "pinned later", got[0].Content)
}

func TestGetNote(t *testing.T) {
	svc := notes.NewService(notes.NewStore())
	n, _ := svc.Create(notes.CreateNoteInput{Content: "kept"})

	res, err := handleGetNote(svc)(context.Background(), toolRequest("get_note", map[string]any{
		"id": n.ID,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	res, err = handleGetNote(svc)(context.Background(), toolRequest("get_note", map[string]any{
		"id": "no-such-id",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestTogglePinAndDelete(t *testing.T) {
	svc := notes.NewService(notes.NewStore())
	n, _ := svc.Create(notes.CreateNoteInput{Content: "workflow"})

	res, err := handleTogglePin(svc)(context.Background(), toolRequest("toggle_pin", map[string]any{
		"id": n.ID,
	}))
	require.NoError(t, err)

	var got NoteResult
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
	require.True(t, got.Pinned)

	// Unknown id toggles nothing and still succeeds.
	res, err = handleTogglePin(svc)(context.Background(), toolRequest("toggle_pin", map[string]any{
		"id": "no-such-id",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Contains(t, textOf(t, res), "nothing changed")

	res, err = handleDeleteNote(svc)(context.Background(), toolRequest("delete_note", map[string]any{
		"id": n.ID,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, 0, svc.Count())
}
