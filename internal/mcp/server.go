package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jotpad/internal/notes"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for jotpad operations
func NewServer(svc *notes.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Jotpad",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: add_note - Capture a new note
	s.AddTool(
		mcp.NewTool("add_note",
			mcp.WithDescription("Capture a new note. The note goes to the front of the list. Blank content captures nothing."),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("Note content (markdown)"),
			),
		),
		handleAddNote(svc),
	)

	// Tool: list_notes - List notes in display order
	s.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List all notes in display order: pinned notes first, newest first within each group."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of notes to return (default: all)"),
			),
		),
		handleListNotes(svc),
	)

	// Tool: get_note - Get a specific note by ID
	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a specific note by its ID. Use this when you have a note ID and need the full content."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleGetNote(svc),
	)

	// Tool: toggle_pin - Pin or unpin a note
	s.AddTool(
		mcp.NewTool("toggle_pin",
			mcp.WithDescription("Toggle a note's pinned flag. Pinned notes display before unpinned ones. Toggling an unknown ID changes nothing."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleTogglePin(svc),
	)

	// Tool: delete_note - Delete a note
	s.AddTool(
		mcp.NewTool("delete_note",
			mcp.WithDescription("Delete a note by its ID. Deleting an unknown ID changes nothing."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleDeleteNote(svc),
	)

	return s
}

// NoteResult represents a note in tool responses
type NoteResult struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
}

func handleAddNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}

		note, ok := svc.Create(notes.CreateNoteInput{Content: content})
		if !ok {
			return mcp.NewToolResultText("nothing captured: content was blank"), nil
		}

		data, _ := json.MarshalIndent(noteToResult(note), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleListNotes(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteList := svc.List()

		limit := req.GetInt("limit", 0)
		if limit > 0 && limit < len(noteList) {
			noteList = noteList[:limit]
		}

		results := make([]NoteResult, len(noteList))
		for i, note := range noteList {
			results[i] = noteToResult(note)
		}

		data, _ := json.MarshalIndent(results, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGetNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		note, ok := svc.GetByID(id)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("note %s not found", id)), nil
		}

		data, _ := json.MarshalIndent(noteToResult(note), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleTogglePin(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		svc.TogglePin(id)

		note, ok := svc.GetByID(id)
		if !ok {
			return mcp.NewToolResultText(fmt.Sprintf("note %s not found; nothing changed", id)), nil
		}

		data, _ := json.MarshalIndent(noteToResult(note), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleDeleteNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		svc.Delete(id)
		return mcp.NewToolResultText(fmt.Sprintf("note %s deleted", id)), nil
	}
}

// Helper functions

func noteToResult(note notes.Note) NoteResult {
	return NoteResult{
		ID:        note.ID,
		Content:   note.Content,
		Pinned:    note.Pinned,
		CreatedAt: note.CreatedAt,
	}
}
