package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"jotpad/internal/config"
	mcpserver "jotpad/internal/mcp"
	"jotpad/internal/notes"
)

//go:embed static
var staticFS embed.FS

func main() {
	cfg := config.Load()

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Wire dependencies. The note collection lives in process memory
	// for the lifetime of the server and is discarded on restart.
	store := notes.NewStore()
	noteSvc := notes.NewService(store)
	noteHandler := notes.NewHandler(noteSvc, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(noteSvc)

	// HTTP router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("failed to get static fs: %v", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	r.Handle("/mcp", server.NewStreamableHTTPServer(mcpSrv))

	// Web UI, fragments and JSON API
	r.Mount("/", noteHandler.Routes())

	// Start server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "addr", cfg.HTTPAddr)
	logger.Info("endpoints available",
		"web", "http://localhost"+cfg.HTTPAddr,
		"api", "http://localhost"+cfg.HTTPAddr+"/api",
		"mcp", "http://localhost"+cfg.HTTPAddr+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}
