package server

import (
	"net/http"

	"notedex/internal/notes"
)

// New builds the HTTP server with all routes registered.
func New(port string, svc *notes.Service, models ModelLister, logger notes.Logger) *http.Server {
	handlers := NewHandlers(svc, models, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notes/index", handlers.HandleIndex)
	mux.HandleFunc("GET /api/notes", handlers.HandleListNotes)
	mux.HandleFunc("GET /api/notes/{id}", handlers.HandleGetNote)
	mux.HandleFunc("GET /api/status", handlers.HandleStatus)
	mux.HandleFunc("GET /api/openai/models", handlers.HandleListModels)
	mux.HandleFunc("GET /api/openai/models/{modelId}", handlers.HandleGetModel)

	return &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
}
