package server

import (
	"context"
	"encoding/json"
	"net/http"

	"notedex/internal/notes"
	"notedex/internal/openai"
)

// ModelLister is the read-only surface of the model-listing client used by
// the HTTP layer.
type ModelLister interface {
	ListModels(ctx context.Context) ([]openai.Model, error)
	GetModel(ctx context.Context, modelID string) (*openai.Model, error)
}

type Handlers struct {
	svc    *notes.Service
	models ModelLister
	logger notes.Logger
}

func NewHandlers(svc *notes.Service, models ModelLister, logger notes.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		models: models,
		logger: logger,
	}
}

// HandleIndex triggers a full indexing run of the notes directory.
// Per-file failures only show up in the "failed" count; a non-200 response
// means the run itself aborted (bad directory or walk failure).
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.IndexAll()
	if err != nil {
		h.logger.Error("index run failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.ListNotes()
	if err != nil {
		h.logger.Error("listing notes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "listing notes failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notes": all,
		"total": len(all),
	})
}

func (h *Handlers) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	note, err := h.svc.GetNote(id)
	if err != nil {
		h.logger.Error("fetching note failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "fetching note failed"})
		return
	}
	if note == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Count()
	if err != nil {
		h.logger.Error("counting notes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "counting notes failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"noteCount": count})
}

func (h *Handlers) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.ListModels(r.Context())
	if err != nil {
		h.logger.Error("listing models failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "listing models failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"models": models,
		"total":  len(models),
	})
}

func (h *Handlers) HandleGetModel(w http.ResponseWriter, r *http.Request) {
	modelID := r.PathValue("modelId")

	model, err := h.models.GetModel(r.Context(), modelID)
	if err != nil {
		h.logger.Error("fetching model failed", "model", modelID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "fetching model failed"})
		return
	}

	writeJSON(w, http.StatusOK, model)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
