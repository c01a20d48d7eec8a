package openai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notedex/internal/openai"
)

// newModelsServer serves a fixed pair of models the way the provider's
// models endpoint does.
func newModelsServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /models", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"object": "list",
			"data": [
				{"id": "gpt-4", "object": "model", "created": 1687882411, "owned_by": "openai"},
				{"id": "text-embedding-ada-002", "object": "model", "created": 1671217299, "owned_by": "openai-internal"}
			]
		}`))
	})
	mux.HandleFunc("GET /models/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "gpt-4" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "gpt-4", "object": "model", "created": 1687882411, "owned_by": "openai"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newActivatedClient(t *testing.T, baseURL string) *openai.Client {
	t.Helper()
	client := openai.NewClient("test-key", baseURL)
	if err := client.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	return client
}

func TestClient_Activate(t *testing.T) {
	t.Run("fails with an empty api key", func(t *testing.T) {
		client := openai.NewClient("", "")
		if err := client.Activate(); err == nil {
			t.Error("Activate() with empty key succeeded, want error")
		}
	})

	t.Run("methods fail before activation", func(t *testing.T) {
		client := openai.NewClient("test-key", "http://localhost:1")

		_, err := client.ListModels(context.Background())
		if !errors.Is(err, openai.ErrNotActivated) {
			t.Errorf("ListModels() before Activate error = %v, want ErrNotActivated", err)
		}

		_, err = client.GetModel(context.Background(), "gpt-4")
		if !errors.Is(err, openai.ErrNotActivated) {
			t.Errorf("GetModel() before Activate error = %v, want ErrNotActivated", err)
		}
	})
}

func TestClient_ListModels(t *testing.T) {
	srv := newModelsServer(t)
	client := newActivatedClient(t, srv.URL)

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("len(ListModels()) = %d, want 2", len(models))
	}
	if models[0].ID != "gpt-4" || models[0].OwnedBy != "openai" {
		t.Errorf("models[0] = %+v", models[0])
	}
	if models[1].ID != "text-embedding-ada-002" {
		t.Errorf("models[1] = %+v", models[1])
	}
}

func TestClient_ListModels_BadKey(t *testing.T) {
	srv := newModelsServer(t)

	client := openai.NewClient("wrong-key", srv.URL)
	if err := client.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Error("ListModels() with bad key succeeded, want error")
	}
}

func TestClient_GetModel(t *testing.T) {
	srv := newModelsServer(t)
	client := newActivatedClient(t, srv.URL)

	t.Run("returns an existing model", func(t *testing.T) {
		model, err := client.GetModel(context.Background(), "gpt-4")
		if err != nil {
			t.Fatalf("GetModel() error = %v", err)
		}
		if model.ID != "gpt-4" || model.Created != 1687882411 {
			t.Errorf("GetModel() = %+v", model)
		}
	})

	t.Run("fails for an unknown model", func(t *testing.T) {
		if _, err := client.GetModel(context.Background(), "no-such-model"); err == nil {
			t.Error("GetModel() for unknown model succeeded, want error")
		}
	})
}

func TestClient_IsModelAvailable(t *testing.T) {
	srv := newModelsServer(t)
	client := newActivatedClient(t, srv.URL)

	if !client.IsModelAvailable(context.Background(), "gpt-4") {
		t.Error("IsModelAvailable(gpt-4) = false, want true")
	}
	if client.IsModelAvailable(context.Background(), "no-such-model") {
		t.Error("IsModelAvailable(no-such-model) = true, want false")
	}
}
