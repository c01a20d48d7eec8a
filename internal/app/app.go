package app

import (
	"fmt"
	"net/http"
	"os"

	"notedex/internal/config"
	"notedex/internal/database"
	"notedex/internal/fs"
	"notedex/internal/notes"
	"notedex/internal/openai"
	"notedex/internal/server"
)

// App is the application layer between the CLI and the notes service.
// It constructs all dependencies from config, exposes the high-level
// operations the CLI needs, and manages resource lifecycle on Close.
type App struct {
	cfg     *config.Config
	store   *database.SQLiteStore
	service *notes.Service
	logger  notes.Logger
	logFile *os.File
}

// NewApp creates a fully wired App from the given config.
// The caller must call Close when done.
func NewApp(cfg *config.Config) (*App, error) {
	logger, logFile, err := newLogger(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	store, err := database.NewStoreFromConfig(cfg.Database)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if err := store.Migrate(); err != nil {
		store.Close()
		logFile.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	fsmgr := fs.NewOSFilesystemManager()
	svc := notes.NewService(store, fsmgr, logger, notes.RealClock{}, notes.UUIDGenerator{}, cfg.NotesDir)

	return &App{
		cfg:     cfg,
		store:   store,
		service: svc,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// IndexNotes runs one full indexing pass over the notes directory.
func (a *App) IndexNotes() (notes.Result, error) {
	return a.service.IndexAll()
}

// Server builds the HTTP server, including the model-listing client.
// The OpenAI API key is read from the OPENAI_API_KEY environment variable;
// the client is activated here so a bad key fails startup, not a request.
func (a *App) Server() (*http.Server, error) {
	client := openai.NewClient(os.Getenv("OPENAI_API_KEY"), a.cfg.OpenAI.BaseURL)
	if err := client.Activate(); err != nil {
		return nil, err
	}
	a.logger.Info("openai client activated", "base_url", a.cfg.OpenAI.BaseURL)

	return server.New(a.cfg.Server.Port, a.service, client, a.logger), nil
}

// Close closes all resources owned by the App.
func (a *App) Close() error {
	err := a.store.Close()
	if a.logFile != nil {
		a.logFile.Close()
	}
	return err
}
