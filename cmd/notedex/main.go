package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"notedex/internal/app"
	"notedex/internal/config"
)

func main() {
	// Pick up OPENAI_API_KEY and friends from a local .env, if present.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
func newApp() (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "notedex",
	Short: "Note indexing backend",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["notes_dir"], defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Notes Dir: %s\n", cfg.NotesDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Notes Dir: %s\n", cfg.NotesDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Database:  %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("Port:      %s\n", cfg.Server.Port)
		return nil
	},
}

// index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index all notes from the notes directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.IndexNotes()
		if err != nil {
			return fmt.Errorf("indexing notes: %w", err)
		}

		fmt.Printf("Indexed %d notes (%d failed)\n", result.Indexed, result.Failed)
		return nil
	},
}

// serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		srv, err := a.Server()
		if err != nil {
			return fmt.Errorf("building server: %w", err)
		}

		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)

		go func() {
			fmt.Printf("Listening on %s\n", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
			}
		}()

		<-done
		fmt.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(serveCmd)
}
