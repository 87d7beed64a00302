package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/poster-studio/internal/config"
	"github.com/jonathan/poster-studio/internal/export"
	"github.com/jonathan/poster-studio/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for rendering, previewing, exporting and storing job posters.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	// Environment wins over the config file for the connection string
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or database_url config entry is required")
	}

	if servePort != 0 {
		cfg.Port = servePort
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:          8080,
		ExportTimeout: 60,
		ViewportWidth: export.DefaultViewportWidth,
	})

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DatabaseURL:     cfg.DatabaseURL,
		ChromePath:      cfg.ChromePath,
		DefaultTemplate: cfg.DefaultTemplate,
		ViewportWidth:   cfg.ViewportWidth,
		ExportTimeout:   time.Duration(cfg.ExportTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
