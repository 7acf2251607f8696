package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1001franck/Linkup-sub000/internal/config"
	"github.com/1001franck/Linkup-sub000/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the Linkup HTTP API server",
	Long: `Starts the REST API serving authentication, candidate and job CRUD,
and the matching endpoints.

Configuration comes from the environment (or a .env file):
PORT, DATABASE_URL, JWT_SECRET, JWT_EXPIRATION_HOURS, BCRYPT_COST, PASSWORD_PEPPER.`,
	RunE: serveCmd,
}

func init() {
	rootCmd.AddCommand(serveCommand)
}

func serveCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	s, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return s.Start()
}
