package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/exambank/backend/internal/pkg/logger"
	"github.com/exambank/backend/internal/server"
)

func main() {
	// Optional .env for local development; real deployments set env vars
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
