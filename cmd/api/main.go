package main

import (
	"os"

	"github.com/maazali/collegia/internal/pkg/logger"
	"github.com/maazali/collegia/internal/server"
)

// @title Collegia API
// @version 1.0
// @description Student records core: roster, fee ledger, attendance, exams and activity feed

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
