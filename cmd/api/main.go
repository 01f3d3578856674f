package main

import (
	"os"

	"github.com/chimailo/algorice/internal/pkg/logger"
	"github.com/chimailo/algorice/internal/server"
)

// @title Algorice API
// @version 1.0
// @description Social networking API: accounts, profiles, posts, threaded comments, likes, followers and role-based permissions

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
	os.Exit(0)
}
