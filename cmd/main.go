// Package splitapi provides the API to compute split bill settlements.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-split/cmd/httpserver"
	"github.com/go-petr/pet-split/internal/middleware"
	"github.com/go-petr/pet-split/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("SPLIT API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
