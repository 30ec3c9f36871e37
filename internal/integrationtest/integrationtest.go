// Package integrationtest provides server helpers used in full-stack api tests.
package integrationtest

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/cmd/httpserver"
	"github.com/go-petr/pet-split/internal/middleware"
	"github.com/go-petr/pet-split/pkg/configpkg"
)

// SetupServer returns a fully wired test server.
func SetupServer(t *testing.T) *httpserver.Server {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(logger, config) returned error: %v`, err)
	}

	return server
}
