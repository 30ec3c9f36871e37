// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/middleware"
	"github.com/go-petr/pet-split/internal/reportdelivery"
	"github.com/go-petr/pet-split/internal/reportservice"
	"github.com/go-petr/pet-split/internal/settlementdelivery"
	"github.com/go-petr/pet-split/internal/settlementservice"
	"github.com/go-petr/pet-split/pkg/configpkg"
	"github.com/go-petr/pet-split/pkg/moneypkg"
)

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	settlementService := settlementservice.New()
	reportService := reportservice.New(settlementService, config)

	settlementHandler := settlementdelivery.NewHandler(settlementService)
	reportHandler := reportdelivery.NewHandler(reportService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics())
	engine.Use(gin.Recovery())

	engine.POST("/settlements", settlementHandler.Create)
	engine.POST("/reports", reportHandler.Create)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", moneypkg.ValidAmount)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
