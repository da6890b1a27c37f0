package http

import (
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
)

// Handler carries the service graph and the shared logger for all HTTP routes.
type Handler struct {
	services *service.Services

	// serviceKey guards the internal scan trigger endpoint.
	serviceKey string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the full service graph.
func NewHandler(services *service.Services, serviceKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		serviceKey: serviceKey,
		logger:     logger,
	}
}
