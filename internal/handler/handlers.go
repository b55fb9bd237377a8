// Package handler assembles the transport handlers of the local control API.
package handler

import (
	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/handler/http"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers returns errNoHandlersAreCreated when the control API is
// disabled in cfg.
func NewHandlers(services *service.ClientServices, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
