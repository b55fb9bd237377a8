package server

import (
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/handler"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds the control API listener so that address errors surface
// at startup.
func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddress, err)
	}

	return &server{httpServer: httpSrv, logger: logger}, nil
}

func (s *server) RunServer() {
	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")
	s.httpServer.RunServer()
	s.logger.Info().Msg("HTTP server stopped")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Addr() string {
	return s.httpServer.Addr()
}
