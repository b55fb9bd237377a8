package http

import (
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/validators"
)

type Handler struct {
	services  *service.ClientServices
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewMutationValidator(),
		logger:    logger,
	}
}
