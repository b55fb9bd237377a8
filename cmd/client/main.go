package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/repair-minder-sync/internal/client"
	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/handler"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/server"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/internal/tui"
	"github.com/MKhiriev/repair-minder-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	var log *logger.Logger
	if cfg.App.Headless {
		log = logger.NewLogger("repair-minder-sync", cfg.App.LogLevel)
	} else {
		log = logger.NewClientLogger("repair-minder-sync", cfg.App.LogLevel)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() { _ = storages.Close() }()

	services, err := service.NewClientServices(ctx, storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	srv, err := newControlServer(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create control API server")
	}

	var screen client.StatusScreen
	if !cfg.App.Headless {
		ui, uiErr := tui.New(services, log)
		if uiErr != nil {
			log.Fatal().Err(uiErr).Msg("error creating ui")
		}
		screen = ui
	}

	app, err := client.NewApp(services, srv, screen, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = storages.Close()
		os.Exit(1)
	}
}

// newControlServer returns a nil server when the control API is disabled.
func newControlServer(services *service.ClientServices, cfg config.ClientServer, log *logger.Logger) (server.Server, error) {
	handlers, err := handler.NewHandlers(services, cfg, log)
	if handler.IsNoHandlers(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return server.NewServer(handlers, cfg, log)
}
