package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/server"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/workers"
)

var errNoEngine = errors.New("client app needs a sync engine")

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	server   server.Server
	screen   StatusScreen

	logger *logger.Logger
}

// NewApp assembles the runtime. srv and screen are optional: without a
// screen the app runs headless until it is signalled.
func NewApp(services *service.ClientServices, srv server.Server, screen StatusScreen, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncEngine == nil {
		return nil, errNoEngine
	}

	var ws []workers.Worker
	if services.Prober != nil {
		ws = append(ws, services.Prober)
	}
	if services.SyncJob != nil {
		ws = append(ws, services.SyncJob)
	}

	return &App{
		services: services,
		workers:  workers.New(ws...),
		server:   srv,
		screen:   screen,
		logger:   logger.WithComponent("app"),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	engine := a.services.SyncEngine
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start sync engine: %w", err)
	}
	defer engine.Stop()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if a.server != nil {
		var wg sync.WaitGroup
		wg.Go(a.server.RunServer)
		defer wg.Wait()
		defer a.server.Shutdown()
	}

	a.logger.Info().
		Int("pending", engine.PendingCount()).
		Int("failed", engine.FailedCount()).
		Msg("sync client started")

	var err error
	if a.screen != nil {
		err = a.screen.Run(ctx)
	} else {
		<-ctx.Done()
	}

	a.logger.Info().Msg("sync client stopping")
	return err
}
