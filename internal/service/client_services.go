package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/auth"
	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/metrics"
	"github.com/MKhiriev/repair-minder-sync/internal/network"
	"github.com/MKhiriev/repair-minder-sync/internal/queue"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// ClientServices is the wired sync core: one credential holder, one
// executor, one queue and one engine per process.
type ClientServices struct {
	Credentials *auth.Credentials
	Executor    adapter.RequestExecutor
	Network     *network.Monitor
	Prober      *network.Prober
	Entities    store.EntityRepository
	Queue       *queue.Queue
	SyncEngine  SyncEngine
	SyncJob     ClientSyncJob
	AppInfo     AppInfoService
	Metrics     *metrics.SyncMetrics
}

// NewClientServices wires the sync core on top of storages. The persisted
// session and queue are restored before returning.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	transport, err := adapter.NewHTTPTransport(cfg.Adapter)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	monitor := network.NewMonitor(false)
	creds := auth.NewCredentials(storages.Session, logger)
	exec := adapter.NewExecutor(transport, creds, monitor)
	creds.SetRefreshFunc(auth.NewAPIRefresher(exec))

	if _, err = creds.Restore(ctx); err != nil {
		return nil, err
	}

	q := queue.New(storages.Mutations, cfg.Workers.MaxAttempts, logger)
	if err = q.Load(ctx); err != nil {
		return nil, err
	}

	prober, err := network.NewProber(cfg.Adapter, monitor, logger)
	if err != nil {
		return nil, err
	}

	syncMetrics := metrics.NewSyncMetrics()
	engine := NewSyncEngine(SyncEngineDeps{
		Queue:       q,
		Dispatcher:  NewDispatcher(exec),
		Puller:      NewPuller(exec, storages.Entities, logger),
		Network:     monitor,
		Credentials: creds,
		Meta:        storages.Meta,
		Metrics:     syncMetrics,
	}, cfg.Workers, logger)

	return &ClientServices{
		Credentials: creds,
		Executor:    exec,
		Network:     monitor,
		Prober:      prober,
		Entities:    storages.Entities,
		Queue:       q,
		SyncEngine:  engine,
		SyncJob:     NewClientSyncJob(engine, cfg.Workers.SyncInterval),
		AppInfo:     NewAppInfoService(buildInfo, logger),
		Metrics:     syncMetrics,
	}, nil
}
