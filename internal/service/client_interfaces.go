package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/repair-minder-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine is the surface the presentation layer (TUI, control API) uses
// to record durable writes and observe their reconciliation. It never
// exposes the queue or the executor directly.
type SyncEngine interface {
	// Start restores observable state, begins watching reachability and
	// runs a first pass. It must be called at most once.
	Start(ctx context.Context) error

	// Stop cancels in-flight work best-effort, waits for background
	// goroutines and closes subscriber channels.
	Stop()

	// Enqueue records a write for key, replacing any queued write for the
	// same key, and triggers a pass. It returns the pending count. When the
	// API is unreachable the status turns offline and nothing is sent.
	Enqueue(ctx context.Context, key models.EntityKey, kind models.MutationKind, payload json.RawMessage) (int, error)

	// Trigger asks for a full pass: queued writes are pushed, then the
	// server lists are pulled into the local cache. A trigger arriving
	// while a pass runs is coalesced into one follow-up pass.
	Trigger()

	// Resume is the foreground trigger.
	Resume()

	// Sync runs a full pass in the calling goroutine. It returns
	// ErrSyncInProgress when another pass is running.
	Sync(ctx context.Context) error

	// Pull refreshes one server list outside a pass and returns the number
	// of cached records.
	Pull(ctx context.Context, entityType models.EntityType) (int, error)

	Status() models.SyncStatus
	PendingCount() int
	FailedCount() int
	LastSyncAt() time.Time
	Snapshot() models.SyncSnapshot

	// DeadLetters lists mutations parked for manual resolution.
	DeadLetters() []models.PendingMutation
	// Discard drops a dead-lettered mutation.
	Discard(ctx context.Context, key models.EntityKey) error
	// Retry moves a dead-lettered mutation back to the queue and triggers a
	// pass.
	Retry(ctx context.Context, key models.EntityKey) error

	// Subscribe streams snapshots, starting with the current one. A slow
	// reader loses the oldest snapshots, never the newest.
	Subscribe() (<-chan models.SyncSnapshot, func())
}

// MutationQueue is the queue the engine drains. *queue.Queue implements it.
type MutationQueue interface {
	Load(ctx context.Context) error
	Enqueue(ctx context.Context, m models.PendingMutation) (int, error)
	Snapshot() []models.PendingMutation
	DeadLetters() []models.PendingMutation
	Count() int
	FailedCount() int
	NextAttemptAt(now time.Time) (time.Time, bool)
	Ack(ctx context.Context, m models.PendingMutation) (bool, error)
	Fail(ctx context.Context, m models.PendingMutation, reason string, nextAttemptAt time.Time) (models.PendingMutation, error)
	Kill(ctx context.Context, m models.PendingMutation, reason string) (models.PendingMutation, error)
	Discard(ctx context.Context, key models.EntityKey) error
	Retry(ctx context.Context, key models.EntityKey) (models.PendingMutation, error)
}

// Dispatcher sends one queued mutation to the API.
type Dispatcher interface {
	Dispatch(ctx context.Context, m models.PendingMutation) error
}

// Puller copies one server list into the local entity cache.
type Puller interface {
	Pull(ctx context.Context, entityType models.EntityType) (int, error)
}

// CredentialRefresher is the credential owner as seen by the engine.
type CredentialRefresher interface {
	// Refresh blocks until a new credential is installed or the refresh
	// failed. Concurrent callers share one refresh.
	Refresh(ctx context.Context) error
	// NeedsRefresh reports whether the current token expires within leeway.
	NeedsRefresh(leeway time.Duration) bool
}

// NetworkMonitor is the observable reachability flag.
type NetworkMonitor interface {
	IsReachable() bool
	Subscribe() (<-chan bool, func())
}

// ClientSyncJob periodically triggers the sync engine as a safety net for
// missed triggers and elapsed backoff gates.
type ClientSyncJob interface {
	// Run starts the ticker goroutine, stopping a previous one first.
	Run(ctx context.Context)
	// Stop ends the goroutine and waits for it.
	Stop()
}

// AppInfoService reports the build the client runs.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}
