package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/metrics"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// SyncEngineDeps are the collaborators of the sync engine. Puller,
// Credentials, Meta and Metrics may be nil; without a Puller passes only
// push.
type SyncEngineDeps struct {
	Queue       MutationQueue
	Dispatcher  Dispatcher
	Puller      Puller
	Network     NetworkMonitor
	Credentials CredentialRefresher
	Meta        store.MetaRepository
	Metrics     *metrics.SyncMetrics
}

type syncEngine struct {
	queue      MutationQueue
	dispatcher Dispatcher
	puller     Puller
	network    NetworkMonitor
	creds      CredentialRefresher
	meta       store.MetaRepository
	metrics    *metrics.SyncMetrics

	concurrency    int64
	backoff        backoffPolicy
	completedReset time.Duration

	now    func() time.Time
	logger *logger.Logger

	// pass coalescing; pullWanted asks the next pass to pull after pushing
	running    atomic.Bool
	rerun      atomic.Bool
	pullWanted atomic.Bool

	// status and subscribers
	mu         sync.Mutex
	status     models.SyncStatus
	lastSyncAt time.Time
	resetTimer *time.Timer
	subs       map[int]chan models.SyncSnapshot
	nextSub    int

	// lifecycle
	lifeMu  sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	stopped bool
	wakeup  *time.Timer
	wg      sync.WaitGroup
}

// NewSyncEngine builds the engine. Zero policy values fall back to the
// defaults in the config package.
func NewSyncEngine(deps SyncEngineDeps, policy config.ClientWorkers, logger *logger.Logger) SyncEngine {
	ctx, cancel := context.WithCancel(context.Background())

	e := &syncEngine{
		queue:      deps.Queue,
		dispatcher: deps.Dispatcher,
		puller:     deps.Puller,
		network:    deps.Network,
		creds:      deps.Credentials,
		meta:       deps.Meta,
		metrics:    deps.Metrics,

		concurrency: int64(orDefault(policy.MaxConcurrency, config.DefaultMaxConcurrency)),
		backoff: backoffPolicy{
			base:    orDefault(policy.BackoffBase, config.DefaultBackoffBase),
			ceiling: orDefault(policy.BackoffCap, config.DefaultBackoffCap),
		},
		completedReset: policy.CompletedReset,

		now:    time.Now,
		logger: logger.WithComponent("sync"),

		status: models.StatusIdle(),
		subs:   make(map[int]chan models.SyncSnapshot),

		ctx:    ctx,
		cancel: cancel,
	}
	if e.backoff.ceiling < e.backoff.base {
		e.backoff.ceiling = e.backoff.base
	}
	return e
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

func (e *syncEngine) Start(ctx context.Context) error {
	e.lifeMu.Lock()
	switch {
	case e.stopped:
		e.lifeMu.Unlock()
		return ErrEngineStopped
	case e.started:
		e.lifeMu.Unlock()
		return ErrEngineStarted
	}
	e.started = true
	e.cancel()
	e.ctx, e.cancel = context.WithCancel(ctx)
	e.lifeMu.Unlock()

	e.restoreLastSyncAt(ctx)

	reachable := e.network.IsReachable()
	e.metrics.SetReachable(reachable)
	if !reachable {
		e.setStatus(models.StatusOffline())
	} else {
		e.publish()
	}

	updates, cancel := e.network.Subscribe()
	if !e.spawn(func(ctx context.Context) { e.watchNetwork(ctx, updates, cancel) }) {
		cancel()
		return ErrEngineStopped
	}

	e.logger.Info().
		Int("pending", e.queue.Count()).
		Int("dead", e.queue.FailedCount()).
		Bool("reachable", reachable).
		Msg("sync engine started")

	e.Trigger()
	return nil
}

func (e *syncEngine) Stop() {
	e.lifeMu.Lock()
	if e.stopped {
		e.lifeMu.Unlock()
		return
	}
	e.stopped = true
	e.cancel()
	if e.wakeup != nil {
		e.wakeup.Stop()
	}
	e.lifeMu.Unlock()

	e.wg.Wait()

	e.mu.Lock()
	if e.resetTimer != nil {
		e.resetTimer.Stop()
	}
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
	e.mu.Unlock()

	e.logger.Info().Msg("sync engine stopped")
}

// spawn runs fn in a tracked goroutine bound to the engine context. It
// reports false once the engine is stopped.
func (e *syncEngine) spawn(fn func(ctx context.Context)) bool {
	e.lifeMu.Lock()
	if e.stopped {
		e.lifeMu.Unlock()
		return false
	}
	ctx := e.ctx
	e.wg.Add(1)
	e.lifeMu.Unlock()

	go func() {
		defer e.wg.Done()
		fn(ctx)
	}()
	return true
}

func (e *syncEngine) Enqueue(ctx context.Context, key models.EntityKey, kind models.MutationKind, payload json.RawMessage) (int, error) {
	count, err := e.queue.Enqueue(ctx, models.PendingMutation{Key: key, Kind: kind, Payload: payload})
	if err != nil {
		return 0, fmt.Errorf("enqueue %s: %w", key, err)
	}

	if !e.network.IsReachable() {
		e.setStatus(models.StatusOffline())
		return count, nil
	}

	e.publish()
	e.kick()
	return count, nil
}

func (e *syncEngine) Trigger() {
	e.pullWanted.Store(true)
	e.kick()
}

// kick asks for a push-only pass unless a full one is already wanted.
func (e *syncEngine) kick() {
	if !e.running.CompareAndSwap(false, true) {
		e.rerun.Store(true)
		return
	}
	if !e.spawn(e.drain) {
		e.running.Store(false)
	}
}

func (e *syncEngine) Resume() {
	e.logger.Debug().Msg("resume trigger")
	e.Trigger()
}

func (e *syncEngine) Sync(ctx context.Context) error {
	e.pullWanted.Store(true)
	if !e.running.CompareAndSwap(false, true) {
		e.rerun.Store(true)
		return ErrSyncInProgress
	}
	e.drain(ctx)
	return nil
}

// drain runs passes until no trigger arrived during the last one. The
// caller owns the running flag.
func (e *syncEngine) drain(ctx context.Context) {
	for {
		e.rerun.Store(false)
		e.runPass(ctx)
		e.running.Store(false)

		if !e.rerun.Load() || !e.running.CompareAndSwap(false, true) {
			return
		}
	}
}

// watchNetwork turns reachability transitions into status changes and
// triggers.
func (e *syncEngine) watchNetwork(ctx context.Context, updates <-chan bool, cancel func()) {
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case reachable, ok := <-updates:
			if !ok {
				return
			}
			e.metrics.SetReachable(reachable)

			if !reachable {
				e.logger.Info().Msg("network unreachable, sync paused")
				e.setStatus(models.StatusOffline())
				continue
			}

			e.logger.Info().Msg("network reachable again")
			e.leaveOffline()
			if e.queue.Count() > 0 || e.puller != nil {
				e.Trigger()
			}
		}
	}
}

// scheduleWakeup arms a trigger for the earliest backoff deadline.
func (e *syncEngine) scheduleWakeup() {
	next, ok := e.queue.NextAttemptAt(e.now())
	if !ok {
		return
	}
	delay := max(next.Sub(e.now()), 0)

	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()
	if e.stopped {
		return
	}
	if e.wakeup != nil {
		e.wakeup.Stop()
	}
	e.wakeup = time.AfterFunc(delay, e.kick)
}

func (e *syncEngine) restoreLastSyncAt(ctx context.Context) {
	if e.meta == nil {
		return
	}

	raw, err := e.meta.GetMeta(ctx, store.MetaLastSyncAt)
	if err != nil {
		return
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		e.logger.Warn().Err(err).Str("value", raw).Msg("ignoring malformed last sync time")
		return
	}

	e.mu.Lock()
	e.lastSyncAt = at
	e.mu.Unlock()
}

func (e *syncEngine) persistLastSyncAt(ctx context.Context, at time.Time) {
	if e.meta == nil {
		return
	}
	if err := e.meta.SetMeta(ctx, store.MetaLastSyncAt, at.UTC().Format(time.RFC3339Nano)); err != nil {
		e.logger.Err(err).Msg("failed to persist last sync time")
	}
}

func (e *syncEngine) PendingCount() int { return e.queue.Count() }
func (e *syncEngine) FailedCount() int  { return e.queue.FailedCount() }

func (e *syncEngine) DeadLetters() []models.PendingMutation {
	return e.queue.DeadLetters()
}

func (e *syncEngine) Discard(ctx context.Context, key models.EntityKey) error {
	if err := e.queue.Discard(ctx, key); err != nil {
		return err
	}
	e.publish()
	return nil
}

func (e *syncEngine) Retry(ctx context.Context, key models.EntityKey) error {
	if _, err := e.queue.Retry(ctx, key); err != nil {
		return err
	}
	e.publish()
	e.kick()
	return nil
}

func (e *syncEngine) Pull(ctx context.Context, entityType models.EntityType) (int, error) {
	if e.puller == nil {
		return 0, ErrPullDisabled
	}
	if !entityType.Pullable() {
		return 0, fmt.Errorf("%w: %q", ErrNotPullable, entityType)
	}

	n, err := e.pull(ctx, entityType)
	if errors.Is(err, adapter.ErrUnauthorized) && e.creds != nil && e.refreshCredential(ctx) == nil {
		n, err = e.pull(ctx, entityType)
	}

	switch {
	case errors.Is(err, adapter.ErrOffline):
		e.setStatus(models.StatusOffline())
		return 0, err
	case err != nil:
		e.logger.Warn().Err(err).Str("entity_type", string(entityType)).Msg("server list pull failed")
		return 0, err
	}
	return n, nil
}

func (e *syncEngine) pull(ctx context.Context, entityType models.EntityType) (int, error) {
	n, err := e.puller.Pull(ctx, entityType)
	e.metrics.Pulled(string(entityType), err == nil)
	return n, err
}
