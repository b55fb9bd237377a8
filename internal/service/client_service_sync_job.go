package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/config"
)

type clientSyncJob struct {
	engine   SyncEngine
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls engine.Trigger on a
// ticker. If interval is zero or negative it defaults to 30 seconds. The job
// is idle until Run is called.
func NewClientSyncJob(engine SyncEngine, interval time.Duration) ClientSyncJob {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	return &clientSyncJob{engine: engine, interval: interval}
}

// Run implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that triggers a pass every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.engine.Trigger()
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
