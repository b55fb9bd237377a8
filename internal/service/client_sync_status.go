package service

import (
	"time"

	"github.com/MKhiriev/repair-minder-sync/models"
)

// subscriberBuffer bounds how far a subscriber may lag before losing the
// oldest snapshots.
const subscriberBuffer = 32

func (e *syncEngine) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *syncEngine) LastSyncAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastSyncAt
}

func (e *syncEngine) Snapshot() models.SyncSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *syncEngine) Subscribe() (<-chan models.SyncSnapshot, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan models.SyncSnapshot, subscriberBuffer)
	ch <- e.snapshotLocked()
	e.subs[id] = ch

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// setStatus replaces the status and publishes. Completed schedules the
// cosmetic revert to idle.
func (e *syncEngine) setStatus(s models.SyncStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setStatusLocked(s)
}

func (e *syncEngine) setStatusLocked(s models.SyncStatus) {
	if s == e.status && s.State != models.SyncSyncing {
		return
	}
	if e.resetTimer != nil {
		e.resetTimer.Stop()
		e.resetTimer = nil
	}

	e.status = s
	e.publishLocked()

	if s.State != models.SyncCompleted {
		return
	}
	if e.completedReset <= 0 {
		e.status = models.StatusIdle()
		e.publishLocked()
		return
	}
	e.resetTimer = time.AfterFunc(e.completedReset, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.status.State == models.SyncCompleted {
			e.status = models.StatusIdle()
			e.publishLocked()
		}
	})
}

// setProgress updates a running pass. It never overrides a status another
// writer set meanwhile, e.g. offline.
func (e *syncEngine) setProgress(progress float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status.State != models.SyncSyncing {
		return
	}
	e.status = models.StatusSyncing(progress)
	e.publishLocked()
}

// leaveOffline reverts offline to idle on reconnection.
func (e *syncEngine) leaveOffline() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status.State == models.SyncOffline {
		e.setStatusLocked(models.StatusIdle())
	}
}

// publish pushes the current snapshot after a count change.
func (e *syncEngine) publish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.publishLocked()
}

func (e *syncEngine) publishLocked() {
	snap := e.snapshotLocked()
	e.metrics.QueueSize(snap.Pending, snap.Failed)

	for _, ch := range e.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// drop the oldest, keep the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (e *syncEngine) snapshotLocked() models.SyncSnapshot {
	return models.SyncSnapshot{
		Status:     e.status,
		Pending:    e.queue.Count(),
		Failed:     e.queue.FailedCount(),
		LastSyncAt: e.lastSyncAt,
	}
}
