// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/repair-minder-sync/internal/metrics"
	"github.com/MKhiriev/repair-minder-sync/internal/queue"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// authGate pauses new dispatches while a pass refreshes the credential.
// gen counts refreshes so a request sent with an already replaced token
// does not cause a second refresh.
type authGate struct {
	mu     sync.RWMutex
	gen    int
	err    error
	failed bool
}

// enter blocks while a refresh is running and returns the credential
// generation the caller is about to use.
func (g *authGate) enter() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.gen
}

// refresh runs f unless the credential changed since seen, or a refresh
// already failed in this pass.
func (g *authGate) refresh(ctx context.Context, seen int, f func(context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failed || g.gen != seen {
		return g.err
	}
	g.err = f(ctx)
	g.failed = g.err != nil
	g.gen++
	return g.err
}

// pushShare is the part of the progress bar the push phase fills when a
// pass also pulls.
const pushShare = 0.5

// passState is the bookkeeping of one pass.
type passState struct {
	total int
	pulls int
	gate  authGate

	mu         sync.Mutex
	processed  int
	synced     int
	failed     int
	lastReason string
	preempted  bool

	pulled     int
	pullFailed int
	pullReason string
}

func (p *passState) settle(ok bool, reason string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
	if ok {
		p.synced++
	} else {
		p.failed++
		p.lastReason = reason
	}
	return p.progressLocked()
}

func (p *passState) settlePull(ok bool, reason string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pulled++
	if !ok {
		p.pullFailed++
		p.pullReason = reason
	}
	return p.progressLocked()
}

func (p *passState) progressLocked() float64 {
	push := 1.0
	if p.total > 0 {
		push = float64(p.processed) / float64(p.total)
	}
	switch {
	case p.pulls == 0:
		return push
	case p.total == 0:
		return float64(p.pulled) / float64(p.pulls)
	default:
		return pushShare*push + (1-pushShare)*float64(p.pulled)/float64(p.pulls)
	}
}

func (p *passState) isPreempted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preempted
}

func (p *passState) preempt() {
	p.mu.Lock()
	p.preempted = true
	p.mu.Unlock()
}

// runPass drains one snapshot of the queue and, when a full pass was
// asked for, then pulls the server lists.
func (e *syncEngine) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if !e.network.IsReachable() {
		if e.queue.Count() > 0 {
			e.metrics.Pass(metrics.PassOffline)
		}
		e.setStatus(models.StatusOffline())
		return
	}

	pull := e.puller != nil && e.pullWanted.Swap(false)

	now := e.now()
	all := e.queue.Snapshot()
	eligible := make([]models.PendingMutation, 0, len(all))
	for _, m := range all {
		if m.ReadyAt(now) {
			eligible = append(eligible, m)
		}
	}

	if len(eligible) == 0 && !pull {
		if len(all) == 0 {
			e.settleIdle()
		} else {
			e.publish()
			e.scheduleWakeup()
		}
		return
	}

	e.refreshExpiredCredential(ctx)

	started := e.now()
	p := &passState{total: len(eligible)}
	if pull {
		p.pulls = len(models.PullableEntities)
	}
	e.setStatus(models.StatusSyncing(0))
	e.logger.Info().
		Int("eligible", len(eligible)).
		Int("gated", len(all)-len(eligible)).
		Bool("pull", pull).
		Msg("sync pass started")

	sem := semaphore.NewWeighted(e.concurrency)
	var wg sync.WaitGroup

	for _, batch := range groupByKey(eligible) {
		if !e.network.IsReachable() {
			p.preempt()
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		if !e.network.IsReachable() {
			sem.Release(1)
			p.preempt()
			break
		}

		wg.Go(func() {
			defer sem.Release(1)
			for _, m := range batch {
				e.process(ctx, p, m)
			}
		})
	}
	wg.Wait()

	if pull {
		e.pullAll(ctx, p)
	}

	e.finishPass(ctx, p, time.Since(started))
}

// pullAll refreshes the server lists one after another.
func (e *syncEngine) pullAll(ctx context.Context, p *passState) {
	for _, entityType := range models.PullableEntities {
		if ctx.Err() != nil {
			return
		}
		if p.isPreempted() || !e.network.IsReachable() {
			p.preempt()
			return
		}
		e.pullList(ctx, p, entityType)
	}
}

// pullList pulls one list. An unauthorized answer shares the pass-wide
// refresh with the push phase and is retried once.
func (e *syncEngine) pullList(ctx context.Context, p *passState, entityType models.EntityType) {
	gen := p.gate.enter()
	n, err := e.pull(ctx, entityType)
	oc, _ := classifyDispatchError(ctx, err)

	if oc == outcomeUnauthorized && e.creds != nil {
		if refreshErr := p.gate.refresh(ctx, gen, e.refreshCredential); refreshErr == nil {
			p.gate.enter()
			n, err = e.pull(ctx, entityType)
			oc, _ = classifyDispatchError(ctx, err)
		}
	}

	log := e.logger.With().Str("entity_type", string(entityType)).Logger()

	switch oc {
	case outcomeCancelled:
		return

	case outcomeOffline:
		p.preempt()
		return

	case outcomeSuccess:
		log.Debug().Int("cached", n).Msg("server list refreshed")
		e.setProgress(p.settlePull(true, ""))

	default:
		reason := fmt.Sprintf("%s list: %s", entityType, failureReason(err))
		log.Warn().Str("reason", reason).Msg("server list not refreshed")
		e.setProgress(p.settlePull(false, reason))
	}
}

// groupByKey keeps snapshot order and puts entries sharing a key into one
// batch so they run sequentially.
func groupByKey(entries []models.PendingMutation) [][]models.PendingMutation {
	index := make(map[models.EntityKey]int, len(entries))
	batches := make([][]models.PendingMutation, 0, len(entries))

	for _, m := range entries {
		if i, ok := index[m.Key]; ok {
			batches[i] = append(batches[i], m)
			continue
		}
		index[m.Key] = len(batches)
		batches = append(batches, []models.PendingMutation{m})
	}
	return batches
}

// process dispatches one mutation and applies its outcome to the queue.
func (e *syncEngine) process(ctx context.Context, p *passState, m models.PendingMutation) {
	if ctx.Err() != nil {
		return
	}
	if !e.network.IsReachable() {
		p.preempt()
		return
	}

	gen := p.gate.enter()
	err := e.dispatch(ctx, m)
	oc, hint := classifyDispatchError(ctx, err)
	reason := failureReason(err)

	if oc == outcomeUnauthorized {
		oc, hint, reason = e.retryAfterRefresh(ctx, p, m, gen)
	}

	log := e.logger.With().Str("entity_key", m.Key.String()).Str("kind", string(m.Kind)).Logger()
	persist := context.WithoutCancel(ctx)

	switch oc {
	case outcomeCancelled:
		return

	case outcomeOffline:
		p.preempt()
		return

	case outcomeSuccess:
		removed, ackErr := e.queue.Ack(persist, m)
		if ackErr != nil {
			log.Err(ackErr).Msg("mutation synced but could not be removed from the queue")
			e.progress(p, false, "local storage error")
			return
		}
		if !removed {
			e.metrics.Mutation(metrics.OutcomeSuperseded)
		} else {
			e.metrics.Mutation(metrics.OutcomeSuccess)
		}
		log.Debug().Msg("mutation synced")
		e.progress(p, true, "")

	case outcomeDeadLetter:
		_, qErr := e.queue.Kill(persist, m, reason)
		if e.superseded(qErr, p) {
			return
		}
		if qErr != nil {
			log.Err(qErr).Msg("failed to dead-letter mutation")
		}
		e.metrics.Mutation(metrics.OutcomeDeadLetter)
		log.Warn().Str("reason", reason).Msg("mutation dead-lettered")
		e.progress(p, false, reason)

	case outcomeRetry:
		next := e.backoff.nextAttemptAt(e.now(), m.Attempts+1, hint)
		updated, qErr := e.queue.Fail(persist, m, reason, next)
		if e.superseded(qErr, p) {
			return
		}
		if qErr != nil {
			log.Err(qErr).Msg("failed to record mutation failure")
		}
		if updated.IsDead() {
			e.metrics.Mutation(metrics.OutcomeDeadLetter)
		} else {
			e.metrics.Mutation(metrics.OutcomeRetry)
		}
		log.Info().Str("reason", reason).Int("attempts", updated.Attempts).
			Time("next_attempt_at", next).Msg("mutation failed, will retry")
		e.progress(p, false, reason)
	}
}

// retryAfterRefresh handles an unauthorized dispatch: refresh the
// credential once for the pass and resend this mutation once.
func (e *syncEngine) retryAfterRefresh(ctx context.Context, p *passState, m models.PendingMutation, gen int) (outcome, time.Duration, string) {
	if e.creds == nil {
		return outcomeDeadLetter, 0, "unauthorized"
	}

	if err := p.gate.refresh(ctx, gen, e.refreshCredential); err != nil {
		if ctx.Err() != nil {
			return outcomeCancelled, 0, ""
		}
		if refreshFailureIsTransient(err) {
			return outcomeRetry, 0, "credential refresh failed: " + failureReason(err)
		}
		return outcomeDeadLetter, 0, "unauthorized: credential refresh failed"
	}

	p.gate.enter()
	err := e.dispatch(ctx, m)
	oc, hint := classifyDispatchError(ctx, err)
	if oc == outcomeUnauthorized {
		return outcomeDeadLetter, 0, "unauthorized after credential refresh"
	}
	return oc, hint, failureReason(err)
}

func (e *syncEngine) refreshCredential(ctx context.Context) error {
	e.logger.Info().Msg("refreshing credential")
	err := e.creds.Refresh(ctx)
	e.metrics.Refresh(err == nil)
	if err != nil {
		e.logger.Warn().Err(err).Msg("credential refresh failed")
	}
	return err
}

// refreshExpiredCredential refreshes ahead of a pass when the token is a JWT
// that has already expired. Failures are left to the unauthorized path.
func (e *syncEngine) refreshExpiredCredential(ctx context.Context) {
	if e.creds == nil || !e.creds.NeedsRefresh(0) {
		return
	}
	_ = e.refreshCredential(ctx)
}

func (e *syncEngine) dispatch(ctx context.Context, m models.PendingMutation) error {
	started := time.Now()
	err := e.dispatcher.Dispatch(ctx, m)
	e.metrics.Dispatched(string(m.Kind), time.Since(started))
	return err
}

// superseded reports whether the entry was re-enqueued while in flight.
// The newer entry belongs to the next pass.
func (e *syncEngine) superseded(err error, p *passState) bool {
	if !errors.Is(err, queue.ErrSuperseded) {
		return false
	}
	e.metrics.Mutation(metrics.OutcomeSuperseded)
	e.progress(p, true, "")
	return true
}

func (e *syncEngine) progress(p *passState, ok bool, reason string) {
	e.setProgress(p.settle(ok, reason))
}

func (e *syncEngine) finishPass(ctx context.Context, p *passState, took time.Duration) {
	p.mu.Lock()
	synced, failed, processed, reason, preempted := p.synced, p.failed, p.processed, p.lastReason, p.preempted
	pulled, pullFailed, pullReason := p.pulled, p.pullFailed, p.pullReason
	p.mu.Unlock()

	e.logger.Info().
		Int("total", p.total).
		Int("processed", processed).
		Int("synced", synced).
		Int("failed", failed).
		Int("pulled", pulled).
		Int("pull_failed", pullFailed).
		Bool("preempted", preempted).
		Dur("took", took).
		Msg("sync pass finished")

	defer e.scheduleWakeup()

	switch {
	case ctx.Err() != nil:
		e.publish()

	case preempted || !e.network.IsReachable():
		e.metrics.Pass(metrics.PassOffline)
		e.setStatus(models.StatusOffline())

	case failed > 0:
		e.metrics.Pass(metrics.PassError)
		e.setStatus(models.StatusError(fmt.Sprintf("%d change(s) not synced: %s", failed, reason)))

	case pullFailed > 0:
		e.metrics.Pass(metrics.PassError)
		e.setStatus(models.StatusError(fmt.Sprintf("%d list(s) not refreshed: %s", pullFailed, pullReason)))

	default:
		at := e.now().UTC()
		e.persistLastSyncAt(context.WithoutCancel(ctx), at)

		e.mu.Lock()
		e.lastSyncAt = at
		e.mu.Unlock()

		e.metrics.Pass(metrics.PassCompleted)
		e.setStatus(models.StatusCompleted())
	}
}

// settleIdle clears a stale error or offline status once nothing is queued.
func (e *syncEngine) settleIdle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.status.State {
	case models.SyncError, models.SyncOffline:
		e.setStatusLocked(models.StatusIdle())
	default:
		e.publishLocked()
	}
}
