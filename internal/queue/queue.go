// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue implements the durable mutation queue drained by the sync
// engine. It holds at most one entry per entity key; enqueueing for a key
// that is already queued replaces the entry.
//
// Every change is written through to a [store.MutationRepository] before the
// in-memory state is updated, so a failed write leaves the queue untouched.
package queue

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// Queue is safe for concurrent use.
type Queue struct {
	mu          sync.Mutex
	entries     map[models.EntityKey]models.PendingMutation
	seq         uint64
	maxAttempts int

	repo   store.MutationRepository
	now    func() time.Time
	newID  func() string
	logger *logger.Logger
}

// New returns an empty queue. Call [Queue.Load] to restore persisted
// entries.
func New(repo store.MutationRepository, maxAttempts int, logger *logger.Logger) *Queue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Queue{
		entries:     make(map[models.EntityKey]models.PendingMutation),
		maxAttempts: maxAttempts,
		repo:        repo,
		now:         time.Now,
		newID:       utils.NewUUIDGenerator().Generate,
		logger:      logger.WithComponent("queue"),
	}
}

// MaxAttempts is the number of failed attempts after which an entry is
// dead-lettered.
func (q *Queue) MaxAttempts() int {
	return q.maxAttempts
}

// Load replaces the in-memory state with the persisted entries.
func (q *Queue) Load(ctx context.Context) error {
	stored, err := q.repo.LoadMutations(ctx)
	if err != nil {
		return fmt.Errorf("load mutations: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = make(map[models.EntityKey]models.PendingMutation, len(stored))
	q.seq = 0
	for _, m := range stored {
		q.entries[m.Key] = m
		q.seq = max(q.seq, m.Seq)
	}

	q.logger.Info().Int("pending", q.countLocked(models.MutationPending)).
		Int("dead", q.countLocked(models.MutationDead)).
		Msg("mutation queue restored")
	return nil
}

// Enqueue inserts m or replaces the entry for m.Key. The stored entry gets a
// fresh ID, the current time, zero attempts and the pending state, and moves
// to the end of the queue. It returns the number of pending entries.
func (q *Queue) Enqueue(ctx context.Context, m models.PendingMutation) (int, error) {
	if err := m.Key.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMutation, err)
	}
	if m.Kind == "" {
		return 0, fmt.Errorf("%w: empty kind for %s", ErrInvalidMutation, m.Key)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	entry := models.PendingMutation{
		ID:         q.newID(),
		Key:        m.Key,
		Kind:       m.Kind,
		Payload:    slices.Clone(m.Payload),
		EnqueuedAt: q.now().UTC(),
		Seq:        q.seq + 1,
		State:      models.MutationPending,
	}

	if err := q.saveLocked(ctx, entry); err != nil {
		return 0, err
	}
	q.seq = entry.Seq

	_, replaced := q.entries[entry.Key]
	q.entries[entry.Key] = entry

	q.logger.Debug().
		Str("entity_key", entry.Key.String()).
		Str("kind", string(entry.Kind)).
		Bool("replaced", replaced).
		Msg("mutation enqueued")

	return q.countLocked(models.MutationPending), nil
}

// Snapshot returns the pending entries in insertion order. Entries are not
// removed.
func (q *Queue) Snapshot() []models.PendingMutation {
	return q.list(models.MutationPending)
}

// DeadLetters returns the dead-lettered entries in insertion order.
func (q *Queue) DeadLetters() []models.PendingMutation {
	return q.list(models.MutationDead)
}

// Get returns the entry for key.
func (q *Queue) Get(key models.EntityKey) (models.PendingMutation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	m, ok := q.entries[key]
	return m, ok
}

// Count is the number of pending (not dead-lettered) entries.
func (q *Queue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.countLocked(models.MutationPending)
}

// FailedCount is the number of dead-lettered entries.
func (q *Queue) FailedCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.countLocked(models.MutationDead)
}

// NextAttemptAt returns the earliest backoff deadline among pending entries
// that are not ready at now.
func (q *Queue) NextAttemptAt(now time.Time) (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var next time.Time
	for _, m := range q.entries {
		if m.IsDead() || m.ReadyAt(now) {
			continue
		}
		if next.IsZero() || m.NextAttemptAt.Before(next) {
			next = m.NextAttemptAt
		}
	}
	return next, !next.IsZero()
}

// Remove deletes the entry for key. Absent keys are not an error.
func (q *Queue) Remove(ctx context.Context, key models.EntityKey) error {
	_, err := q.remove(ctx, key, "")
	return err
}

// Ack removes m after the server confirmed it. When m.Key was re-enqueued
// since m was read, the newer entry is kept and Ack reports false.
func (q *Queue) Ack(ctx context.Context, m models.PendingMutation) (bool, error) {
	return q.remove(ctx, m.Key, m.ID)
}

// RecordFailure counts a failed attempt for key and gates the next attempt
// until nextAttemptAt. The entry is dead-lettered once its attempts reach
// the configured maximum.
func (q *Queue) RecordFailure(ctx context.Context, key models.EntityKey, reason string, nextAttemptAt time.Time) (models.PendingMutation, error) {
	return q.recordFailure(ctx, key, "", reason, nextAttemptAt)
}

// Fail is RecordFailure for the exact entry m. It returns [ErrSuperseded]
// when m.Key was re-enqueued in the meantime.
func (q *Queue) Fail(ctx context.Context, m models.PendingMutation, reason string, nextAttemptAt time.Time) (models.PendingMutation, error) {
	return q.recordFailure(ctx, m.Key, m.ID, reason, nextAttemptAt)
}

// DeadLetter parks the entry for key without further retries.
func (q *Queue) DeadLetter(ctx context.Context, key models.EntityKey, reason string) (models.PendingMutation, error) {
	return q.deadLetter(ctx, key, "", reason)
}

// Kill is DeadLetter for the exact entry m. It returns [ErrSuperseded] when
// m.Key was re-enqueued in the meantime.
func (q *Queue) Kill(ctx context.Context, m models.PendingMutation, reason string) (models.PendingMutation, error) {
	return q.deadLetter(ctx, m.Key, m.ID, reason)
}

// Discard drops a dead-lettered entry for good.
func (q *Queue) Discard(ctx context.Context, key models.EntityKey) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.entries[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if !m.IsDead() {
		return fmt.Errorf("%w: %s", ErrNotDeadLettered, key)
	}

	if err := q.deleteLocked(ctx, key); err != nil {
		return err
	}
	delete(q.entries, key)

	q.logger.Info().Str("entity_key", key.String()).Msg("dead-lettered mutation discarded")
	return nil
}

// Retry moves a dead-lettered entry back to the end of the pending queue
// with its attempts reset. The mutation keeps its ID.
func (q *Queue) Retry(ctx context.Context, key models.EntityKey) (models.PendingMutation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.entries[key]
	if !ok {
		return models.PendingMutation{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if !m.IsDead() {
		return models.PendingMutation{}, fmt.Errorf("%w: %s", ErrNotDeadLettered, key)
	}

	m.State = models.MutationPending
	m.Attempts = 0
	m.LastError = ""
	m.NextAttemptAt = time.Time{}
	m.Seq = q.seq + 1

	if err := q.saveLocked(ctx, m); err != nil {
		return models.PendingMutation{}, err
	}
	q.seq = m.Seq
	q.entries[key] = m

	q.logger.Info().Str("entity_key", key.String()).Msg("dead-lettered mutation requeued")
	return m, nil
}

func (q *Queue) remove(ctx context.Context, key models.EntityKey, id string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, ok := q.entries[key]
	if !ok {
		return false, nil
	}
	if id != "" && m.ID != id {
		return false, nil
	}

	if err := q.deleteLocked(ctx, key); err != nil {
		return false, err
	}
	delete(q.entries, key)
	return true, nil
}

func (q *Queue) recordFailure(ctx context.Context, key models.EntityKey, id, reason string, nextAttemptAt time.Time) (models.PendingMutation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, err := q.lookupLocked(key, id)
	if err != nil {
		return models.PendingMutation{}, err
	}

	m.Attempts++
	m.LastError = reason
	m.NextAttemptAt = nextAttemptAt.UTC()
	if m.Attempts >= q.maxAttempts {
		m.State = models.MutationDead
		m.NextAttemptAt = time.Time{}
	}

	if err = q.saveLocked(ctx, m); err != nil {
		return models.PendingMutation{}, err
	}
	q.entries[key] = m

	if m.IsDead() {
		q.logger.Warn().Str("entity_key", key.String()).Int("attempts", m.Attempts).
			Str("reason", reason).Msg("mutation dead-lettered after max attempts")
	}
	return m, nil
}

func (q *Queue) deadLetter(ctx context.Context, key models.EntityKey, id, reason string) (models.PendingMutation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	m, err := q.lookupLocked(key, id)
	if err != nil {
		return models.PendingMutation{}, err
	}

	// the retry budget is untouched; Attempts counts transient failures only
	m.State = models.MutationDead
	m.LastError = reason
	m.NextAttemptAt = time.Time{}

	if err = q.saveLocked(ctx, m); err != nil {
		return models.PendingMutation{}, err
	}
	q.entries[key] = m

	q.logger.Warn().Str("entity_key", key.String()).Str("reason", reason).Msg("mutation dead-lettered")
	return m, nil
}

func (q *Queue) lookupLocked(key models.EntityKey, id string) (models.PendingMutation, error) {
	m, ok := q.entries[key]
	if !ok {
		return models.PendingMutation{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if id != "" && m.ID != id {
		return models.PendingMutation{}, fmt.Errorf("%w: %s", ErrSuperseded, key)
	}
	return m, nil
}

func (q *Queue) list(state models.MutationState) []models.PendingMutation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.PendingMutation, 0, len(q.entries))
	for _, m := range q.entries {
		if m.State == state {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b models.PendingMutation) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		default:
			return 0
		}
	})
	return out
}

func (q *Queue) countLocked(state models.MutationState) int {
	n := 0
	for _, m := range q.entries {
		if m.State == state {
			n++
		}
	}
	return n
}

func (q *Queue) saveLocked(ctx context.Context, m models.PendingMutation) error {
	if err := q.repo.SaveMutation(ctx, m); err != nil {
		q.logger.Err(err).Str("entity_key", m.Key.String()).Msg("failed to persist mutation")
		return fmt.Errorf("%w: %w", ErrPersistingChange, err)
	}
	return nil
}

func (q *Queue) deleteLocked(ctx context.Context, key models.EntityKey) error {
	if err := q.repo.DeleteMutation(ctx, key); err != nil {
		q.logger.Err(err).Str("entity_key", key.String()).Msg("failed to delete mutation")
		return fmt.Errorf("%w: %w", ErrPersistingChange, err)
	}
	return nil
}
