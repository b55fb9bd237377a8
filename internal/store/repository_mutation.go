// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
)

const mutationsTable = "pending_mutations"

var mutationColumns = []string{
	"entity_key",
	"id",
	"kind",
	"payload",
	"enqueued_at",
	"seq",
	"attempts",
	"state",
	"last_error",
	"next_attempt_at",
}

const upsertMutationSuffix = `ON CONFLICT(entity_key) DO UPDATE SET
	id = excluded.id,
	kind = excluded.kind,
	payload = excluded.payload,
	enqueued_at = excluded.enqueued_at,
	seq = excluded.seq,
	attempts = excluded.attempts,
	state = excluded.state,
	last_error = excluded.last_error,
	next_attempt_at = excluded.next_attempt_at`

type mutationRepository struct {
	*DB
	logger *logger.Logger
}

// NewMutationRepository returns the SQLite [MutationRepository].
func NewMutationRepository(db *DB, logger *logger.Logger) MutationRepository {
	return &mutationRepository{DB: db, logger: logger}
}

func (r *mutationRepository) LoadMutations(ctx context.Context) ([]models.PendingMutation, error) {
	query, args, err := builder.Select(mutationColumns...).
		From(mutationsTable).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "mutationRepository.LoadMutations").
			Msg("failed to query pending mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mutations []models.PendingMutation
	for rows.Next() {
		var (
			m                         models.PendingMutation
			key, kind, state          string
			payload                   []byte
			enqueuedAt, nextAttemptAt int64
			seq                       int64
		)

		if err = rows.Scan(&key, &m.ID, &kind, &payload, &enqueuedAt, &seq, &m.Attempts, &state, &m.LastError, &nextAttemptAt); err != nil {
			r.logger.Err(err).
				Str("func", "mutationRepository.LoadMutations").
				Msg("failed to scan pending mutation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		m.Key, err = models.ParseEntityKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrCorruptedMutation, key, err)
		}
		m.Kind = models.MutationKind(kind)
		m.State = models.MutationState(state)
		m.Seq = uint64(seq)
		m.EnqueuedAt = fromUnixNano(enqueuedAt)
		m.NextAttemptAt = fromUnixNano(nextAttemptAt)
		if len(payload) > 0 {
			m.Payload = payload
		}

		mutations = append(mutations, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mutations, nil
}

func (r *mutationRepository) SaveMutation(ctx context.Context, m models.PendingMutation) error {
	var payload any
	if len(m.Payload) > 0 {
		payload = []byte(m.Payload)
	}

	query, args, err := builder.Insert(mutationsTable).
		Columns(mutationColumns...).
		Values(
			m.Key.String(),
			m.ID,
			string(m.Kind),
			payload,
			toUnixNano(m.EnqueuedAt),
			int64(m.Seq),
			m.Attempts,
			string(m.State),
			m.LastError,
			toUnixNano(m.NextAttemptAt),
		).
		Suffix(upsertMutationSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "mutationRepository.SaveMutation").
			Str("entity_key", m.Key.String()).
			Msg("failed to upsert pending mutation")
		return fmt.Errorf("%w: save mutation %s: %w", ErrExecutingStatement, m.Key, err)
	}

	return nil
}

func (r *mutationRepository) DeleteMutation(ctx context.Context, key models.EntityKey) error {
	query, args, err := builder.Delete(mutationsTable).
		Where(sq.Eq{"entity_key": key.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "mutationRepository.DeleteMutation").
			Str("entity_key", key.String()).
			Msg("failed to delete pending mutation")
		return fmt.Errorf("%w: delete mutation %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}
