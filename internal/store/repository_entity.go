package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
)

const entitiesTable = "entity_cache"

var entityColumns = []string{"entity_key", "entity_type", "data", "pulled_at"}

const upsertEntitySuffix = `ON CONFLICT(entity_key) DO UPDATE SET
	entity_type = excluded.entity_type,
	data = excluded.data,
	pulled_at = excluded.pulled_at`

type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository returns the SQLite [EntityRepository].
func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{DB: db, logger: logger}
}

// SaveEntities upserts records inside one transaction.
func (r *entityRepository) SaveEntities(ctx context.Context, records []models.EntityRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.SaveEntities").
			Int("records", len(records)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		query, args, buildErr := builder.Insert(entitiesTable).
			Columns(entityColumns...).
			Values(rec.Key.String(), string(rec.Key.Type), []byte(rec.Data), toUnixNano(rec.PulledAt)).
			Suffix(upsertEntitySuffix).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "entityRepository.SaveEntities").
				Str("entity_key", rec.Key.String()).
				Msg("failed to upsert cached entity")
			return fmt.Errorf("%w: save entity %s: %w", ErrExecutingStatement, rec.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.SaveEntities").
			Int("records", len(records)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *entityRepository) LoadEntities(ctx context.Context, entityType models.EntityType) ([]models.EntityRecord, error) {
	query, args, err := builder.Select(entityColumns...).
		From(entitiesTable).
		Where(sq.Eq{"entity_type": string(entityType)}).
		OrderBy("entity_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.LoadEntities").
			Str("entity_type", string(entityType)).
			Msg("failed to query cached entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EntityRecord
	for rows.Next() {
		var (
			key, typ string
			data     []byte
			pulledAt int64
		)
		if err = rows.Scan(&key, &typ, &data, &pulledAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		k, parseErr := models.ParseEntityKey(key)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrCorruptedEntity, key, parseErr)
		}

		records = append(records, models.EntityRecord{
			Key:      k,
			Data:     data,
			PulledAt: fromUnixNano(pulledAt),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
