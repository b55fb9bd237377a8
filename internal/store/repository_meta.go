package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
)

const metaTable = "sync_meta"

type metaRepository struct {
	*DB
	logger *logger.Logger
}

// NewMetaRepository returns the SQLite [MetaRepository].
func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	return &metaRepository{DB: db, logger: logger}
}

func (r *metaRepository) GetMeta(ctx context.Context, key string) (string, error) {
	query, args, err := builder.Select("value").
		From(metaTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMetaNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "metaRepository.GetMeta").Str("key", key).Msg("failed to read meta value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *metaRepository) SetMeta(ctx context.Context, key, value string) error {
	query, args, err := builder.Insert(metaTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "metaRepository.SetMeta").Str("key", key).Msg("failed to write meta value")
		return fmt.Errorf("%w: set meta %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}
