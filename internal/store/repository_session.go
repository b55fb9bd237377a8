package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
)

const (
	sessionTable = "session"
	sessionRowID = 1
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := builder.Select("token", "refresh_token", "updated_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session   models.Session
		updatedAt int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&session.AccessToken, &session.RefreshToken, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session.UpdatedAt = fromUnixNano(updatedAt)
	return session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := builder.Insert(sessionTable).
		Columns("id", "token", "refresh_token", "updated_at").
		Values(sessionRowID, session.AccessToken, session.RefreshToken, toUnixNano(session.UpdatedAt)).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, refresh_token = excluded.refresh_token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := builder.Delete(sessionTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: clear session: %w", ErrExecutingStatement, err)
	}

	return nil
}
