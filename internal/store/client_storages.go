package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
)

// ClientStorages groups the client repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Mutations backs the durable sync queue.
	Mutations MutationRepository
	// Session holds the login session restored at start-up.
	Session SessionRepository
	// Meta holds small values such as the last successful sync time.
	Meta MetaRepository
	// Entities caches the server lists pulled by a full sync.
	Entities EntityRepository

	closer io.Closer
}

// NewClientStorages initialises the client storage layer:
//   - ":memory:" and "*.json" DSNs use the JSON file store;
//   - anything else is a SQLite file path; the file is created if missing
//     and the embedded migrations are applied.
//
// A non-empty cfg.SessionSecret wraps the session repository with
// [NewSealedSessionRepository].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if isFileStoreDSN(cfg.DB.DSN) {
		fs, err := NewFileStorage(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return withSealedSession(ctx, &ClientStorages{Mutations: fs, Session: fs, Meta: fs, Entities: fs}, cfg, logger)
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return withSealedSession(ctx, &ClientStorages{
		Mutations: NewMutationRepository(db, logger),
		Session:   NewSessionRepository(db, logger),
		Meta:      NewMetaRepository(db, logger),
		Entities:  NewEntityRepository(db, logger),
		closer:    db,
	}, cfg, logger)
}

func withSealedSession(ctx context.Context, s *ClientStorages, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.SessionSecret == "" {
		return s, nil
	}

	keyChain, err := sessionKeyChain(ctx, s.Meta, cfg.SessionSecret)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("session key chain error: %w", err)
	}
	s.Session = NewSealedSessionRepository(s.Session, keyChain, logger)
	logger.Debug().Msg("session tokens are sealed at rest")

	return s, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
