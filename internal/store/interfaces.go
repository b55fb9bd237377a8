// Package store persists the client's durable state: the pending mutation
// queue, the login session, small sync metadata values and the cache of
// pulled server entities.
//
// Two backends implement the repositories: a SQLite database (go-sqlite3,
// queries built with squirrel, schema applied by goose) and a JSON file
// store used for ":memory:" and "*.json" DSNs. [NewClientStorages] picks one
// from the configured DSN.
package store

import (
	"context"

	"github.com/MKhiriev/repair-minder-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MutationRepository stores pending mutations keyed by entity key.
type MutationRepository interface {
	// LoadMutations returns every stored mutation ordered by Seq.
	LoadMutations(ctx context.Context) ([]models.PendingMutation, error)
	// SaveMutation inserts or replaces the entry for m.Key.
	SaveMutation(ctx context.Context, m models.PendingMutation) error
	// DeleteMutation removes the entry for key; absent keys are not an error.
	DeleteMutation(ctx context.Context, key models.EntityKey) error
}

// SessionRepository stores the single login session.
type SessionRepository interface {
	// LoadSession returns ErrSessionNotFound when no session is stored.
	LoadSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// MetaRepository stores small string values such as the last sync time.
type MetaRepository interface {
	// GetMeta returns ErrMetaNotFound for unknown keys.
	GetMeta(ctx context.Context, key string) (string, error)
	SetMeta(ctx context.Context, key, value string) error
}

// EntityRepository caches the last pulled server copy of each resource.
type EntityRepository interface {
	// SaveEntities upserts all records in one write; either all of them
	// are stored or none.
	SaveEntities(ctx context.Context, records []models.EntityRecord) error
	// LoadEntities returns the cached records of one type ordered by key.
	LoadEntities(ctx context.Context, entityType models.EntityType) ([]models.EntityRecord, error)
}

// Well-known metadata keys.
const (
	MetaLastSyncAt = "last_sync_at"
)
