package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRepository_SaveEntities(t *testing.T) {
	pulledAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	records := []models.EntityRecord{
		{Key: models.NewEntityKey(models.EntityOrder, "1"), Data: json.RawMessage(`{"id":"1"}`), PulledAt: pulledAt},
		{Key: models.NewEntityKey(models.EntityOrder, "2"), Data: json.RawMessage(`{"id":"2"}`), PulledAt: pulledAt},
	}

	t.Run("success: both rows in one transaction", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO entity_cache .* ON CONFLICT\\(entity_key\\) DO UPDATE").
			WithArgs("order:1", "order", []byte(`{"id":"1"}`), pulledAt.UnixNano()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO entity_cache").
			WithArgs("order:2", "order", []byte(`{"id":"2"}`), pulledAt.UnixNano()).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveEntities(context.Background(), records))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch touches nothing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		require.NoError(t, repo.SaveEntities(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectBegin().WillReturnError(errors.New("cannot begin"))

		err := repo.SaveEntities(context.Background(), records)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: second row rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO entity_cache").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO entity_cache").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.SaveEntities(context.Background(), records)
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.Contains(t, err.Error(), "order:2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: commit fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO entity_cache").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO entity_cache").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit().WillReturnError(errors.New("locked"))

		err := repo.SaveEntities(context.Background(), records)
		assert.ErrorIs(t, err, ErrCommittingTransaction)
	})
}

func TestEntityRepository_LoadEntities(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEntityRepository(db, logger.Nop())

	pulledAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(entityColumns).
		AddRow("device:7", "device", []byte(`{"id":7}`), pulledAt.UnixNano()).
		AddRow("device:8", "device", []byte(`{"id":8}`), pulledAt.UnixNano())
	mock.ExpectQuery("SELECT .* FROM entity_cache WHERE entity_type = \\? ORDER BY entity_key ASC").
		WithArgs("device").
		WillReturnRows(rows)

	got, err := repo.LoadEntities(context.Background(), models.EntityDevice)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.NewEntityKey(models.EntityDevice, "7"), got[0].Key)
	assert.JSONEq(t, `{"id":7}`, string(got[0].Data))
	assert.True(t, got[1].PulledAt.Equal(pulledAt))
}

func TestEntityRepository_LoadEntities_Failures(t *testing.T) {
	t.Run("corrupted key", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows(entityColumns).AddRow("no-colon", "order", []byte(`{}`), int64(1)))

		_, err := repo.LoadEntities(context.Background(), models.EntityOrder)
		assert.ErrorIs(t, err, ErrCorruptedEntity)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewEntityRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)

		_, err := repo.LoadEntities(context.Background(), models.EntityOrder)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
