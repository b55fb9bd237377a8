package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/mock"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListRequestSpec(t *testing.T) {
	tests := []struct {
		entityType models.EntityType
		wantPath   string
		wantErr    error
	}{
		{entityType: models.EntityOrder, wantPath: "/api/orders"},
		{entityType: models.EntityDevice, wantPath: "/api/devices"},
		{entityType: models.EntityClient, wantPath: "/api/clients"},
		{entityType: models.EntityTicket, wantPath: "/api/tickets"},
		{entityType: models.EntityEnquiry, wantErr: ErrNotPullable},
		{entityType: "invoice", wantErr: ErrNotPullable},
	}

	for _, tt := range tests {
		t.Run(string(tt.entityType), func(t *testing.T) {
			spec, err := ListRequestSpec(tt.entityType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, spec.Method)
			assert.Equal(t, tt.wantPath, spec.Path)
			assert.Equal(t, map[string]string{"page": "1", "limit": "100"}, spec.Query)
			assert.Nil(t, spec.Body)
		})
	}
}

func newTestPuller(t *testing.T) (*entityPuller, *mock.MockRequestExecutor, *mock.MockEntityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	exec := mock.NewMockRequestExecutor(ctrl)
	cache := mock.NewMockEntityRepository(ctrl)

	p := NewPuller(exec, cache, logger.Nop()).(*entityPuller)
	p.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return p, exec, cache
}

func TestEntityPuller_Pull(t *testing.T) {
	t.Run("caches items with an id", func(t *testing.T) {
		p, exec, cache := newTestPuller(t)

		exec.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, spec models.RequestSpec) ([]byte, error) {
				assert.Equal(t, "/api/devices", spec.Path)
				return []byte(`{"success":true,"data":[{"id":7,"status":"in_repair"},{"model":"no id"},{"id":"8"}]}`), nil
			})
		cache.EXPECT().SaveEntities(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, records []models.EntityRecord) error {
				require.Len(t, records, 2)
				assert.Equal(t, "device:7", records[0].Key.String())
				assert.Equal(t, "device:8", records[1].Key.String())
				assert.JSONEq(t, `{"id":7,"status":"in_repair"}`, string(records[0].Data))
				assert.Equal(t, p.now(), records[1].PulledAt)
				return nil
			})

		n, err := p.Pull(context.Background(), models.EntityDevice)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("empty list", func(t *testing.T) {
		p, exec, cache := newTestPuller(t)

		exec.EXPECT().Do(gomock.Any(), gomock.Any()).Return([]byte(`{"success":true,"data":[]}`), nil)
		cache.EXPECT().SaveEntities(gomock.Any(), []models.EntityRecord{}).Return(nil)

		n, err := p.Pull(context.Background(), models.EntityTicket)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("request error is returned as is", func(t *testing.T) {
		p, exec, _ := newTestPuller(t)
		reqErr := &adapter.RequestError{Kind: adapter.KindServerError, StatusCode: http.StatusBadGateway}
		exec.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, reqErr)

		_, err := p.Pull(context.Background(), models.EntityOrder)

		assert.Same(t, reqErr, err)
	})

	t.Run("rejected envelope", func(t *testing.T) {
		p, exec, _ := newTestPuller(t)
		exec.EXPECT().Do(gomock.Any(), gomock.Any()).Return([]byte(`{"success":false,"error":"forbidden"}`), nil)

		_, err := p.Pull(context.Background(), models.EntityClient)

		assert.ErrorIs(t, err, adapter.ErrRejected)
	})

	t.Run("undecodable body", func(t *testing.T) {
		p, exec, _ := newTestPuller(t)
		exec.EXPECT().Do(gomock.Any(), gomock.Any()).Return([]byte(`<html>`), nil)

		_, err := p.Pull(context.Background(), models.EntityClient)

		assert.ErrorIs(t, err, adapter.ErrDecoding)
	})

	t.Run("cache failure", func(t *testing.T) {
		p, exec, cache := newTestPuller(t)
		boom := errors.New("disk full")
		exec.EXPECT().Do(gomock.Any(), gomock.Any()).Return([]byte(`{"success":true,"data":[{"id":1}]}`), nil)
		cache.EXPECT().SaveEntities(gomock.Any(), gomock.Any()).Return(boom)

		_, err := p.Pull(context.Background(), models.EntityOrder)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "cache order list")
	})

	t.Run("not pullable sends nothing", func(t *testing.T) {
		p, _, _ := newTestPuller(t)

		_, err := p.Pull(context.Background(), models.EntityEnquiry)

		assert.ErrorIs(t, err, ErrNotPullable)
	})
}
