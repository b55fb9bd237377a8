package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPullList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		th := newTestHandler(t)
		th.engine.EXPECT().Pull(gomock.Any(), models.EntityDevice).Return(12, nil)

		rec := th.do(http.MethodPost, "/api/sync/pull/device", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"entity_type":"device","pulled":12}`, rec.Body.String())
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "type without a list",
			err:      service.ErrNotPullable,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"entity type has no server list"}`,
		},
		{
			name:     "offline",
			err:      &adapter.RequestError{Kind: adapter.KindOffline},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"sync API unreachable"}`,
		},
		{
			name:     "server error",
			err:      &adapter.RequestError{Kind: adapter.KindServerError, StatusCode: http.StatusBadGateway},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"sync API request failed"}`,
		},
		{
			name:     "pulling disabled",
			err:      service.ErrPullDisabled,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"list pulling is disabled"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.engine.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(0, tt.err)

			rec := th.do(http.MethodPost, "/api/sync/pull/enquiry", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestListEntities(t *testing.T) {
	t.Run("cached records", func(t *testing.T) {
		th := newTestHandler(t)
		pulledAt := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
		th.entities.EXPECT().LoadEntities(gomock.Any(), models.EntityOrder).Return([]models.EntityRecord{
			{Key: models.NewEntityKey(models.EntityOrder, "42"), Data: json.RawMessage(`{"id":42,"status":"open"}`), PulledAt: pulledAt},
		}, nil)

		rec := th.do(http.MethodGet, "/api/entities/order", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"entities": [{
				"key": "order:42",
				"data": {"id": 42, "status": "open"},
				"pulled_at": "2026-10-17T09:00:00Z"
			}],
			"length": 1
		}`, rec.Body.String())
	})

	t.Run("empty cache is an array", func(t *testing.T) {
		th := newTestHandler(t)
		th.entities.EXPECT().LoadEntities(gomock.Any(), models.EntityTicket).Return(nil, nil)

		rec := th.do(http.MethodGet, "/api/entities/ticket", "")

		assert.JSONEq(t, `{"entities":[],"length":0}`, rec.Body.String())
	})

	t.Run("type without a list", func(t *testing.T) {
		th := newTestHandler(t)

		rec := th.do(http.MethodGet, "/api/entities/enquiry", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		th := newTestHandler(t)
		th.entities.EXPECT().LoadEntities(gomock.Any(), models.EntityClient).
			Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("database is locked")))

		rec := th.do(http.MethodGet, "/api/entities/client", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
