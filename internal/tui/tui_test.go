package tui

import (
	"testing"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/mock"
	"github.com/MKhiriev/repair-minder-sync/internal/queue"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	_, err := New(&service.ClientServices{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSyncEngine)

	engine := mock.NewMockSyncEngine(gomock.NewController(t))
	ui, err := New(&service.ClientServices{SyncEngine: engine}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

func TestHumanizeActionError(t *testing.T) {
	assert.Empty(t, humanizeActionError(nil))
	assert.Equal(t, "This change is no longer queued", humanizeActionError(queue.ErrNotFound))
	assert.Contains(t, humanizeActionError(queue.ErrPersistingChange), "Could not update the local queue")
}
