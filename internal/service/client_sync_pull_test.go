package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/auth"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/mock"
	"github.com/MKhiriev/repair-minder-sync/internal/network"
	"github.com/MKhiriev/repair-minder-sync/internal/queue"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// requestLog records "METHOD /path" of every API call.
type requestLog struct {
	mu    sync.Mutex
	lines []string
	query map[string]string
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, r.Method+" "+r.URL.Path)
	if r.Method == http.MethodGet {
		l.query = map[string]string{"page": r.URL.Query().Get("page"), "limit": r.URL.Query().Get("limit")}
	}
}

func (l *requestLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func (l *requestLog) gets() int {
	n := 0
	for _, line := range l.get() {
		if strings.HasPrefix(line, http.MethodGet) {
			n++
		}
	}
	return n
}

// listAPI answers list GETs with two items and every write with success.
func listAPI(log *requestLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		if r.Method != http.MethodGet {
			ok(w, r)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/api/")
		_, _ = fmt.Fprintf(w, `{"success":true,"data":[{"id":"%s-1"},{"id":2},{"title":"no id"}]}`, name)
	}
}

func (h *syncHarness) enablePull() {
	h.engine.puller = NewPuller(h.exec, h.meta, logger.Nop())
}

func TestSyncEngine_FullSyncPushesThenPulls(t *testing.T) {
	log := &requestLog{}
	h := newSyncHarness(t, listAPI(log))
	h.enablePull()
	h.enqueueDirect(t, models.NewEntityKey(models.EntityOrder, "1"), models.MutationOrderUpdated)

	ch, cancel := h.engine.Subscribe()
	defer cancel()

	require.NoError(t, h.engine.Sync(context.Background()))

	assert.Equal(t, []string{
		"PATCH /api/orders/1",
		"GET /api/orders",
		"GET /api/devices",
		"GET /api/clients",
		"GET /api/tickets",
	}, log.get())
	assert.Equal(t, map[string]string{"page": "1", "limit": "100"}, log.query)

	for _, et := range models.PullableEntities {
		cached, err := h.meta.LoadEntities(context.Background(), et)
		require.NoError(t, err)
		assert.Len(t, cached, 2, "items without an id are skipped")
	}
	orders, _ := h.meta.LoadEntities(context.Background(), models.EntityOrder)
	assert.Equal(t, "order:2", orders[0].Key.String())
	assert.Equal(t, "order:orders-1", orders[1].Key.String())

	assert.Equal(t, 0, h.engine.PendingCount())
	assert.False(t, h.engine.LastSyncAt().IsZero())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PullsTotal.WithLabelValues("ticket", "success")))

	var progress []float64
	for len(ch) > 0 {
		snap := <-ch
		if snap.Status.State == models.SyncSyncing {
			progress = append(progress, snap.Status.Progress)
		}
	}
	require.NotEmpty(t, progress)
	assert.IsNonDecreasing(t, progress)
	assert.Contains(t, progress, 0.5, "the push phase fills the first half")
	assert.Equal(t, 1.0, progress[len(progress)-1])
}

func TestSyncEngine_TriggerWithEmptyQueuePullsOnly(t *testing.T) {
	log := &requestLog{}
	h := newSyncHarness(t, listAPI(log))
	h.enablePull()

	h.engine.Trigger()

	require.Eventually(t, func() bool {
		return log.gets() == len(models.PullableEntities) && !h.engine.running.Load()
	}, time.Second, time.Millisecond)
	assert.Len(t, log.get(), len(models.PullableEntities))
	assert.False(t, h.engine.LastSyncAt().IsZero())
}

func TestSyncEngine_EnqueueAndWakeupsOnlyPush(t *testing.T) {
	log := &requestLog{}
	h := newSyncHarness(t, listAPI(log))
	h.enablePull()

	_, err := h.engine.Enqueue(context.Background(), models.NewEntityKey(models.EntityDevice, "7"), models.MutationDeviceUpdated, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return h.engine.PendingCount() == 0 && !h.engine.running.Load()
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{"PATCH /api/devices/7"}, log.get())
}

func TestSyncEngine_PullFailureReportsError(t *testing.T) {
	log := &requestLog{}
	api := listAPI(log)
	h := newSyncHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/devices" {
			log.add(r)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		api(w, r)
	})
	h.enablePull()

	require.NoError(t, h.engine.Sync(context.Background()))

	assert.Equal(t, models.StatusError("1 list(s) not refreshed: device list: server error"), h.engine.Status())
	assert.True(t, h.engine.LastSyncAt().IsZero())
	assert.Equal(t, 4, log.gets(), "a failed list does not stop the others")

	tickets, err := h.meta.LoadEntities(context.Background(), models.EntityTicket)
	require.NoError(t, err)
	assert.Len(t, tickets, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.PullsTotal.WithLabelValues("device", "fail")))
}

func TestSyncEngine_PushFailureWinsOverPullFailure(t *testing.T) {
	h := newSyncHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	h.enablePull()
	h.enqueueDirect(t, models.NewEntityKey(models.EntityOrder, "1"), models.MutationOrderUpdated)

	require.NoError(t, h.engine.Sync(context.Background()))

	assert.Equal(t, models.StatusError("1 change(s) not synced: server error"), h.engine.Status())
}

func TestSyncEngine_PullUnauthorizedSharesOneRefresh(t *testing.T) {
	var refreshes atomic.Int32
	h := newSyncHarness(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == auth.RefreshPath:
			refreshes.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"new","refresh_token":"ref-2"}}`))
		case r.Header.Get("Authorization") != "Bearer new":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1}]}`))
		}
	})
	require.NoError(t, h.creds.SetSession(context.Background(), models.Session{AccessToken: "old", RefreshToken: "ref"}))
	h.enablePull()

	require.NoError(t, h.engine.Sync(context.Background()))

	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, int32(len(models.PullableEntities)+1), h.calls.Load(), "only the first list is sent twice")
	assert.False(t, h.engine.LastSyncAt().IsZero())
}

func newPullEngine(t *testing.T) (*syncEngine, *network.Monitor, *mock.MockPuller, *mock.MockCredentialRefresher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	puller := mock.NewMockPuller(ctrl)
	creds := mock.NewMockCredentialRefresher(ctrl)

	fs, err := store.NewFileStorage(":memory:")
	require.NoError(t, err)
	monitor := network.NewMonitor(true)

	e := NewSyncEngine(SyncEngineDeps{
		Queue:       queue.New(fs, testPolicy.MaxAttempts, logger.Nop()),
		Dispatcher:  mock.NewMockDispatcher(ctrl),
		Puller:      puller,
		Network:     monitor,
		Credentials: creds,
	}, testPolicy, logger.Nop()).(*syncEngine)
	t.Cleanup(e.Stop)

	return e, monitor, puller, creds
}

func TestSyncEngine_PullOfflinePreemptsRemainingLists(t *testing.T) {
	e, monitor, puller, creds := newPullEngine(t)

	creds.EXPECT().NeedsRefresh(gomock.Any()).Return(false)
	gomock.InOrder(
		puller.EXPECT().Pull(gomock.Any(), models.EntityOrder).Return(3, nil),
		puller.EXPECT().Pull(gomock.Any(), models.EntityDevice).DoAndReturn(
			func(context.Context, models.EntityType) (int, error) {
				monitor.Set(false)
				return 0, &adapter.RequestError{Kind: adapter.KindOffline}
			}),
	)

	require.NoError(t, e.Sync(context.Background()))

	assert.Equal(t, models.StatusOffline(), e.Status())
	assert.True(t, e.LastSyncAt().IsZero())
}

func TestSyncEngine_PullFlagSurvivesOfflinePass(t *testing.T) {
	e, monitor, puller, creds := newPullEngine(t)
	monitor.Set(false)

	require.NoError(t, e.Sync(context.Background()))
	assert.Equal(t, models.StatusOffline(), e.Status())

	monitor.Set(true)
	creds.EXPECT().NeedsRefresh(gomock.Any()).Return(false)
	puller.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(0, nil).Times(len(models.PullableEntities))

	e.kick()
	require.Eventually(t, func() bool { return !e.running.Load() && e.Status().State == models.SyncIdle }, time.Second, time.Millisecond)
}

func TestSyncEngine_Pull(t *testing.T) {
	t.Run("single list", func(t *testing.T) {
		e, _, puller, _ := newPullEngine(t)
		puller.EXPECT().Pull(gomock.Any(), models.EntityClient).Return(7, nil)

		n, err := e.Pull(context.Background(), models.EntityClient)

		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("not pullable", func(t *testing.T) {
		e, _, _, _ := newPullEngine(t)

		_, err := e.Pull(context.Background(), models.EntityEnquiry)

		assert.ErrorIs(t, err, ErrNotPullable)
	})

	t.Run("no puller", func(t *testing.T) {
		e, _, _, _ := newMockedEngine(t)

		_, err := e.Pull(context.Background(), models.EntityOrder)

		assert.ErrorIs(t, err, ErrPullDisabled)
	})

	t.Run("offline turns status offline", func(t *testing.T) {
		e, _, puller, _ := newPullEngine(t)
		puller.EXPECT().Pull(gomock.Any(), models.EntityOrder).Return(0, &adapter.RequestError{Kind: adapter.KindOffline})

		_, err := e.Pull(context.Background(), models.EntityOrder)

		assert.ErrorIs(t, err, adapter.ErrOffline)
		assert.Equal(t, models.StatusOffline(), e.Status())
	})

	t.Run("unauthorized refreshes and retries once", func(t *testing.T) {
		e, _, puller, creds := newPullEngine(t)
		gomock.InOrder(
			puller.EXPECT().Pull(gomock.Any(), models.EntityTicket).Return(0, &adapter.RequestError{Kind: adapter.KindUnauthorized, StatusCode: 401}),
			creds.EXPECT().Refresh(gomock.Any()).Return(nil),
			puller.EXPECT().Pull(gomock.Any(), models.EntityTicket).Return(2, nil),
		)

		n, err := e.Pull(context.Background(), models.EntityTicket)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("failure is returned", func(t *testing.T) {
		e, _, puller, _ := newPullEngine(t)
		boom := errors.New("disk full")
		puller.EXPECT().Pull(gomock.Any(), models.EntityDevice).Return(0, boom)

		_, err := e.Pull(context.Background(), models.EntityDevice)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, models.SyncIdle, e.Status().State)
	})
}
