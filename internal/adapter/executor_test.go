package adapter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/mock"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func newMockedExecutor(t *testing.T) (*adapter.Executor, *mock.MockTransport, *mock.MockCredentialProvider, *mock.MockReachabilityChecker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	creds := mock.NewMockCredentialProvider(ctrl)
	network := mock.NewMockReachabilityChecker(ctrl)
	return adapter.NewExecutor(transport, creds, network), transport, creds, network
}

func TestExecutor_Do_OfflineFailsFast(t *testing.T) {
	exec, _, _, network := newMockedExecutor(t)
	network.EXPECT().IsReachable().Return(false)

	_, err := exec.Do(context.Background(), models.RequestSpec{Path: "/api/orders"})

	assert.ErrorIs(t, err, adapter.ErrOffline)
}

func TestExecutor_Do_AttachesBearerToken(t *testing.T) {
	exec, transport, creds, network := newMockedExecutor(t)
	network.EXPECT().IsReachable().Return(true)
	creds.EXPECT().CurrentToken().Return("tok-1", true)
	transport.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.TransportRequest) (adapter.TransportResponse, error) {
			assert.Equal(t, "Bearer tok-1", req.Headers["Authorization"])
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Nil(t, req.Body)
			return adapter.TransportResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
		})

	_, err := exec.Do(context.Background(), models.RequestSpec{Path: "/api/orders"})

	require.NoError(t, err)
}

func TestExecutor_Do_OmitsAuthorization(t *testing.T) {
	tests := []struct {
		name      string
		anonymous bool
		token     string
		hasToken  bool
	}{
		{name: "no credential", token: "", hasToken: false},
		{name: "anonymous endpoint", anonymous: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, transport, creds, network := newMockedExecutor(t)
			network.EXPECT().IsReachable().Return(true)
			if !tt.anonymous {
				creds.EXPECT().CurrentToken().Return(tt.token, tt.hasToken)
			}
			transport.EXPECT().
				Execute(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req adapter.TransportRequest) (adapter.TransportResponse, error) {
					_, ok := req.Headers["Authorization"]
					assert.False(t, ok)
					return adapter.TransportResponse{StatusCode: http.StatusNoContent}, nil
				})

			err := exec.RequestVoid(context.Background(), models.RequestSpec{
				Method:    http.MethodPost,
				Path:      "/api/auth/magic-link",
				Anonymous: tt.anonymous,
			})

			require.NoError(t, err)
		})
	}
}

func TestExecutor_Do_ReadsTokenPerRequest(t *testing.T) {
	exec, transport, creds, network := newMockedExecutor(t)
	network.EXPECT().IsReachable().Return(true).Times(2)
	gomock.InOrder(
		creds.EXPECT().CurrentToken().Return("old", true),
		creds.EXPECT().CurrentToken().Return("new", true),
	)
	var seen []string
	transport.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.TransportRequest) (adapter.TransportResponse, error) {
			seen = append(seen, req.Headers["Authorization"])
			return adapter.TransportResponse{StatusCode: http.StatusOK}, nil
		}).Times(2)

	for range 2 {
		require.NoError(t, exec.RequestVoid(context.Background(), models.RequestSpec{Path: "/x"}))
	}

	assert.Equal(t, []string{"Bearer old", "Bearer new"}, seen)
}

func TestExecutor_Do_TransportFailure(t *testing.T) {
	exec, transport, creds, network := newMockedExecutor(t)
	network.EXPECT().IsReachable().Return(true)
	creds.EXPECT().CurrentToken().Return("", false)
	transport.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(adapter.TransportResponse{}, context.DeadlineExceeded)

	_, err := exec.Do(context.Background(), models.RequestSpec{Path: "/api/orders"})

	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, adapter.IsTransient(err))
}

func TestExecutor_Do_EncodingFailure(t *testing.T) {
	exec, _, _, network := newMockedExecutor(t)
	network.EXPECT().IsReachable().Return(true)

	_, err := exec.Do(context.Background(), models.RequestSpec{
		Method: http.MethodPost,
		Path:   "/api/orders",
		Body:   map[string]any{"bad": make(chan int)},
	})

	assert.ErrorIs(t, err, adapter.ErrEncoding)
	assert.False(t, adapter.IsTransient(err))
}

func TestExecutor_Do_NilCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(adapter.TransportResponse{StatusCode: http.StatusOK, Body: []byte("ok")}, nil)

	body, err := adapter.NewExecutor(transport, nil, nil).Do(context.Background(), models.RequestSpec{Path: "/"})

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

// fakeAPI is an httptest backed executor for end-to-end classification.
func fakeAPI(t *testing.T, handler http.HandlerFunc) adapter.RequestExecutor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tr, err := adapter.NewHTTPTransport(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 2 * time.Second})
	require.NoError(t, err)
	return adapter.NewExecutor(tr, nil, nil)
}

func TestRequest_DecodesEnvelope(t *testing.T) {
	exec := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"42","status":"ready"}}`))
	})

	got, err := adapter.Request[order](context.Background(), exec, models.RequestSpec{Path: "/api/orders/42"})

	require.NoError(t, err)
	assert.Equal(t, order{ID: "42", Status: "ready"}, got)
}

func TestRequest_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header map[string]string
		body   string
		wantIs error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantIs: adapter.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantIs: adapter.ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, header: map[string]string{"Retry-After": "3"}, wantIs: adapter.ErrRateLimited},
		{name: "server error", status: http.StatusBadGateway, wantIs: adapter.ErrServerError},
		{name: "not found", status: http.StatusNotFound, wantIs: adapter.ErrRejected},
		{name: "shape mismatch", status: http.StatusOK, body: `{"success":true,"data":{"id":42}}`, wantIs: adapter.ErrDecoding},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantIs: adapter.ErrDecoding},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"error":"order locked"}`, wantIs: adapter.ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := adapter.Request[order](context.Background(), exec, models.RequestSpec{Path: "/api/orders/42"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestRequest_RateLimitedCarriesHint(t *testing.T) {
	exec := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := adapter.Request[order](context.Background(), exec, models.RequestSpec{Path: "/"})

	var reqErr *adapter.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 7*time.Second, reqErr.RetryAfter)
}

func TestRequestDirect_DecodesBareBody(t *testing.T) {
	exec := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"a","refresh_token":"b"}`))
	})

	got, err := adapter.RequestDirect[models.RefreshResponse](context.Background(), exec, models.RequestSpec{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "a", got.Token)
	assert.Equal(t, "b", got.RefreshToken)
}

func TestRequestVoid(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		wantIs error
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "envelope ok", status: http.StatusOK, body: `{"success":true}`},
		{name: "plain body", status: http.StatusOK, body: `accepted`},
		{name: "envelope rejected", status: http.StatusOK, body: `{"success":false,"message":"duplicate"}`, wantIs: adapter.ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, wantIs: adapter.ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := exec.RequestVoid(context.Background(), models.RequestSpec{Method: http.MethodPatch, Path: "/api/devices/7", Body: map[string]string{"status": "done"}})

			if tt.wantIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}
