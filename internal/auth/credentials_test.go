package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/mock"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCredentials_CurrentToken(t *testing.T) {
	c := NewCredentials(nil, logger.Nop())

	_, ok := c.CurrentToken()
	assert.False(t, ok)

	require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: " tok-1 ", RefreshToken: "ref-1"}))

	tok, ok := c.CurrentToken()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, c.Clear(context.Background()))
	_, ok = c.CurrentToken()
	assert.False(t, ok)
}

func TestCredentials_SetSessionPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, "tok", s.AccessToken)
			assert.False(t, s.UpdatedAt.IsZero())
			return nil
		})

	c := NewCredentials(repo, logger.Nop())
	require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "tok"}))
}

func TestCredentials_Restore(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSessionRepository(ctrl)
		repo.EXPECT().LoadSession(gomock.Any()).Return(models.Session{AccessToken: "stored"}, nil)

		c := NewCredentials(repo, logger.Nop())
		found, err := c.Restore(context.Background())

		require.NoError(t, err)
		assert.True(t, found)
		tok, _ := c.CurrentToken()
		assert.Equal(t, "stored", tok)
	})

	t.Run("none stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSessionRepository(ctrl)
		repo.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

		c := NewCredentials(repo, logger.Nop())
		found, err := c.Restore(context.Background())

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSessionRepository(ctrl)
		repo.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, errors.New("disk"))

		c := NewCredentials(repo, logger.Nop())
		_, err := c.Restore(context.Background())

		assert.Error(t, err)
	})
}

func TestCredentials_Refresh_ReplacesSession(t *testing.T) {
	c := NewCredentials(nil, logger.Nop())
	require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "old", RefreshToken: "ref"}))
	c.SetRefreshFunc(func(_ context.Context, refreshToken string) (models.RefreshResponse, error) {
		assert.Equal(t, "ref", refreshToken)
		return models.RefreshResponse{Token: "new"}, nil
	})

	require.NoError(t, c.Refresh(context.Background()))

	s, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, "new", s.AccessToken)
	assert.Equal(t, "ref", s.RefreshToken, "refresh token is kept when the server does not rotate it")
}

func TestCredentials_Refresh_Failures(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		c := NewCredentials(nil, logger.Nop())
		assert.ErrorIs(t, c.Refresh(context.Background()), ErrRefreshNotConfigured)
	})

	t.Run("no refresh token", func(t *testing.T) {
		c := NewCredentials(nil, logger.Nop())
		c.SetRefreshFunc(func(context.Context, string) (models.RefreshResponse, error) {
			t.Fatal("refresh must not be called")
			return models.RefreshResponse{}, nil
		})
		require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "tok"}))

		assert.ErrorIs(t, c.Refresh(context.Background()), ErrNoRefreshToken)
	})

	t.Run("rejected refresh clears session", func(t *testing.T) {
		c := NewCredentials(nil, logger.Nop())
		require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "tok", RefreshToken: "ref"}))
		c.SetRefreshFunc(func(context.Context, string) (models.RefreshResponse, error) {
			return models.RefreshResponse{}, &adapter.RequestError{Kind: adapter.KindUnauthorized, StatusCode: 401}
		})

		err := c.Refresh(context.Background())

		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		_, ok := c.CurrentToken()
		assert.False(t, ok)
	})

	t.Run("transient failure keeps session", func(t *testing.T) {
		c := NewCredentials(nil, logger.Nop())
		require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "tok", RefreshToken: "ref"}))
		c.SetRefreshFunc(func(context.Context, string) (models.RefreshResponse, error) {
			return models.RefreshResponse{}, &adapter.RequestError{Kind: adapter.KindServerError, StatusCode: 503}
		})

		err := c.Refresh(context.Background())

		assert.ErrorIs(t, err, adapter.ErrServerError)
		tok, ok := c.CurrentToken()
		assert.True(t, ok)
		assert.Equal(t, "tok", tok)
	})
}

func TestCredentials_Refresh_SingleFlight(t *testing.T) {
	c := NewCredentials(nil, logger.Nop())
	require.NoError(t, c.SetSession(context.Background(), models.Session{AccessToken: "old", RefreshToken: "ref"}))

	var calls atomic.Int32
	release := make(chan struct{})
	c.SetRefreshFunc(func(context.Context, string) (models.RefreshResponse, error) {
		calls.Add(1)
		<-release
		return models.RefreshResponse{Token: "new", RefreshToken: "ref-2"}, nil
	})

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Go(func() {
			errs <- c.Refresh(context.Background())
		})
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
	tok, _ := c.CurrentToken()
	assert.Equal(t, "new", tok)
}

func TestCredentials_NeedsRefresh(t *testing.T) {
	expired, err := utils.GenerateJWTToken("user", -time.Minute, "secret")
	require.NoError(t, err)
	fresh, err := utils.GenerateJWTToken("user", time.Hour, "secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		session *models.Session
		want    bool
	}{
		{name: "no session", want: false},
		{name: "expired jwt", session: &models.Session{AccessToken: expired, RefreshToken: "ref"}, want: true},
		{name: "expired jwt without refresh token", session: &models.Session{AccessToken: expired}, want: false},
		{name: "fresh jwt", session: &models.Session{AccessToken: fresh, RefreshToken: "ref"}, want: false},
		{name: "opaque token", session: &models.Session{AccessToken: "opaque", RefreshToken: "ref"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCredentials(nil, logger.Nop())
			if tt.session != nil {
				require.NoError(t, c.SetSession(context.Background(), *tt.session))
			}
			assert.Equal(t, tt.want, c.NeedsRefresh(30*time.Second))
		})
	}
}
