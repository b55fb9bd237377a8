// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth owns the client's credential: it hands the current bearer
// token to the request executor, persists the session, and performs token
// refreshes on behalf of the sync engine.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// RefreshFunc exchanges a refresh token for a new credential pair.
type RefreshFunc func(ctx context.Context, refreshToken string) (models.RefreshResponse, error)

// Credentials is the process-wide credential holder. The current session
// is swapped atomically; readers never observe a half-updated pair.
type Credentials struct {
	session atomic.Pointer[models.Session]
	refresh atomic.Pointer[RefreshFunc]

	repo   store.SessionRepository
	group  singleflight.Group
	now    func() time.Time
	logger *logger.Logger
}

// NewCredentials builds an empty holder. repo may be nil, in which case the
// session lives in memory only.
func NewCredentials(repo store.SessionRepository, logger *logger.Logger) *Credentials {
	return &Credentials{
		repo:   repo,
		now:    time.Now,
		logger: logger.WithComponent("auth"),
	}
}

// SetRefreshFunc installs the refresh call. It is set after construction
// because the default refresher itself goes through an executor that reads
// tokens from this holder.
func (c *Credentials) SetRefreshFunc(f RefreshFunc) {
	c.refresh.Store(&f)
}

// CurrentToken implements adapter.CredentialProvider.
func (c *Credentials) CurrentToken() (string, bool) {
	s := c.session.Load()
	if s == nil || s.AccessToken == "" {
		return "", false
	}
	return s.AccessToken, true
}

// Session returns a copy of the current session.
func (c *Credentials) Session() (models.Session, bool) {
	s := c.session.Load()
	if s == nil {
		return models.Session{}, false
	}
	return *s, true
}

// SetSession makes session current and persists it (login).
func (c *Credentials) SetSession(ctx context.Context, session models.Session) error {
	session.AccessToken = strings.TrimSpace(session.AccessToken)
	session.RefreshToken = strings.TrimSpace(session.RefreshToken)
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = c.now()
	}

	c.session.Store(&session)

	if c.repo != nil {
		if err := c.repo.SaveSession(ctx, session); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
	}
	return nil
}

// Clear drops the current session (logout).
func (c *Credentials) Clear(ctx context.Context) error {
	c.session.Store(nil)

	if c.repo != nil {
		if err := c.repo.ClearSession(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// Restore loads the persisted session, if any. It reports whether a session
// was found.
func (c *Credentials) Restore(ctx context.Context) (bool, error) {
	if c.repo == nil {
		return false, nil
	}

	session, err := c.repo.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}

	c.session.Store(&session)
	return true, nil
}

// NeedsRefresh reports whether the access token is a JWT expiring within
// leeway while a refresh token is available.
func (c *Credentials) NeedsRefresh(leeway time.Duration) bool {
	s := c.session.Load()
	if s == nil || s.AccessToken == "" || s.RefreshToken == "" {
		return false
	}
	return utils.IsTokenExpired(s.AccessToken, c.now(), leeway)
}

// Refresh obtains a new credential pair. Concurrent callers share a single
// in-flight refresh and all receive its result.
func (c *Credentials) Refresh(ctx context.Context) error {
	_, err, shared := c.group.Do("refresh", func() (any, error) {
		return nil, c.doRefresh(ctx)
	})
	if shared {
		c.logger.Debug().Msg("joined in-flight token refresh")
	}
	return err
}

func (c *Credentials) doRefresh(ctx context.Context) error {
	fp := c.refresh.Load()
	if fp == nil {
		return ErrRefreshNotConfigured
	}

	current := c.session.Load()
	if current == nil || current.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	resp, err := (*fp)(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			c.logger.Warn().Err(err).Msg("refresh token rejected, clearing session")
			if clearErr := c.Clear(ctx); clearErr != nil {
				c.logger.Err(clearErr).Msg("failed to clear rejected session")
			}
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return fmt.Errorf("refresh token: %w", err)
	}

	next := models.Session{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
	}
	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}

	if err = c.SetSession(ctx, next); err != nil {
		c.logger.Err(err).Msg("refreshed session kept in memory only")
	}
	c.logger.Info().Msg("access token refreshed")

	return nil
}
