// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrNoRefreshToken is returned by Refresh when the session carries no
	// refresh token (or nobody is logged in).
	ErrNoRefreshToken = errors.New("no refresh token")

	// ErrSessionExpired is returned by Refresh when the server rejected the
	// refresh token. The local session is cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrRefreshNotConfigured is returned by Refresh before a refresh
	// function was installed.
	ErrRefreshNotConfigured = errors.New("refresh function not configured")
)
