// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound request path to the repair-shop API.
//
// [Transport] performs exactly one HTTP exchange and knows nothing about
// credentials or retries. [Executor] wraps a Transport: it checks
// reachability, attaches the current bearer token, and classifies every
// outcome into a [*RequestError] whose kind callers match with [errors.Is]
// against the sentinels in errors.go ([ErrOffline], [ErrUnauthorized], ...).
//
// Typed calls go through the generic helpers [Request] (enveloped responses)
// and [RequestDirect] (bare JSON bodies). The executor does not log, cache
// or retry.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/repair-minder-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TransportRequest is a single outbound exchange. Path is relative to the
// transport's base URL.
type TransportRequest struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// TransportResponse is the raw result of an exchange that reached the server.
type TransportResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport executes one request/response exchange. An error means the
// server was never heard from (connection refused, DNS, timeout, cancelled
// context); any HTTP status, including 5xx, is a response.
type Transport interface {
	Execute(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// CredentialProvider supplies the bearer token for the next request. It is
// read once per request and never cached by the executor.
type CredentialProvider interface {
	CurrentToken() (string, bool)
}

// ReachabilityChecker reports whether the API is currently reachable.
type ReachabilityChecker interface {
	IsReachable() bool
}

// RequestExecutor is the contract the sync engine and UI collaborators
// depend on. Do returns the raw successful body; RequestVoid discards it.
type RequestExecutor interface {
	Do(ctx context.Context, spec models.RequestSpec) ([]byte, error)
	RequestVoid(ctx context.Context, spec models.RequestSpec) error
}
