// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
)

// outcome is what the engine does with a mutation after one dispatch.
type outcome int

const (
	outcomeSuccess outcome = iota
	// transient failure: count the attempt and gate the next one
	outcomeRetry
	// permanent failure: park for manual resolution
	outcomeDeadLetter
	// refresh the credential and retry once
	outcomeUnauthorized
	// not attempted: the API became unreachable
	outcomeOffline
	// the engine is shutting down; leave the entry untouched
	outcomeCancelled
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeRetry:
		return "retry"
	case outcomeDeadLetter:
		return "dead_letter"
	case outcomeUnauthorized:
		return "unauthorized"
	case outcomeOffline:
		return "offline"
	default:
		return "cancelled"
	}
}

// classifyDispatchError maps a dispatch result onto an outcome and the
// server's retry hint.
func classifyDispatchError(ctx context.Context, err error) (outcome, time.Duration) {
	if err == nil {
		return outcomeSuccess, 0
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return outcomeCancelled, 0
	}
	if errors.Is(err, ErrUnknownMutationKind) || errors.Is(err, ErrEntityTypeMismatch) {
		return outcomeDeadLetter, 0
	}

	reqErr, ok := adapter.AsRequestError(err)
	if !ok {
		return outcomeRetry, 0
	}

	switch reqErr.Kind {
	case adapter.KindOffline:
		return outcomeOffline, 0
	case adapter.KindUnauthorized:
		return outcomeUnauthorized, 0
	case adapter.KindDecoding, adapter.KindRejected, adapter.KindEncoding:
		return outcomeDeadLetter, 0
	case adapter.KindRateLimited:
		return outcomeRetry, reqErr.RetryAfter
	default:
		return outcomeRetry, 0
	}
}

// refreshFailureIsTransient reports whether a failed refresh may succeed
// later without the user logging in again.
func refreshFailureIsTransient(err error) bool {
	reqErr, ok := adapter.AsRequestError(err)
	return ok && reqErr.Transient()
}

// failureReason is the short text stored as LastError and shown in the
// aggregate status message.
func failureReason(err error) string {
	if err == nil {
		return ""
	}
	if reqErr, ok := adapter.AsRequestError(err); ok {
		return reqErr.Reason()
	}
	return err.Error()
}
