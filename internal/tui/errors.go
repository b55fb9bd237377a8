// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/repair-minder-sync/internal/queue"
)

// ErrNoSyncEngine is returned by New when the services carry no engine.
var ErrNoSyncEngine = errors.New("status screen needs a sync engine")

// humanizeActionError turns a dead-letter action failure into operator text.
func humanizeActionError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, queue.ErrNotFound):
		return "This change is no longer queued"
	case errors.Is(err, queue.ErrNotDeadLettered):
		return "This change was re-queued in the meantime"
	case errors.Is(err, queue.ErrPersistingChange):
		return "Could not update the local queue: " + err.Error()
	default:
		return err.Error()
	}
}
