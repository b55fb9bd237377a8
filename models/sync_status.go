package models

import (
	"fmt"
	"time"
)

// SyncState is the discriminator of [SyncStatus].
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncSyncing
	SyncCompleted
	SyncError
	SyncOffline
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncCompleted:
		return "completed"
	case SyncError:
		return "error"
	case SyncOffline:
		return "offline"
	default:
		return fmt.Sprintf("SyncState(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SyncStatus summarises what the sync engine is doing. Progress is only
// meaningful for [SyncSyncing] and Message only for [SyncError].
type SyncStatus struct {
	State    SyncState `json:"state"`
	Progress float64   `json:"progress,omitempty"`
	Message  string    `json:"message,omitempty"`
}

func StatusIdle() SyncStatus      { return SyncStatus{State: SyncIdle} }
func StatusCompleted() SyncStatus { return SyncStatus{State: SyncCompleted} }
func StatusOffline() SyncStatus   { return SyncStatus{State: SyncOffline} }

// StatusSyncing returns a syncing status with progress clamped to [0, 1].
func StatusSyncing(progress float64) SyncStatus {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	return SyncStatus{State: SyncSyncing, Progress: progress}
}

func StatusError(message string) SyncStatus {
	return SyncStatus{State: SyncError, Message: message}
}

// InProgress reports whether a pass is currently running.
func (s SyncStatus) InProgress() bool {
	return s.State == SyncSyncing
}

func (s SyncStatus) String() string {
	switch s.State {
	case SyncSyncing:
		return fmt.Sprintf("syncing(%.2f)", s.Progress)
	case SyncError:
		return fmt.Sprintf("error(%s)", s.Message)
	default:
		return s.State.String()
	}
}

// SyncSnapshot is the observable state published to readers of the engine.
type SyncSnapshot struct {
	Status     SyncStatus `json:"status"`
	Pending    int        `json:"pending"`
	Failed     int        `json:"failed"`
	LastSyncAt time.Time  `json:"last_sync_at,omitempty"`
}
