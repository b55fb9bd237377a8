package service

import (
	"errors"

	"github.com/MKhiriev/repair-minder-sync/models"
)

var (
	ErrSyncInProgress = errors.New("sync pass already in progress")
	ErrEngineStopped  = errors.New("sync engine stopped")
	ErrEngineStarted  = errors.New("sync engine already started")

	// ErrNotPullable is returned for entity types without a server list.
	ErrNotPullable = errors.New("entity type has no server list")
	// ErrPullDisabled is returned by Pull on an engine built without a puller.
	ErrPullDisabled = errors.New("pulling server lists is not configured")

	ErrUnknownMutationKind = models.ErrUnknownMutationKind
	ErrEntityTypeMismatch  = models.ErrEntityTypeMismatch
)
