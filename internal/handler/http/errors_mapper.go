package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/app"
	"github.com/MKhiriev/repair-minder-sync/internal/queue"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/validators"
	"github.com/MKhiriev/repair-minder-sync/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrEmptyEntityKey, errorResponse{http.StatusBadRequest, app.MsgInvalidEntityKey}},
	{models.ErrInvalidEntityKey, errorResponse{http.StatusBadRequest, app.MsgInvalidEntityKey}},
	{service.ErrUnknownMutationKind, errorResponse{http.StatusBadRequest, app.MsgUnknownMutationKind}},
	{service.ErrEntityTypeMismatch, errorResponse{http.StatusBadRequest, app.MsgKindEntityMismatch}},
	{validators.ErrInvalidPayload, errorResponse{http.StatusBadRequest, app.MsgInvalidPayload}},
	{queue.ErrInvalidMutation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{queue.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgMutationNotFound}},
	{queue.ErrNotDeadLettered, errorResponse{http.StatusConflict, app.MsgNotDeadLettered}},
	{service.ErrSyncInProgress, errorResponse{http.StatusConflict, app.MsgSyncInProgress}},
	{service.ErrEngineStopped, errorResponse{http.StatusServiceUnavailable, app.MsgEngineStopped}},
	{service.ErrNotPullable, errorResponse{http.StatusBadRequest, app.MsgNotPullable}},
	{service.ErrPullDisabled, errorResponse{http.StatusServiceUnavailable, app.MsgPullDisabled}},
	{adapter.ErrOffline, errorResponse{http.StatusServiceUnavailable, app.MsgOffline}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	if _, ok := adapter.AsRequestError(err); ok {
		return errorResponse{http.StatusBadGateway, app.MsgUpstreamFailed}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
