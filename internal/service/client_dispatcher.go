package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// IdempotencyKeyHeader carries the mutation ID so the API can drop replays
// of a write whose acknowledgement was lost.
const IdempotencyKeyHeader = "Idempotency-Key"

type route struct {
	method string
	path   string // format with the escaped entity id
}

var mutationRoutes = map[models.MutationKind]route{
	models.MutationOrderUpdated:         {method: http.MethodPatch, path: "/api/orders/%s"},
	models.MutationDeviceUpdated:        {method: http.MethodPatch, path: "/api/devices/%s"},
	models.MutationTicketMessageCreated: {method: http.MethodPost, path: "/api/tickets/%s/messages"},
	models.MutationQuoteApproved:        {method: http.MethodPost, path: "/api/customer/orders/%s/approve-quote"},
	models.MutationQuoteRejected:        {method: http.MethodPost, path: "/api/customer/orders/%s/reject-quote"},
	models.MutationEnquiryReply:         {method: http.MethodPost, path: "/api/customer/enquiries/%s/reply"},
}

type requestDispatcher struct {
	exec adapter.RequestExecutor
}

// NewDispatcher maps mutation kinds onto API requests sent through exec.
func NewDispatcher(exec adapter.RequestExecutor) Dispatcher {
	return &requestDispatcher{exec: exec}
}

// KnownMutationKind reports whether kind has a route.
func KnownMutationKind(kind models.MutationKind) bool {
	_, ok := mutationRoutes[kind]
	return ok && kind.Known()
}

func (d *requestDispatcher) Dispatch(ctx context.Context, m models.PendingMutation) error {
	spec, err := BuildRequestSpec(m)
	if err != nil {
		return err
	}
	return d.exec.RequestVoid(ctx, spec)
}

// BuildRequestSpec returns the request that delivers m.
func BuildRequestSpec(m models.PendingMutation) (models.RequestSpec, error) {
	if err := m.Kind.CheckTarget(m.Key); err != nil {
		return models.RequestSpec{}, err
	}
	r, ok := mutationRoutes[m.Kind]
	if !ok {
		return models.RequestSpec{}, fmt.Errorf("%w: %q", ErrUnknownMutationKind, m.Kind)
	}

	spec := models.RequestSpec{
		Method: r.method,
		Path:   fmt.Sprintf(r.path, url.PathEscape(m.Key.ID)),
	}
	if len(m.Payload) > 0 {
		spec.Body = m.Payload
	}
	if m.ID != "" {
		spec.Headers = map[string]string{IdempotencyKeyHeader: m.ID}
	}
	return spec, nil
}
