package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/adapter"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/store"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// PullLimit is the page size of a list pull. Only the first page is pulled.
const PullLimit = 100

var listPaths = map[models.EntityType]string{
	models.EntityOrder:  "/api/orders",
	models.EntityDevice: "/api/devices",
	models.EntityClient: "/api/clients",
	models.EntityTicket: "/api/tickets",
}

type entityPuller struct {
	exec   adapter.RequestExecutor
	cache  store.EntityRepository
	now    func() time.Time
	logger *logger.Logger
}

// NewPuller pulls server lists through exec into cache.
func NewPuller(exec adapter.RequestExecutor, cache store.EntityRepository, logger *logger.Logger) Puller {
	return &entityPuller{
		exec:   exec,
		cache:  cache,
		now:    time.Now,
		logger: logger.WithComponent("pull"),
	}
}

// ListRequestSpec returns the request that fetches the first page of the
// server list of entityType.
func ListRequestSpec(entityType models.EntityType) (models.RequestSpec, error) {
	path, ok := listPaths[entityType]
	if !ok {
		return models.RequestSpec{}, fmt.Errorf("%w: %q", ErrNotPullable, entityType)
	}
	return models.RequestSpec{
		Method: http.MethodGet,
		Path:   path,
		Query: map[string]string{
			"page":  "1",
			"limit": strconv.Itoa(PullLimit),
		},
	}, nil
}

// Pull fetches the list and upserts every item that carries an id. Items
// without one are logged and skipped.
func (p *entityPuller) Pull(ctx context.Context, entityType models.EntityType) (int, error) {
	spec, err := ListRequestSpec(entityType)
	if err != nil {
		return 0, err
	}

	items, err := adapter.Request[[]json.RawMessage](ctx, p.exec, spec)
	if err != nil {
		return 0, err
	}

	pulledAt := p.now()
	records := make([]models.EntityRecord, 0, len(items))
	for i, raw := range items {
		rec, recErr := models.NewEntityRecord(entityType, raw, pulledAt)
		if recErr != nil {
			p.logger.Warn().Err(recErr).Int("index", i).Msg("skipping pulled item")
			continue
		}
		records = append(records, rec)
	}

	if err = p.cache.SaveEntities(ctx, records); err != nil {
		return 0, fmt.Errorf("cache %s list: %w", entityType, err)
	}

	p.logger.Debug().
		Str("entity_type", string(entityType)).
		Int("received", len(items)).
		Int("cached", len(records)).
		Msg("server list pulled")
	return len(records), nil
}
