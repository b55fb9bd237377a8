package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/service"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/go-chi/chi/v5"
)

// pullList refreshes one server list on the request.
func (h *Handler) pullList(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "type"))

	n, err := h.services.SyncEngine.Pull(r.Context(), entityType)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.pullList").Str("entity_type", string(entityType)).Msg("list pull failed")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PullResponse{EntityType: entityType, Pulled: n}, http.StatusOK)
}

// listEntities returns the cached copies of one server list ordered by key.
func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "type"))
	if !entityType.Pullable() {
		h.writeError(w, fmt.Errorf("%w: %q", service.ErrNotPullable, entityType))
		return
	}
	if h.services.Entities == nil {
		h.writeError(w, service.ErrPullDisabled)
		return
	}

	records, err := h.services.Entities.LoadEntities(r.Context(), entityType)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listEntities").Str("entity_type", string(entityType)).Msg("failed to load cached entities")
		h.writeError(w, err)
		return
	}

	if records == nil {
		records = []models.EntityRecord{}
	}
	_, _ = utils.WriteJSON(w, models.EntitiesResponse{Entities: records, Length: len(records)}, http.StatusOK)
}
