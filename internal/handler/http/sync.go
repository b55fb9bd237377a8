package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/repair-minder-sync/internal/app"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.SyncEngine.Snapshot(), http.StatusOK)
}

// triggerSync starts a pass in the background and answers 202. With
// ?wait=true the pass runs on the request and the resulting snapshot is
// returned.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	engine := h.services.SyncEngine

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		engine.Trigger()
		_, _ = utils.WriteJSON(w, engine.Snapshot(), http.StatusAccepted)
		return
	}

	if err := engine.Sync(r.Context()); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.triggerSync").Msg("waiting sync was not started")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, engine.Snapshot(), http.StatusOK)
}

func (h *Handler) enqueueMutation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnqueueRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Str("func", "*Handler.enqueueMutation").Msg("invalid JSON was passed")
		if errors.Is(err, models.ErrInvalidEntityKey) {
			h.writeError(w, err)
			return
		}
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.enqueueMutation").Msg("mutation rejected")
		h.writeError(w, err)
		return
	}

	pending, err := h.services.SyncEngine.Enqueue(r.Context(), req.EntityKey, req.Kind, req.Payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enqueueMutation").Str("entity_key", req.EntityKey.String()).Msg("enqueue failed")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.EnqueueResponse{Pending: pending}, http.StatusAccepted)
}

func (h *Handler) listDeadLetters(w http.ResponseWriter, r *http.Request) {
	dead := h.services.SyncEngine.DeadLetters()

	response := models.DeadLettersResponse{
		DeadLetters: make([]models.DeadLetter, 0, len(dead)),
		Length:      len(dead),
	}
	for _, m := range dead {
		response.DeadLetters = append(response.DeadLetters, models.NewDeadLetter(m))
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) retryDeadLetter(w http.ResponseWriter, r *http.Request) {
	key, err := entityKeyFromPath(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.services.SyncEngine.Retry(r.Context(), key); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.retryDeadLetter").Str("entity_key", key.String()).Msg("retry failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) discardDeadLetter(w http.ResponseWriter, r *http.Request) {
	key, err := entityKeyFromPath(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.services.SyncEngine.Discard(r.Context(), key); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.discardDeadLetter").Str("entity_key", key.String()).Msg("discard failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entityKeyFromPath(r *http.Request) (models.EntityKey, error) {
	raw := chi.URLParam(r, "key")
	if raw == "" {
		return models.EntityKey{}, ErrEmptyEntityKey
	}
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return models.ParseEntityKey(raw)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteError(w, resp.message, resp.status)
}
