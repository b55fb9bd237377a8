package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version", h.getAppVersion)
	router.Handle("/metrics", h.services.Metrics.Handler())

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", h.getSyncStatus)
		r.Post("/trigger", h.triggerSync)
		r.Post("/pull/{type}", h.pullList)

		r.Get("/dead-letters", h.listDeadLetters)
		r.Post("/dead-letters/{key}/retry", h.retryDeadLetter)
		r.Delete("/dead-letters/{key}", h.discardDeadLetter)
	})
	router.Post("/api/mutations", h.enqueueMutation)
	router.Get("/api/entities/{type}", h.listEntities)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
