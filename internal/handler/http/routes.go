package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Post("/api/download", h.startDownload)
		r.Get("/api/status", h.getStatus)
		r.With(withGZip).Get("/api/matches", h.listMatches)

		r.Post("/api/checkins", h.recordCheckin)
		r.With(withGZip).Get("/api/checkins", h.listCheckins)

		r.Post("/api/submission", h.submit)
		r.Get("/api/submission/preview", h.previewSubmission)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(hideMethodNotAllowed(router))

	return router
}
