package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order, outermost first: request
// metrics, panic recovery, CORS, trace id, access log, request timeout.
// Metrics sit outside the recoverer so a panicking request is counted as 500.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/encrypt", h.encrypt)

	router.Get("/api/version", h.getServerVersion)
	router.Get("/health", h.health)
	router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())

	return router
}
