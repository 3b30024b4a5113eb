package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no registered route, keeping
// the route label bounded regardless of the paths clients request.
const unmatchedRoute = "unmatched"

// withMetrics records one counter increment and one latency observation per
// request, labelled by method, chi route pattern and status code.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(r.Method, routePattern(r), mw.statusCode(), time.Since(start))
	})
}

// routePattern returns the matched chi pattern (e.g. "/encrypt"). It is only
// complete after the router has dispatched the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
