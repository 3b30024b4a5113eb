package http

import (
	"net/http"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log entry per request: info for success,
// warn for client errors, error for server errors.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		accessLogEvent(logger.FromRequest(r), status).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
