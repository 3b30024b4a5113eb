package http

import (
	"net/http"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

// health reports liveness and the time elapsed since the recorded start
// time. Uptime is zero until the start time has been marked.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{Status: "ok"}

	if started := h.metrics.StartTime(); !started.IsZero() {
		if uptime := h.clock.Since(started); uptime > 0 {
			status.UptimeSeconds = uptime.Seconds()
		}
	}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}
