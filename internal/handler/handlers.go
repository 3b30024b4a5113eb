package handler

import (
	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/handler/http"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/metrics"
	"github.com/StyNW7/WhatsVUpp-V99/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, registry *metrics.Registry, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, registry, cfg.Server, cfg.Metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
