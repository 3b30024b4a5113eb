package http

import (
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/metrics"
	"github.com/StyNW7/WhatsVUpp-V99/internal/service"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/benbjohnson/clock"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Registry

	metricsPath    string
	allowedOrigins []string
	requestTimeout time.Duration

	traceIDs utils.IDGenerator
	clock    clock.Clock

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *metrics.Registry, serverCfg config.Server, metricsCfg config.Metrics, logger *logger.Logger) *Handler {
	logger.Info().
		Str("metrics_path", metricsCfg.Path).
		Strs("allowed_origins", serverCfg.AllowedOrigins).
		Msg("http handler created")

	return &Handler{
		services:       services,
		metrics:        registry,
		metricsPath:    metricsCfg.Path,
		allowedOrigins: serverCfg.AllowedOrigins,
		requestTimeout: serverCfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		clock:          clock.New(),
		logger:         logger,
	}
}
