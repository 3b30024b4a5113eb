package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/crypto"
	"github.com/StyNW7/WhatsVUpp-V99/internal/handler"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/memstat"
	"github.com/StyNW7/WhatsVUpp-V99/internal/metrics"
	"github.com/StyNW7/WhatsVUpp-V99/internal/server"
	"github.com/StyNW7/WhatsVUpp-V99/internal/service"
	"github.com/StyNW7/WhatsVUpp-V99/internal/workers"
	"github.com/StyNW7/WhatsVUpp-V99/models"
	"github.com/benbjohnson/clock"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("cipher-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("metrics_path", cfg.Metrics.Path).
		Str("memory_source", cfg.Workers.MemorySource).
		Dur("memory_sample_interval", cfg.Workers.MemorySampleInterval).
		Msg("received configs")

	cipher, err := crypto.NewAESCBCCipher([]byte(cfg.Cipher.Key), []byte(cfg.Cipher.IV))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}
	log.Info().Str("key_fingerprint", cipher.Fingerprint()).Msg("cipher ready")
	if cfg.UsesDefaultKeyMaterial() {
		log.Warn().Msg("cipher uses the built-in default key or IV; set CIPHER_KEY and CIPHER_IV in production")
	}

	registry, err := metrics.NewRegistry(cfg.Metrics.Namespace)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics registry")
	}
	registry.MarkStartTime(time.Now())

	reader, err := memstat.NewReader(cfg.Workers.MemorySource)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating memory reader")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	bgWorkers := workers.NewWorkers(log,
		workers.NewMemorySampler(reader, registry, cfg.Workers.MemorySampleInterval, clock.New(), log),
	)
	bgWorkers.Start(ctx)

	services, err := service.NewServices(cipher, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, registry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer(ctx)
	stop()

	if err = bgWorkers.Wait(); err != nil {
		log.Error().Err(err).Msg("background workers stopped with error")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

func newLogger(cfg config.App) *logger.Logger {
	if cfg.LogFile != "" {
		return logger.NewFileLogger("cipher-server", cfg.LogFile)
	}
	return logger.NewLogger("cipher-server")
}
