package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/StyNW7/WhatsVUpp-V99/internal/adapter"
	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/service"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries only the encrypted password
	log := logger.New("cipher-client", os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	cipherAdapter, err := adapter.NewHTTPCipherAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	services := service.NewClientServices(cipherAdapter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	traceID := utils.NewUUIDGenerator().Generate()
	ctx = utils.ContextWithTraceID(ctx, traceID)

	encrypted, err := services.CipherService.Encrypt(ctx, *cfg.Password)
	if err != nil {
		stop()
		log.Fatal().Err(err).Str("trace_id", traceID).Msg("encrypt request failed")
	}

	fmt.Println(encrypted)
}
