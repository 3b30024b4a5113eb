package service

import (
	"fmt"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/crypto"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

type Services struct {
	CipherService  CipherService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services. The cipher service is wrapped
// with request logging, which reads its logger from the request context.
func NewServices(cipher crypto.Cipher, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfo, err := NewAppInfoService(cfg, build)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CipherService:  NewCipherLoggingService().Wrap(NewCipherService(cipher)),
		AppInfoService: appInfo,
	}, nil
}
