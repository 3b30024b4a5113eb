package service

import (
	"context"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

type appInfoService struct {
	info models.VersionInfo
}

// NewAppInfoService fixes the version reported by GET /api/version. The
// configured version is required; build metadata may be "N/A".
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionInfo{
			Version:     cfg.Version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		},
	}, nil
}

func (s *appInfoService) GetVersionInfo(context.Context) models.VersionInfo {
	return s.info
}
