package service

import (
	"context"

	"github.com/StyNW7/WhatsVUpp-V99/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CipherService encrypts secrets submitted over POST /encrypt.
type CipherService interface {
	// Encrypt returns the standard base64 encoding of the AES-128-CBC
	// ciphertext of req.Password. Equal inputs always yield equal outputs.
	Encrypt(ctx context.Context, req models.EncryptionRequest) models.EncryptionResponse
}

// AppInfoService exposes static information about the running binary.
type AppInfoService interface {
	// GetVersionInfo returns the configured version together with the
	// build metadata injected at link time.
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// logging.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}

// ClientCipherService is the client-side contract for obtaining ciphertext
// from a remote cipher service.
type ClientCipherService interface {
	// Encrypt sends password to the service and returns the base64
	// ciphertext. Transport errors are translated into service errors.
	Encrypt(ctx context.Context, password string) (string, error)
}
