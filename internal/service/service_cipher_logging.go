package service

import (
	"context"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

// CipherLoggingService logs every encryption with its size and duration.
// Plaintext and ciphertext never reach the log.
type CipherLoggingService struct {
	inner CipherService
}

func NewCipherLoggingService() CipherServiceWrapper {
	return &CipherLoggingService{}
}

func (c *CipherLoggingService) Encrypt(ctx context.Context, req models.EncryptionRequest) models.EncryptionResponse {
	start := time.Now()
	resp := c.inner.Encrypt(ctx, req)

	logger.FromContext(ctx).Debug().
		Str("func", "CipherService.Encrypt").
		Int("plaintext_len", len(req.Password)).
		Int("encoded_len", len(resp.EncryptedPassword)).
		Dur("duration", time.Since(start)).
		Msg("password encrypted")

	return resp
}

func (c *CipherLoggingService) Wrap(wrapped CipherService) CipherService {
	c.inner = wrapped
	return c
}
