package service

import (
	"context"

	"github.com/StyNW7/WhatsVUpp-V99/internal/adapter"
)

type clientCipherService struct {
	serverAdapter adapter.CipherAdapter
}

func NewClientCipherService(serverAdapter adapter.CipherAdapter) ClientCipherService {
	return &clientCipherService{serverAdapter: serverAdapter}
}

func (s *clientCipherService) Encrypt(ctx context.Context, password string) (string, error) {
	encrypted, err := s.serverAdapter.Encrypt(ctx, password)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return encrypted, nil
}
