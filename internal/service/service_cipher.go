// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"

	"github.com/StyNW7/WhatsVUpp-V99/internal/crypto"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

type cipherService struct {
	cipher crypto.Cipher
}

// NewCipherService returns a CipherService backed by the given cipher.
// The cipher must be ready for use; key material is never handled here.
func NewCipherService(cipher crypto.Cipher) CipherService {
	return &cipherService{cipher: cipher}
}

func (s *cipherService) Encrypt(ctx context.Context, req models.EncryptionRequest) models.EncryptionResponse {
	ciphertext := s.cipher.Encrypt([]byte(req.Password))

	return models.EncryptionResponse{
		EncryptedPassword: base64.StdEncoding.EncodeToString(ciphertext),
	}
}
