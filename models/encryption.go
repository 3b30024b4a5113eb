// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionRequest is the body of POST /encrypt.
//
// Password is treated as an opaque byte sequence. An empty string is a valid
// plaintext and is encrypted like any other value.
type EncryptionRequest struct {
	Password string `json:"password"`
}

// EncryptionResponse carries the base64 (standard alphabet, padded) encoding
// of the AES-128-CBC ciphertext produced for an [EncryptionRequest].
type EncryptionResponse struct {
	EncryptedPassword string `json:"encrypted_password"`
}
