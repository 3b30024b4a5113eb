// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// aesKeySize is the only accepted key length: the service runs AES-128.
const aesKeySize = 16

// aesCBCCipher is the private implementation of [Cipher] using AES-128 in
// cipher-block-chaining mode with a fixed IV.
//
// A fixed IV makes encryption deterministic: the same plaintext always yields
// the same ciphertext. Clients of the service depend on that property.
type aesCBCCipher struct {
	block cipher.Block
	iv    []byte

	fingerprint string
}

// NewAESCBCCipher constructs a [Cipher] from a 16-byte key and a 16-byte IV.
// Both slices are copied, so the caller may reuse them.
//
// Returns [ErrInvalidKeySize] or [ErrInvalidIVSize] on length mismatch. These
// are startup errors: the returned Cipher itself never fails to encrypt.
func NewAESCBCCipher(key, iv []byte) (Cipher, error) {
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), aesKeySize)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVSize, len(iv), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &aesCBCCipher{
		block:       block,
		iv:          append([]byte(nil), iv...),
		fingerprint: fingerprint(key, iv),
	}, nil
}

// Encrypt implements [Cipher]. The output length is always
// (len(plaintext)/16 + 1) * 16.
func (c *aesCBCCipher) Encrypt(plaintext []byte) []byte {
	padded := pkcs7Pad(plaintext, aes.BlockSize)

	// BlockMode keeps chaining state, so a fresh one per call keeps the
	// cipher safe for concurrent use.
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)

	return out
}

// Decrypt implements [Cipher].
func (c *aesCBCCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d",
			ErrInvalidCiphertext, len(ciphertext), aes.BlockSize)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, ciphertext)

	plaintext, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return plaintext, nil
}

// Fingerprint implements [Cipher].
func (c *aesCBCCipher) Fingerprint() string {
	return c.fingerprint
}

// fingerprint returns the hex form of the first 8 bytes of BLAKE2b-256(key‖iv).
func fingerprint(key, iv []byte) string {
	sum := blake2b.Sum256(append(append([]byte(nil), key...), iv...))
	return hex.EncodeToString(sum[:8])
}
