// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned by [NewAESCBCCipher] when the key is not
	// exactly 16 bytes (AES-128).
	ErrInvalidKeySize = errors.New("invalid cipher key size")

	// ErrInvalidIVSize is returned by [NewAESCBCCipher] when the IV length
	// differs from the AES block size.
	ErrInvalidIVSize = errors.New("invalid cipher iv size")

	// ErrInvalidCiphertext is returned by Decrypt for input that is empty or
	// not aligned to the block size.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrInvalidPadding is returned by Decrypt when the trailing PKCS#7
	// padding is malformed.
	ErrInvalidPadding = errors.New("invalid pkcs7 padding")
)
