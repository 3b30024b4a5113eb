// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the cipher service.
//
// The primary abstraction is [CipherAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPCipherAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CipherAdapter defines transport-agnostic communication with the cipher
// service. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type CipherAdapter interface {
	// Encrypt submits password to the service and returns the base64
	// ciphertext from the response. Returns an error if the request fails,
	// the server responds with a non-2xx status, or the response carries no
	// ciphertext.
	Encrypt(ctx context.Context, password string) (string, error)
}
