// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding a POST /encrypt request. Their text
// is sent to the caller as the plain-text body of the error response.
var (
	// ErrUnsupportedContentType is returned when the request is not declared
	// as JSON.
	ErrUnsupportedContentType = errors.New("content type must be application/json")

	// ErrInvalidJSON is returned when the body is not a single JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrMissingPassword is returned when the JSON object has no "password"
	// field. An empty string is a valid password.
	ErrMissingPassword = errors.New("missing field `password`")

	// ErrDuplicatePassword is returned when the JSON object names the
	// "password" field more than once.
	ErrDuplicatePassword = errors.New("duplicate field `password`")

	// ErrRequestBodyTooLarge is returned when the body exceeds
	// maxEncryptBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)
