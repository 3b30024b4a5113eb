package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrCipherEndpointMissing = errors.New("cipher endpoint not found on server")
	ErrServerFailure         = errors.New("cipher service failed to process request")
)
