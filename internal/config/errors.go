package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an empty version or an unknown log
	// level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCipherConfigs indicates key material of the wrong length.
	ErrInvalidCipherConfigs = errors.New("invalid cipher configuration")
	// ErrInvalidMetricsConfigs indicates an unusable metrics path or
	// namespace.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sample interval or unknown memory source).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrNoPasswordProvided is returned by the client when neither -p nor a
	// positional argument carries the password to encrypt.
	ErrNoPasswordProvided = errors.New("no password provided")
)
