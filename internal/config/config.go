// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the cipher
// service. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version and logging.
	App App `envPrefix:"APP_"`

	// Cipher holds the symmetric key material used by POST /encrypt.
	Cipher Cipher `envPrefix:"CIPHER_"`

	// Server holds network address, timeout, and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics holds settings of the Prometheus scrape endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile, when set, redirects logs to a rotating file instead of stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Cipher holds the AES-128-CBC key material. Both values are used as raw
// bytes and must be exactly 16 bytes long.
type Cipher struct {
	// Key is the 16-byte AES key. Must be kept confidential.
	// Env: CIPHER_KEY
	Key string `env:"KEY"`

	// IV is the 16-byte initialization vector. It is fixed for the process
	// lifetime, which makes encryption deterministic.
	// Env: CIPHER_IV
	IV string `env:"IV"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8081").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the CORS origins accepted by the server.
	// "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Metrics holds settings of the metrics exposition endpoint.
type Metrics struct {
	// Path is the route serving the Prometheus text format.
	// Env: METRICS_PATH
	Path string `env:"PATH"`

	// Namespace prefixes every exported series (e.g. "app" gives
	// app_memory_usage_bytes).
	// Env: METRICS_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MemorySampleInterval is the pause between two memory samples.
	// Env: WORKERS_MEMORY_SAMPLE_INTERVAL
	MemorySampleInterval time.Duration `env:"MEMORY_SAMPLE_INTERVAL"`

	// MemorySource selects what the sampler measures: "process" (resident
	// set size of this process) or "system" (host memory in use).
	// Env: WORKERS_MEMORY_SOURCE
	MemorySource string `env:"MEMORY_SOURCE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// UsesDefaultKeyMaterial reports whether the cipher key or IV is still the
// built-in value.
func (cfg *StructuredConfig) UsesDefaultKeyMaterial() bool {
	return cfg.Cipher.Key == DefaultCipherKey || cfg.Cipher.IV == DefaultCipherIV
}
