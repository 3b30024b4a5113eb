// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/StyNW7/WhatsVUpp-V99/internal/memstat"
	"github.com/rs/zerolog"
)

// metricNamespacePattern is the Prometheus metric name grammar without colons,
// which are reserved for recording rules.
var metricNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// reservedNamespaces are the prefixes of the Go runtime and process
// collectors registered next to the app gauges.
var reservedNamespaces = []string{"go", "process"}

// cipherMaterialSize is the required length of both the AES-128 key and the IV.
const cipherMaterialSize = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated group contributes one wrapped sentinel error; the result is
// their join, or nil if the configuration is valid.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.Version == "" {
		errs = append(errs, fmt.Errorf("%w: empty version", ErrInvalidAppConfigs))
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel))
		}
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}

	if len(cfg.Cipher.Key) != cipherMaterialSize {
		errs = append(errs, fmt.Errorf("%w: key must be %d bytes, got %d",
			ErrInvalidCipherConfigs, cipherMaterialSize, len(cfg.Cipher.Key)))
	}
	if len(cfg.Cipher.IV) != cipherMaterialSize {
		errs = append(errs, fmt.Errorf("%w: iv must be %d bytes, got %d",
			ErrInvalidCipherConfigs, cipherMaterialSize, len(cfg.Cipher.IV)))
	}

	if !strings.HasPrefix(cfg.Metrics.Path, "/") || cfg.Metrics.Path == "/encrypt" {
		errs = append(errs, fmt.Errorf("%w: bad metrics path %q", ErrInvalidMetricsConfigs, cfg.Metrics.Path))
	}
	switch {
	case cfg.Metrics.Namespace == "":
		errs = append(errs, fmt.Errorf("%w: empty namespace", ErrInvalidMetricsConfigs))
	case !metricNamespacePattern.MatchString(cfg.Metrics.Namespace):
		errs = append(errs, fmt.Errorf("%w: invalid namespace %q", ErrInvalidMetricsConfigs, cfg.Metrics.Namespace))
	case slices.Contains(reservedNamespaces, cfg.Metrics.Namespace):
		errs = append(errs, fmt.Errorf("%w: namespace %q clashes with the %s collector", ErrInvalidMetricsConfigs,
			cfg.Metrics.Namespace, cfg.Metrics.Namespace))
	}

	if cfg.Workers.MemorySampleInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: memory sample interval must be positive", ErrInvalidWorkerConfigs))
	}
	switch cfg.Workers.MemorySource {
	case memstat.SourceProcess, memstat.SourceSystem:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown memory source %q", ErrInvalidWorkerConfigs, cfg.Workers.MemorySource))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Password == nil {
		return ErrNoPasswordProvided
	}

	return nil
}
