package config

import (
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/memstat"
)

// Built-in key material. Deployments are expected to override both through
// CIPHER_KEY / CIPHER_IV; the service logs a warning while they are in use.
const (
	DefaultCipherKey = "verysecretkey123"
	DefaultCipherIV  = "uniqueinitvector"
)

const (
	defaultVersion              = "dev"
	defaultLogLevel             = "debug"
	defaultHTTPAddress          = "0.0.0.0:8081"
	defaultRequestTimeout       = 30 * time.Second
	defaultMetricsPath          = "/metrics"
	defaultMetricsNamespace     = "app"
	defaultMemorySampleInterval = 10 * time.Second

	defaultClientAddress        = "http://localhost:8081"
	defaultClientRequestTimeout = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultVersion,
			LogLevel: defaultLogLevel,
		},
		Cipher: Cipher{
			Key: DefaultCipherKey,
			IV:  DefaultCipherIV,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Metrics: Metrics{
			Path:      defaultMetricsPath,
			Namespace: defaultMetricsNamespace,
		},
		Workers: Workers{
			MemorySampleInterval: defaultMemorySampleInterval,
			MemorySource:         memstat.SourceProcess,
		},
	}
}
