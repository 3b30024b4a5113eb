package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the cipher service
	// (e.g. "http://localhost:8081").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Password is the secret to encrypt. nil means none was given; an empty
	// string is a valid secret.
	Password *string
}

// GetClientConfig builds and validates the client configuration from
// defaults, ADAPTER_* environment variables, and command-line flags
// (later sources win).
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    defaultClientAddress,
			RequestTimeout: defaultClientRequestTimeout,
		},
	}
	for _, src := range []*ClientConfig{envCfg, ParseClientFlags()} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Join(fmt.Errorf("error validating client config"), err)
	}

	return cfg, nil
}

// ParseClientFlags parses client flags from os.Args.
//
// Flags:
//
//	-s service base URL
//	-t request timeout (e.g., "5s")
//	-p password to encrypt; the first positional argument is used when -p
//	   is absent
func ParseClientFlags() *ClientConfig {
	var address string
	var timeout time.Duration
	var password string

	flag.StringVar(&address, "s", "", "Cipher service base URL")
	flag.DurationVar(&timeout, "t", 0, "Request timeout (e.g., 5s)")
	flag.StringVar(&password, "p", "", "Password to encrypt")

	flag.Parse()

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
		},
	}

	passwordSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			passwordSet = true
		}
	})

	switch {
	case passwordSet:
		cfg.Password = &password
	case flag.NArg() > 0:
		arg := flag.Arg(0)
		cfg.Password = &arg
	}

	return cfg
}
