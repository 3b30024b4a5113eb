package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientFlags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantAddress  string
		wantTimeout  time.Duration
		wantPassword *string
	}{
		{
			name:         "password flag",
			args:         []string{"-s", "http://cipher:8081", "-t", "2s", "-p", "hunter2"},
			wantAddress:  "http://cipher:8081",
			wantTimeout:  2 * time.Second,
			wantPassword: ptr("hunter2"),
		},
		{
			name:         "explicit empty password",
			args:         []string{"-p", ""},
			wantPassword: ptr(""),
		},
		{
			name:         "positional password",
			args:         []string{"hello"},
			wantPassword: ptr("hello"),
		},
		{
			name:         "flag beats positional",
			args:         []string{"-p", "flag", "positional"},
			wantPassword: ptr("flag"),
		},
		{
			name:        "no password",
			args:        []string{"-s", "http://cipher:8081"},
			wantAddress: "http://cipher:8081",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg := ParseClientFlags()
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantAddress, cfg.Adapter.HTTPAddress)
			assert.Equal(t, tt.wantTimeout, cfg.Adapter.RequestTimeout)
			assert.Equal(t, tt.wantPassword, cfg.Password)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t, "secret")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Password)
	assert.Equal(t, "secret", *cfg.Password)
}

func TestGetClientConfig_EnvThenFlags(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:8081")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "4s")
	resetFlags(t, "-s", "http://from-flag:8081", "-p", "x")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_NoPassword(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t)

	cfg, err := GetClientConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNoPasswordProvided)
}

func ptr(s string) *string { return &s }
