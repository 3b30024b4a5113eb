package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/handler"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.StructuredConfig) *handler.Handlers {
	t.Helper()

	registry, err := metrics.NewRegistry("app")
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(nil, registry, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func testConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{
			HTTPAddress:    address,
			RequestTimeout: time.Second,
			AllowedOrigins: []string{"*"},
		},
		Metrics: config.Metrics{Path: "/metrics", Namespace: "app"},
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	handlers := newTestHandlers(t, cfg)

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{name: "http server", handlers: handlers, cfg: cfg.Server},
		{name: "nil handlers", handlers: nil, cfg: cfg.Server, wantErr: errNoServersAreCreated},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: cfg.Server, wantErr: errNoServersAreCreated},
		{name: "empty address", handlers: handlers, cfg: config.Server{}, wantErr: errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestHTTPServer_ServesUntilContextCancelled(t *testing.T) {
	handlers := newTestHandlers(t, testConfig("127.0.0.1:0"))
	srv := newHTTPServer(handlers.HTTP.Init(), "127.0.0.1:0", logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestHTTPServer_ListenErrorIsReturned(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	address := occupied.Addr().String()
	handlers := newTestHandlers(t, testConfig(address))

	srv, err := NewServer(handlers, testConfig(address).Server, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	require.ErrorIs(t, err, errListen)
}

func TestHTTPServer_ShutdownWithoutRun(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop())

	assert.NoError(t, srv.Shutdown())
}
