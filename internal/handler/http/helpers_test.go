package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/config"
	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/metrics"
	"github.com/StyNW7/WhatsVUpp-V99/internal/mock"
	"github.com/StyNW7/WhatsVUpp-V99/internal/service"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testDeps holds the collaborators behind a test Handler.
type testDeps struct {
	cipher   *mock.MockCipherService
	appInfo  *mock.MockAppInfoService
	registry *metrics.Registry
	clock    *clock.Mock
}

type handlerOption func(serverCfg *config.Server, metricsCfg *config.Metrics)

func withAllowedOrigins(origins ...string) handlerOption {
	return func(serverCfg *config.Server, _ *config.Metrics) {
		serverCfg.AllowedOrigins = origins
	}
}

func withMetricsPath(path string) handlerOption {
	return func(_ *config.Server, metricsCfg *config.Metrics) {
		metricsCfg.Path = path
	}
}

func newHandlerWithMocks(t *testing.T, opts ...handlerOption) (*Handler, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	registry, err := metrics.NewRegistry("app")
	require.NoError(t, err)

	deps := &testDeps{
		cipher:   mock.NewMockCipherService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		registry: registry,
		clock:    clock.NewMock(),
	}

	serverCfg := config.Server{
		HTTPAddress:    ":0",
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	}
	metricsCfg := config.Metrics{Path: "/metrics", Namespace: "app"}
	for _, opt := range opts {
		opt(&serverCfg, &metricsCfg)
	}

	services := &service.Services{
		CipherService:  deps.cipher,
		AppInfoService: deps.appInfo,
	}

	h := NewHandler(services, registry, serverCfg, metricsCfg, logger.Nop())
	h.clock = deps.clock

	return h, deps
}

// serve runs one request through the full router.
func serve(t *testing.T, router http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
