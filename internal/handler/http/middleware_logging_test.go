package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context carries a logger writing to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "POST 200",
			method:          http.MethodPost,
			path:            "/encrypt",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"encrypted_password":"x"}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/encrypt"`,
				`"status":200`,
				`"duration":`,
				`"size":26`,
			},
		},
		{
			name:            "POST 400",
			method:          http.MethodPost,
			path:            "/encrypt",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: "invalid json",
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":400`,
			},
		},
		{
			name:            "GET 500",
			method:          http.MethodGet,
			path:            "/health",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "boom",
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
			},
		},
		{
			name:          "OPTIONS no body",
			method:        http.MethodOptions,
			path:          "/encrypt",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"OPTIONS"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/health?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "ok",
			checkLogContains: []string{
				`"uri":"/health?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_RouteFromRouter(t *testing.T) {
	var logBuf bytes.Buffer

	router := chi.NewRouter()
	router.Use(withLogging)
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, makeRequest(http.MethodGet, "/api/version", &logBuf))
	router.ServeHTTP(rr, makeRequest(http.MethodGet, "/nope", &logBuf))

	assert.Contains(t, logBuf.String(), `"route":"/api/version"`)
	assert.Contains(t, logBuf.String(), `"route":"unmatched"`)
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	nop := logger.Nop()
	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
