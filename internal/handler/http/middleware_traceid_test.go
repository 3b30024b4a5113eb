package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
}

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantID   string
	}{
		{name: "incoming id is reused", incoming: "my-custom-trace-id", wantID: "my-custom-trace-id"},
		{name: "incoming uuid is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing id is generated", incoming: "", wantID: "generated-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), traceIDs: fixedIDGenerator("generated-id")}

			rr, req := executeWithTraceID(h, tt.incoming)
			require.NotNil(t, req)

			assert.Equal(t, tt.wantID, rr.Header().Get(traceIDHeader))

			fromCtx, ok := utils.GetTraceIDFromContext(req.Context())
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, fromCtx)
		})
	}
}

func TestWithTraceID_GeneratesUniqueV7(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err, "trace ID must be a valid UUID, got: %s", id)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New("server", &buf), traceIDs: fixedIDGenerator("abc-123")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler()
	middleware := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const n = 50
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
			ids[i] = rr.Header().Get(traceIDHeader)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n, "all generated trace IDs should be unique")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
