package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StyNW7/WhatsVUpp-V99/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersionInfo(t *testing.T) {
	tests := []struct {
		name string
		info models.VersionInfo
		want string
	}{
		{
			name: "full build metadata",
			info: models.VersionInfo{Version: "1.2.3", BuildDate: "2026-10-01", BuildCommit: "a1b2c3d"},
			want: `{"version":"1.2.3","build_date":"2026-10-01","build_commit":"a1b2c3d"}`,
		},
		{
			name: "metadata not injected",
			info: models.VersionInfo{Version: "dev", BuildDate: "N/A", BuildCommit: "N/A"},
			want: `{"version":"dev","build_date":"N/A","build_commit":"N/A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newHandlerWithMocks(t)
			deps.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(tt.info)

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	h, deps := newHandlerWithMocks(t)
	deps.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(models.VersionInfo{Version: "1.0.0"})

	rr := serve(t, h.Init(), http.MethodGet, "/api/version", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.VersionInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "1.0.0", got.Version)
}
