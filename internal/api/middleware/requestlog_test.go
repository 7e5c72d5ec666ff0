package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		handler       echo.HandlerFunc
		providedReqID string
		wantLogFields []string
		wantNoLog     bool
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/recommendations",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/api/v1/recommendations",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "client error logs at warn",
			method: http.MethodPost,
			path:   "/api/v1/score/vehicle",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusUnprocessableEntity)
			},
			wantLogFields: []string{"level=WARN", "status=422"},
		},
		{
			name:   "returned error logs at error",
			method: http.MethodGet,
			path:   "/api/v1/simulate",
			handler: func(_ echo.Context) error {
				return errors.New("boom")
			},
			wantLogFields: []string{"level=ERROR", "status=500"},
		},
		{
			name:   "uses provided request ID",
			method: http.MethodGet,
			path:   "/test",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{"request_id=custom-req-id-123"},
		},
		{
			name:   "successful health check is below info",
			method: http.MethodGet,
			path:   "/healthz",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantNoLog: true,
		},
		{
			name:   "failed health check is logged",
			method: http.MethodGet,
			path:   "/readyz",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusServiceUnavailable)
			},
			wantLogFields: []string{"level=ERROR", "path=/readyz", "status=503"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = RequestLog(logger)(tt.handler)(c)

			logOutput := buf.String()
			if tt.wantNoLog {
				assert.Empty(t, logOutput)
			}
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			respID := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, respID)
			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
			assert.Equal(t, respID, RequestID(c))
		})
	}
}

func TestRequestID_Unset(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	assert.Empty(t, RequestID(c))
}
