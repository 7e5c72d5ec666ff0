package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/metrics"
)

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "no panic should produce no log output")
}

func TestRecovery_Panic(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		panicWith any
		wantLog   []string
	}{
		{
			name:      "string value",
			method:    http.MethodGet,
			path:      "/panic",
			panicWith: "test panic",
			wantLog:   []string{"panic recovered", "test panic", "path=/panic", "request_id=req-7"},
		},
		{
			name:      "non-string value",
			method:    http.MethodPost,
			path:      "/api/crash",
			panicWith: 42,
			wantLog:   []string{"error=42", "method=POST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(requestIDKey, "req-7")

			before := ptestutil.ToFloat64(metrics.HTTPPanicsTotal)

			handler := Recovery(logger)(func(_ echo.Context) error {
				panic(tt.panicWith)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "internal server error")
			assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.HTTPPanicsTotal), 0.0001)

			for _, w := range tt.wantLog {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())

	handler := Recovery(slog.New(slog.DiscardHandler))(func(_ echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		_ = handler(c)
	})
}
