package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "ui", path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: SpecPath},
		{name: "bare redirect", path: "/swagger", wantStatus: http.StatusMovedPermanently, wantLocation: "/swagger/index.html"},
		{name: "slash redirect", path: "/swagger/", wantStatus: http.StatusMovedPermanently, wantLocation: "/swagger/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

type pingOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func newPingAPI(t *testing.T) huma.API {
	t.Helper()

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(_ context.Context, _ *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})
	return api
}

func TestRender(t *testing.T) {
	t.Parallel()

	api := newPingAPI(t)

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := Render(api, "json")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Contains(t, doc["paths"], "/ping")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		data, err := Render(api, "yaml")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Contains(t, doc["paths"], "/ping")
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := Render(api, "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported format "toml"`)
	})
}
