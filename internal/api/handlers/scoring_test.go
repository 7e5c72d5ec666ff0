package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/api/handlers"
	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	score "github.com/donaldgifford/rental-upsell/pkg/scorer"
	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func newScoringAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterScoringRoutes(api, handlers.NewScoringHandler())
	return api
}

func TestScoringHandler_ScoreVehicle(t *testing.T) {
	t.Parallel()

	vehicle := datasource.DemoVehicles()[0]
	family, ok := persona.Lookup(persona.FamilyHolidayPlanner)
	require.True(t, ok)

	invalid := family
	invalid.GroupSize = 0

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantID     string
		wantBody   string
	}{
		{
			name:       "catalog persona",
			body:       map[string]any{"persona_id": persona.FamilyHolidayPlanner, "vehicle": vehicle},
			wantStatus: http.StatusOK,
			wantID:     persona.FamilyHolidayPlanner,
		},
		{
			name:       "unknown persona falls back to default",
			body:       map[string]any{"persona_id": "nobody", "vehicle": vehicle},
			wantStatus: http.StatusOK,
			wantID:     persona.Default().ID,
		},
		{
			name:       "inline persona",
			body:       map[string]any{"persona": family, "vehicle": vehicle},
			wantStatus: http.StatusOK,
			wantID:     persona.FamilyHolidayPlanner,
		},
		{
			name:       "invalid inline persona returns 422",
			body:       map[string]any{"persona": invalid, "vehicle": vehicle},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "group_size 0 must be at least 1",
		},
		{
			name:       "missing vehicle returns 422",
			body:       map[string]any{"persona_id": persona.FamilyHolidayPlanner},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "vehicle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newScoringAPI(t).Post("/api/v1/score/vehicle", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
				return
			}

			var body struct {
				PersonaID string               `json:"persona_id"`
				UserTags  []domain.Tag         `json:"user_tags"`
				Scored    domain.ScoredVehicle `json:"scored"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantID, body.PersonaID)

			p, _ := persona.Lookup(tt.wantID)
			want := score.ScoreVehicle(p, persona.UserTags(p), vehicle)
			assert.InDelta(t, want.TotalScore, body.Scored.TotalScore, 0.0001)
			assert.Equal(t, want.Tags, body.Scored.Tags)
		})
	}
}

func TestScoringHandler_ScoreProtection(t *testing.T) {
	t.Parallel()

	pkg := datasource.DemoProtections()[0]
	resp := newScoringAPI(t).Post("/api/v1/score/protection", map[string]any{
		"persona_id": persona.FamilyHolidayPlanner,
		"protection": pkg,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Scored domain.ScoredProtection `json:"scored"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	p, _ := persona.Lookup(persona.FamilyHolidayPlanner)
	want := score.ScoreProtection(p, persona.UserTags(p), pkg)
	assert.InDelta(t, want.TotalScore, body.Scored.TotalScore, 0.0001)
	assert.Equal(t, pkg.ID, body.Scored.Protection.ID)
}

func TestScoringHandler_Tags(t *testing.T) {
	t.Parallel()

	vehicle := datasource.DemoVehicles()[1]
	pkg := datasource.DemoProtections()[0]
	addon := datasource.DemoAddons()[0]

	tests := []struct {
		name string
		path string
		body map[string]any
		want []domain.Tag
	}{
		{
			name: "vehicle",
			path: "/api/v1/tags/vehicle",
			body: map[string]any{"vehicle": vehicle},
			want: tagging.CarTags(vehicle),
		},
		{
			name: "protection",
			path: "/api/v1/tags/protection",
			body: map[string]any{"protection": pkg},
			want: tagging.ProtectionTags(pkg),
		},
		{
			name: "addon",
			path: "/api/v1/tags/addon",
			body: map[string]any{"addon": addon},
			want: tagging.AddonTags(addon),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newScoringAPI(t).Post(tt.path, tt.body)
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

			var body struct {
				Tags []domain.Tag `json:"tags"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			if len(tt.want) == 0 {
				assert.Empty(t, body.Tags)
				return
			}
			assert.Equal(t, tt.want, body.Tags)
		})
	}
}
