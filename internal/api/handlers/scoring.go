package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/rental-upsell/pkg/persona"
	score "github.com/donaldgifford/rental-upsell/pkg/scorer"
	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ScoringHandler exposes the tagging and scoring functions directly, for
// tuning and debugging without a booking.
type ScoringHandler struct{}

// NewScoringHandler creates a new ScoringHandler.
func NewScoringHandler() *ScoringHandler {
	return &ScoringHandler{}
}

// --- Input/Output types ---

// PersonaRef selects the persona to score against: an inline persona wins
// over persona_id, and an unknown persona_id falls back to the default
// catalog persona.
type PersonaRef struct {
	PersonaID string          `json:"persona_id,omitempty" doc:"Catalog persona id" example:"family_holiday_planner"`
	Persona   *domain.Persona `json:"persona,omitempty"    doc:"Inline persona, validated before use"`
}

// ScoreVehicleInput is the input for scoring one vehicle.
type ScoreVehicleInput struct {
	Body struct {
		PersonaRef
		Vehicle domain.Vehicle `json:"vehicle" doc:"Vehicle to score"`
	}
}

// ScoreVehicleOutput is the response for scoring one vehicle.
type ScoreVehicleOutput struct {
	Body struct {
		PersonaID string               `json:"persona_id"`
		UserTags  []domain.Tag         `json:"user_tags"`
		Scored    domain.ScoredVehicle `json:"scored"`
	}
}

// ScoreProtectionInput is the input for scoring one protection package.
type ScoreProtectionInput struct {
	Body struct {
		PersonaRef
		Protection domain.ProtectionPackage `json:"protection" doc:"Protection package to score"`
	}
}

// ScoreProtectionOutput is the response for scoring one protection package.
type ScoreProtectionOutput struct {
	Body struct {
		PersonaID string                  `json:"persona_id"`
		UserTags  []domain.Tag            `json:"user_tags"`
		Scored    domain.ScoredProtection `json:"scored"`
	}
}

// VehicleTagsInput is the input for tagging a vehicle.
type VehicleTagsInput struct {
	Body struct {
		Vehicle domain.Vehicle `json:"vehicle"`
	}
}

// ProtectionTagsInput is the input for tagging a protection package.
type ProtectionTagsInput struct {
	Body struct {
		Protection domain.ProtectionPackage `json:"protection"`
	}
}

// AddonTagsInput is the input for tagging an addon.
type AddonTagsInput struct {
	Body struct {
		Addon domain.Addon `json:"addon"`
	}
}

// TagsOutput is the response for every tagging endpoint.
type TagsOutput struct {
	Body struct {
		Tags []domain.Tag `json:"tags"`
	}
}

// --- Handlers ---

// ScoreVehicle scores one vehicle against a persona.
func (*ScoringHandler) ScoreVehicle(_ context.Context, input *ScoreVehicleInput) (*ScoreVehicleOutput, error) {
	p, err := resolvePersona(&input.Body.PersonaRef)
	if err != nil {
		return nil, err
	}
	tags := persona.UserTags(p)

	resp := &ScoreVehicleOutput{}
	resp.Body.PersonaID = p.ID
	resp.Body.UserTags = tags
	resp.Body.Scored = score.ScoreVehicle(p, tags, input.Body.Vehicle)
	return resp, nil
}

// ScoreProtection scores one protection package against a persona.
func (*ScoringHandler) ScoreProtection(
	_ context.Context,
	input *ScoreProtectionInput,
) (*ScoreProtectionOutput, error) {
	p, err := resolvePersona(&input.Body.PersonaRef)
	if err != nil {
		return nil, err
	}
	tags := persona.UserTags(p)

	resp := &ScoreProtectionOutput{}
	resp.Body.PersonaID = p.ID
	resp.Body.UserTags = tags
	resp.Body.Scored = score.ScoreProtection(p, tags, input.Body.Protection)
	return resp, nil
}

// VehicleTags derives the car tags of a vehicle.
func (*ScoringHandler) VehicleTags(_ context.Context, input *VehicleTagsInput) (*TagsOutput, error) {
	return tagsOutput(tagging.CarTags(input.Body.Vehicle)), nil
}

// ProtectionTags derives the protection tags of a package.
func (*ScoringHandler) ProtectionTags(_ context.Context, input *ProtectionTagsInput) (*TagsOutput, error) {
	return tagsOutput(tagging.ProtectionTags(input.Body.Protection)), nil
}

// AddonTags derives the addon tags of an addon.
func (*ScoringHandler) AddonTags(_ context.Context, input *AddonTagsInput) (*TagsOutput, error) {
	return tagsOutput(tagging.AddonTags(input.Body.Addon)), nil
}

func tagsOutput(tags []domain.Tag) *TagsOutput {
	if tags == nil {
		tags = []domain.Tag{}
	}
	resp := &TagsOutput{}
	resp.Body.Tags = tags
	return resp
}

func resolvePersona(ref *PersonaRef) (domain.Persona, error) {
	if ref.Persona != nil {
		if err := persona.Validate(ref.Persona); err != nil {
			return domain.Persona{}, huma.Error422UnprocessableEntity(err.Error())
		}
		return *ref.Persona, nil
	}
	if p, ok := persona.Lookup(ref.PersonaID); ok {
		return p, nil
	}
	return persona.Default(), nil
}

// RegisterScoringRoutes registers scoring and tagging endpoints with the
// Huma API.
func RegisterScoringRoutes(api huma.API, h *ScoringHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "score-vehicle",
		Method:      http.MethodPost,
		Path:        "/api/v1/score/vehicle",
		Summary:     "Score a vehicle",
		Description: "Scores one vehicle against a catalog or inline persona and returns every score component.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.ScoreVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "score-protection",
		Method:      http.MethodPost,
		Path:        "/api/v1/score/protection",
		Summary:     "Score a protection package",
		Description: "Scores one protection package against a catalog or inline persona.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.ScoreProtection)

	huma.Register(api, huma.Operation{
		OperationID: "tag-vehicle",
		Method:      http.MethodPost,
		Path:        "/api/v1/tags/vehicle",
		Summary:     "Tag a vehicle",
		Tags:        []string{"tagging"},
	}, h.VehicleTags)

	huma.Register(api, huma.Operation{
		OperationID: "tag-protection",
		Method:      http.MethodPost,
		Path:        "/api/v1/tags/protection",
		Summary:     "Tag a protection package",
		Tags:        []string{"tagging"},
	}, h.ProtectionTags)

	huma.Register(api, huma.Operation{
		OperationID: "tag-addon",
		Method:      http.MethodPost,
		Path:        "/api/v1/tags/addon",
		Summary:     "Tag an addon",
		Tags:        []string{"tagging"},
	}, h.AddonTags)
}
