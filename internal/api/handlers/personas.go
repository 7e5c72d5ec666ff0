package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/rental-upsell/pkg/extract"
	"github.com/donaldgifford/rental-upsell/pkg/llm"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// PersonaGenerator builds a persona from a free-text customer description.
type PersonaGenerator interface {
	Generate(ctx context.Context, description string) (domain.Persona, []domain.Tag, error)
}

// CarProfiler enriches a vehicle with LLM-suggested tags and copy.
type CarProfiler interface {
	Profile(ctx context.Context, v domain.Vehicle) (extract.CarProfile, error)
}

// PersonaHandler serves the persona catalog and the LLM-backed persona and
// vehicle profile generators.
type PersonaHandler struct {
	generator PersonaGenerator
	profiler  CarProfiler
}

// NewPersonaHandler creates a new PersonaHandler.
func NewPersonaHandler(g PersonaGenerator, p CarProfiler) *PersonaHandler {
	return &PersonaHandler{generator: g, profiler: p}
}

// --- Input/Output types ---

// PersonaWithTags is a persona together with its derived user tags.
type PersonaWithTags struct {
	Persona  domain.Persona `json:"persona"`
	UserTags []domain.Tag   `json:"user_tags"`
}

// ListPersonasOutput is the response for listing the persona catalog.
type ListPersonasOutput struct {
	Body struct {
		Personas []PersonaWithTags `json:"personas"`
	}
}

// GetPersonaInput is the input for getting one catalog persona.
type GetPersonaInput struct {
	ID string `path:"id" doc:"Persona id" example:"family_holiday_planner"`
}

// PersonaOutput is the response for a single persona.
type PersonaOutput struct {
	Body PersonaWithTags
}

// GeneratePersonaInput is the request body for generating a persona.
type GeneratePersonaInput struct {
	Body struct {
		Description string `json:"description" minLength:"1" doc:"Free-text description of the customer" example:"Two parents and three kids driving to the Alps for a week"`
	}
}

// ProfileVehicleInput is the request body for profiling a vehicle.
type ProfileVehicleInput struct {
	Body struct {
		Vehicle domain.Vehicle `json:"vehicle"`
	}
}

// ProfileVehicleOutput is the response for profiling a vehicle.
type ProfileVehicleOutput struct {
	Body extract.CarProfile
}

// --- Handlers ---

// ListPersonas returns the built-in persona catalog.
func (*PersonaHandler) ListPersonas(_ context.Context, _ *struct{}) (*ListPersonasOutput, error) {
	catalog := persona.Catalog()

	resp := &ListPersonasOutput{}
	resp.Body.Personas = make([]PersonaWithTags, 0, len(catalog))
	for _, p := range catalog {
		resp.Body.Personas = append(resp.Body.Personas, PersonaWithTags{
			Persona:  p,
			UserTags: persona.UserTags(p),
		})
	}
	return resp, nil
}

// GetPersona returns a single catalog persona by id.
func (*PersonaHandler) GetPersona(_ context.Context, input *GetPersonaInput) (*PersonaOutput, error) {
	p, ok := persona.Lookup(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("persona not found")
	}
	return &PersonaOutput{Body: PersonaWithTags{Persona: p, UserTags: persona.UserTags(p)}}, nil
}

// GeneratePersona asks the LLM backend for a persona matching a description.
func (h *PersonaHandler) GeneratePersona(
	ctx context.Context,
	input *GeneratePersonaInput,
) (*PersonaOutput, error) {
	p, tags, err := h.generator.Generate(ctx, input.Body.Description)
	if err != nil {
		return nil, llmError("persona generation failed", err)
	}
	return &PersonaOutput{Body: PersonaWithTags{Persona: p, UserTags: tags}}, nil
}

// ProfileVehicle asks the LLM backend for extra tags and sales copy for a
// vehicle.
func (h *PersonaHandler) ProfileVehicle(
	ctx context.Context,
	input *ProfileVehicleInput,
) (*ProfileVehicleOutput, error) {
	profile, err := h.profiler.Profile(ctx, input.Body.Vehicle)
	if err != nil {
		return nil, llmError("vehicle profiling failed", err)
	}
	return &ProfileVehicleOutput{Body: profile}, nil
}

// llmError maps generator failures to HTTP errors: a disabled backend is
// 503 and an unusable model answer is 502.
func llmError(msg string, err error) error {
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return huma.Error503ServiceUnavailable("llm backend not configured")
	case errors.Is(err, extract.ErrEmptyDescription):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, persona.ErrInvalidPersona):
		return huma.Error502BadGateway(msg + ": " + err.Error())
	default:
		return huma.Error500InternalServerError(msg + ": " + err.Error())
	}
}

// RegisterPersonaRoutes registers persona and profile endpoints with the
// Huma API.
func RegisterPersonaRoutes(api huma.API, h *PersonaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-personas",
		Method:      http.MethodGet,
		Path:        "/api/v1/personas",
		Summary:     "List personas",
		Description: "Returns the built-in persona catalog with each persona's derived user tags.",
		Tags:        []string{"personas"},
	}, h.ListPersonas)

	huma.Register(api, huma.Operation{
		OperationID: "get-persona",
		Method:      http.MethodGet,
		Path:        "/api/v1/personas/{id}",
		Summary:     "Get a persona by id",
		Tags:        []string{"personas"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPersona)

	huma.Register(api, huma.Operation{
		OperationID: "generate-persona",
		Method:      http.MethodPost,
		Path:        "/api/v1/personas/generate",
		Summary:     "Generate a persona",
		Description: "Uses the configured LLM backend to turn a customer description into a validated persona.",
		Tags:        []string{"personas"},
		Errors: []int{
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
		},
	}, h.GeneratePersona)

	huma.Register(api, huma.Operation{
		OperationID: "profile-vehicle",
		Method:      http.MethodPost,
		Path:        "/api/v1/vehicles/profile",
		Summary:     "Profile a vehicle",
		Description: "Uses the configured LLM backend to suggest extra car tags, a headline and benefit bullets.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusInternalServerError, http.StatusServiceUnavailable},
	}, h.ProfileVehicle)
}
