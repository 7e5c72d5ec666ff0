package message

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/donaldgifford/rental-upsell/pkg/llm"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// RefineContext carries the offer being explained. Exactly one of Car or
// Protection is set, matching Type.
type RefineContext struct {
	Type       domain.MessageType
	Car        *CarUpgrade
	Protection *ProtectionUpgrade
}

// Refiner rewrites a formal explanation into friendlier prose.
type Refiner interface {
	Refine(ctx context.Context, rc RefineContext, formal string) (string, error)
}

// ErrEmptyRefinement is returned when the backend produced no usable text.
var ErrEmptyRefinement = errors.New("empty refinement")

// ErrRefinerPanic is reported when a Refiner panics.
var ErrRefinerPanic = errors.New("refiner panicked")

const carRefineTmpl = `You are helping a rental car customer understand why an upgrade is a better fit.

Customer persona:
{{.PersonaSummary}}

User tags: {{.UserTags}}

Current car: {{.FromName}}
Current car tags: {{.FromTags}}

Suggested upgrade: {{.ToName}}
Suggested car tags: {{.ToTags}}

Internal reasoning (for your reference, do not mention explicitly):
{{.Formal}}

Task: Write 1-2 short, friendly sentences explaining to the customer why the suggested car is a better match than the current one.
- Do not mention 'tags', 'persona', or 'internal reasoning'.
- Do not add disclaimers or mention that you are an AI.
- Do not invent details that are not implied by the tags.
- Focus on space, comfort, eco-friendliness, and trip fit, not price.
- Return only the sentences, no bullet points, no quotes around them.`

const protectionRefineTmpl = `You are helping a rental car customer understand why a protection package suits their trip.

Customer persona:
{{.PersonaSummary}}

User tags: {{.UserTags}}

Suggested protection: {{.ProtectionName}}
Protection tags: {{.ProtectionTags}}

Internal reasoning (for your reference, do not mention explicitly):
{{.Formal}}

Task: Write 1-2 short, friendly sentences explaining to the customer why this protection is a good idea for their trip.
- Do not mention 'tags', 'persona', or 'internal reasoning'.
- Do not add disclaimers or mention that you are an AI.
- Do not invent coverage that is not implied by the tags.
- Focus on peace of mind and trip fit, not price.
- Return only the sentences, no bullet points, no quotes around them.`

var (
	carRefineTemplate        = template.Must(template.New("car").Parse(carRefineTmpl))
	protectionRefineTemplate = template.Must(template.New("protection").Parse(protectionRefineTmpl))
)

// PromptData holds the template variables for refinement prompts.
type PromptData struct {
	PersonaSummary string
	UserTags       string
	Formal         string

	FromName string
	FromTags string
	ToName   string
	ToTags   string

	ProtectionName string
	ProtectionTags string
}

func personaSummary(p *domain.Persona) string {
	return strings.Join([]string{
		"Label: " + p.Label,
		"Trip purpose: " + string(p.TripPurpose),
		fmt.Sprintf("Group: %s (size %d)", p.GroupType, p.GroupSize),
		"Price sensitivity: " + string(p.PriceSensitivity),
		"Risk attitude: " + string(p.RiskAttitude),
	}, "; ")
}

func joinTags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return "none"
	}
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = string(t)
	}
	return strings.Join(s, ", ")
}

// RenderRefinePrompt renders the refinement prompt for rc.
func RenderRefinePrompt(rc RefineContext, formal string) (string, error) {
	var (
		tmpl *template.Template
		data = PromptData{Formal: formal}
	)

	switch {
	case rc.Type == domain.MessageCarUpgrade && rc.Car != nil:
		tmpl = carRefineTemplate
		data.PersonaSummary = personaSummary(&rc.Car.Persona)
		data.UserTags = joinTags(rc.Car.UserTags)
		data.FromName = rc.Car.From.DisplayName()
		data.FromTags = joinTags(rc.Car.FromTags)
		data.ToName = rc.Car.To.DisplayName()
		data.ToTags = joinTags(rc.Car.ToTags)
	case rc.Type == domain.MessageProtection && rc.Protection != nil:
		tmpl = protectionRefineTemplate
		data.PersonaSummary = personaSummary(&rc.Protection.Persona)
		data.UserTags = joinTags(rc.Protection.UserTags)
		data.ProtectionName = rc.Protection.displayName()
		data.ProtectionTags = joinTags(rc.Protection.Tags)
	default:
		return "", fmt.Errorf("no refinement prompt for message type %q", rc.Type)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s refinement prompt: %w", rc.Type, err)
	}
	return buf.String(), nil
}

// LLMRefiner implements Refiner with an llm.Backend.
type LLMRefiner struct {
	backend     llm.Backend
	temperature float64
	maxTokens   int
}

// LLMRefinerOption configures LLMRefiner.
type LLMRefinerOption func(*LLMRefiner)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) LLMRefinerOption {
	return func(r *LLMRefiner) {
		r.temperature = t
	}
}

// WithMaxTokens caps the length of the rewritten text.
func WithMaxTokens(n int) LLMRefinerOption {
	return func(r *LLMRefiner) {
		r.maxTokens = n
	}
}

// NewLLMRefiner creates an LLMRefiner.
func NewLLMRefiner(backend llm.Backend, opts ...LLMRefinerOption) *LLMRefiner {
	r := &LLMRefiner{
		backend:     backend,
		temperature: 0.4,
		maxTokens:   200,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refine asks the backend for a friendlier version of formal.
func (r *LLMRefiner) Refine(ctx context.Context, rc RefineContext, formal string) (string, error) {
	prompt, err := RenderRefinePrompt(rc, formal)
	if err != nil {
		return "", err
	}

	resp, err := r.backend.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("calling %s for refinement: %w", r.backend.Name(), err)
	}

	text := strings.Trim(strings.TrimSpace(resp.Content), `"`)
	if text == "" {
		return "", ErrEmptyRefinement
	}
	return text, nil
}
