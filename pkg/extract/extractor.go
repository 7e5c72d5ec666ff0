// Package extract uses an LLM backend to turn free text into structured
// domain data: personas from customer descriptions and enriched car profiles.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/donaldgifford/rental-upsell/pkg/llm"
	"github.com/donaldgifford/rental-upsell/pkg/persona"
	"github.com/donaldgifford/rental-upsell/pkg/tagging"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ErrEmptyDescription is returned when there is nothing to generate from.
var ErrEmptyDescription = errors.New("description is empty")

const maxProfileBullets = 3

// options shared by both extractors.
type options struct {
	temperature float64
	maxTokens   int
}

// Option configures an extractor.
type Option func(*options)

// WithTemperature sets the LLM temperature.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

func newOptions(opts []Option) options {
	o := options{temperature: 0.2, maxTokens: 1024}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// generateJSON calls the backend in JSON mode and decodes a single object.
func generateJSON(ctx context.Context, b llm.Backend, o options, system, prompt string, out any) error {
	resp, err := b.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      system,
		Format:      llm.FormatJSON,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return fmt.Errorf("calling LLM: %w", err)
	}

	raw := strings.TrimSpace(resp.Content)
	if !strings.HasPrefix(raw, "{") {
		return fmt.Errorf("LLM response is not a JSON object: %.40q", raw)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("parsing LLM JSON response: %w", err)
	}
	return nil
}

// PersonaGenerator builds personas from free-text customer descriptions.
type PersonaGenerator struct {
	backend llm.Backend
	opts    options
}

// NewPersonaGenerator creates a PersonaGenerator.
func NewPersonaGenerator(backend llm.Backend, opts ...Option) *PersonaGenerator {
	return &PersonaGenerator{backend: backend, opts: newOptions(opts)}
}

// Generate asks the LLM for a persona, validates it and derives its user
// tags. Tags are always recomputed locally.
func (g *PersonaGenerator) Generate(ctx context.Context, description string) (domain.Persona, []domain.Tag, error) {
	if strings.TrimSpace(description) == "" {
		return domain.Persona{}, nil, ErrEmptyDescription
	}

	prompt, err := RenderPersonaPrompt(description)
	if err != nil {
		return domain.Persona{}, nil, err
	}

	var p domain.Persona
	if err := generateJSON(ctx, g.backend, g.opts, personaSystem, prompt, &p); err != nil {
		return domain.Persona{}, nil, fmt.Errorf("generating persona: %w", err)
	}

	p.IdealCategory = normalizeCategories(p.IdealCategory)
	if err := persona.Validate(&p); err != nil {
		return domain.Persona{}, nil, fmt.Errorf("validating persona: %w", err)
	}

	return p, persona.UserTags(p), nil
}

func normalizeCategories(codes []string) []string {
	var out []string
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c[:1])
		}
	}
	return out
}

// CarProfile is a vehicle enriched with LLM-suggested tags and copy.
type CarProfile struct {
	Vehicle  domain.Vehicle `json:"vehicle"`
	BaseTags []domain.Tag   `json:"base_tags"`
	LLMTags  []domain.Tag   `json:"llm_tags"`
	Headline string         `json:"headline"`
	Bullets  []string       `json:"bullets"`
}

// AllTags returns the base tags followed by the LLM tags.
func (c *CarProfile) AllTags() []domain.Tag {
	return append(append([]domain.Tag{}, c.BaseTags...), c.LLMTags...)
}

// CarProfiler enriches vehicles with extra tags and upsell copy.
type CarProfiler struct {
	backend llm.Backend
	opts    options
}

// NewCarProfiler creates a CarProfiler.
func NewCarProfiler(backend llm.Backend, opts ...Option) *CarProfiler {
	return &CarProfiler{backend: backend, opts: newOptions(opts)}
}

type carProfileResult struct {
	LLMTags  []string `json:"llm_tags"`
	Headline string   `json:"headline"`
	Bullets  []string `json:"bullets"`
}

// Profile derives base tags for v and asks the LLM for additional ones.
// Suggested tags outside the car vocabulary or already in the base set are
// dropped.
func (p *CarProfiler) Profile(ctx context.Context, v domain.Vehicle) (CarProfile, error) {
	base := tagging.CarTags(v)

	prompt, err := RenderCarProfilePrompt(v, base, tagging.CarTagVocabulary)
	if err != nil {
		return CarProfile{}, err
	}

	var res carProfileResult
	if err := generateJSON(ctx, p.backend, p.opts, carProfileSystem, prompt, &res); err != nil {
		return CarProfile{}, fmt.Errorf("profiling vehicle %s: %w", v.ID, err)
	}

	bullets := res.Bullets
	if len(bullets) > maxProfileBullets {
		bullets = bullets[:maxProfileBullets]
	}

	return CarProfile{
		Vehicle:  v,
		BaseTags: base,
		LLMTags:  cleanTags(res.LLMTags, base),
		Headline: strings.TrimSpace(res.Headline),
		Bullets:  bullets,
	}, nil
}

// cleanTags keeps vocabulary tags not already in base, deduplicated.
func cleanTags(suggested []string, base []domain.Tag) []domain.Tag {
	out := []domain.Tag{}
	for _, s := range suggested {
		t := domain.Tag(strings.TrimSpace(s))
		if !domain.HasTag(tagging.CarTagVocabulary, t) || domain.HasTag(base, t) || domain.HasTag(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
