package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// personaSystem is the system prompt for persona generation.
const personaSystem = `You are a service that converts a natural-language description of a car rental customer
and their trip into a structured persona object for an upsell engine.

Follow the JSON schema exactly. Use only the allowed enum values where provided.
Keep "label" short and "description" to 1-2 sentences.

When populating "ideal_category", consider the group size, luggage, comfort preference and trip purpose.
- "M", "E", "C" are good for budget, solo travelers and small groups.
- "I", "S", "F" are good for comfort and families.
- "P", "L" are for premium, luxury and business.
- "X" is for SUVs, vans or special needs such as moving.`

// personaTmpl is the persona generation prompt template.
const personaTmpl = `Customer description:
{{.Description}}

Respond ONLY with a JSON object matching this schema:
{
  "id": string (slug like dynamic_family_trip_1),
  "label": string,
  "description": string,
  "trip_purpose": "business" | "vacation" | "visiting_family" | "weekend_trip" | "moving",
  "group_type": "solo" | "couple" | "family" | "friends",
  "group_size": integer >= 1,
  "trip_duration_days": integer >= 1,
  "luggage_level": "light" | "normal" | "a_lot",
  "comfort_preference": "low" | "medium" | "high",
  "brand_preference": "none" | "likes_premium" | "must_be_premium",
  "eco_preference": "no_preference" | "likes_hybrid" | "wants_ev",
  "driving_style": "calm" | "normal" | "sporty",
  "tech_affinity": "low" | "medium" | "high",
  "price_sensitivity": "low" | "medium" | "high",
  "risk_attitude": "risk_averse" | "balanced" | "risk_taker",
  "previous_insurance_uptake": "always" | "sometimes" | "never",
  "franchise_tolerance": "low" | "medium" | "high",
  "wants_fast_pickup": boolean,
  "ideal_category": [one of "M","E","C","I","S","F","P","L","X"],
  "language": string (ISO code such as en or de),
  "tone_of_voice": "formal" | "casual"
}`

// carProfileSystem is the system prompt for car profiling.
const carProfileSystem = `You help a car rental upsell engine enrich car data.

You will receive a JSON object with:
- "vehicle": raw vehicle data (brand, model, group, seats, fuel type, ...)
- "base_tags": tags already assigned to the vehicle
- "car_tags": the full vocabulary of allowed car tags

Your job:
1) Propose extra tags "llm_tags" that are all taken from car_tags and are not already in base_tags.
2) Write a short "headline" (at most about 60 characters) for why this car is a good upgrade.
3) Write 2-3 "bullets" that describe benefits (space, comfort, EV, brand, ...).

Only use tags that exist in car_tags. Respond ONLY with a JSON object:
{"llm_tags": [string], "headline": string, "bullets": [string]}`

// PromptData holds the template variables for persona prompts.
type PromptData struct {
	Description string
}

var personaTemplate = template.Must(template.New("persona").Parse(personaTmpl))

// RenderPersonaPrompt renders the persona generation prompt.
func RenderPersonaPrompt(description string) (string, error) {
	var buf bytes.Buffer
	if err := personaTemplate.Execute(&buf, PromptData{Description: description}); err != nil {
		return "", fmt.Errorf("rendering persona prompt: %w", err)
	}
	return buf.String(), nil
}

type carProfileInput struct {
	Vehicle  domain.Vehicle `json:"vehicle"`
	BaseTags []domain.Tag   `json:"base_tags"`
	CarTags  []domain.Tag   `json:"car_tags"`
}

// RenderCarProfilePrompt renders the car profiling prompt as a JSON document.
func RenderCarProfilePrompt(v domain.Vehicle, baseTags, vocabulary []domain.Tag) (string, error) {
	b, err := json.Marshal(carProfileInput{Vehicle: v, BaseTags: baseTags, CarTags: vocabulary})
	if err != nil {
		return "", fmt.Errorf("rendering car profile prompt: %w", err)
	}
	return string(b), nil
}
