package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/rental-upsell/internal/api/handlers"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// ListPersonas returns the persona catalog with derived user tags.
func (c *Client) ListPersonas(ctx context.Context) ([]handlers.PersonaWithTags, error) {
	var resp struct {
		Personas []handlers.PersonaWithTags `json:"personas"`
	}
	if err := c.get(ctx, "/api/v1/personas", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Personas, nil
}

// GetPersona returns one catalog persona.
func (c *Client) GetPersona(ctx context.Context, id string) (*handlers.PersonaWithTags, error) {
	var p handlers.PersonaWithTags
	if err := c.get(ctx, "/api/v1/personas/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GeneratePersona asks the server's LLM backend for a persona.
func (c *Client) GeneratePersona(ctx context.Context, description string) (*handlers.PersonaWithTags, error) {
	var p handlers.PersonaWithTags
	body := map[string]string{"description": description}
	if err := c.post(ctx, "/api/v1/personas/generate", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// VehicleTags returns the car tags the server derives for v.
func (c *Client) VehicleTags(ctx context.Context, v *domain.Vehicle) ([]domain.Tag, error) {
	return c.tags(ctx, "/api/v1/tags/vehicle", map[string]any{"vehicle": v})
}

// ProtectionTags returns the protection tags the server derives for p.
func (c *Client) ProtectionTags(ctx context.Context, p *domain.ProtectionPackage) ([]domain.Tag, error) {
	return c.tags(ctx, "/api/v1/tags/protection", map[string]any{"protection": p})
}

func (c *Client) tags(ctx context.Context, path string, body any) ([]domain.Tag, error) {
	var resp struct {
		Tags []domain.Tag `json:"tags"`
	}
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}
