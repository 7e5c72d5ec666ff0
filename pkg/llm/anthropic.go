package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
)

const (
	defaultAnthropicURL     = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel   = "claude-haiku-4-5"
	defaultAnthropicVersion = "2023-06-01"
	defaultMaxTokens        = 512
)

// Anthropic implements Backend with the Anthropic Messages API.
type Anthropic struct {
	apiKey     string
	model      string
	endpoint   string
	apiVersion string
	client     *http.Client
}

// AnthropicOption configures Anthropic.
type AnthropicOption func(*Anthropic)

// WithAnthropicEndpoint overrides the API endpoint.
func WithAnthropicEndpoint(url string) AnthropicOption {
	return func(b *Anthropic) {
		b.endpoint = url
	}
}

// WithAnthropicModel overrides the model.
func WithAnthropicModel(model string) AnthropicOption {
	return func(b *Anthropic) {
		if model != "" {
			b.model = model
		}
	}
}

// WithAnthropicAPIKey sets the API key instead of reading ANTHROPIC_API_KEY.
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(b *Anthropic) {
		b.apiKey = key
	}
}

// WithAnthropicHTTPClient overrides the HTTP client.
func WithAnthropicHTTPClient(c *http.Client) AnthropicOption {
	return func(b *Anthropic) {
		b.client = c
	}
}

// NewAnthropic creates an Anthropic backend. The API key defaults to the
// ANTHROPIC_API_KEY environment variable.
func NewAnthropic(opts ...AnthropicOption) *Anthropic {
	b := &Anthropic{
		apiKey:     os.Getenv("ANTHROPIC_API_KEY"),
		model:      defaultAnthropicModel,
		endpoint:   defaultAnthropicURL,
		apiVersion: defaultAnthropicVersion,
		client:     defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*Anthropic) Name() string { return "anthropic" }

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func anthropicErrorDetail(body []byte) string {
	var e struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &e) != nil || e.Error.Message == "" {
		return ""
	}
	return e.Error.Type + ": " + e.Error.Message
}

// Generate calls the Messages API. JSON mode is requested through the system
// prompt since the API has no response format switch.
func (b *Anthropic) Generate(ctx context.Context, req Request) (Response, error) {
	if b.apiKey == "" {
		return Response{}, errors.New("ANTHROPIC_API_KEY is not set")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	system := req.System
	if req.Format == FormatJSON {
		system += "\nRespond with a single JSON object and nothing else."
	}

	in := anthropicRequest{
		Model:     b.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: req.Prompt}},
	}
	if req.Temperature > 0 {
		in.Temperature = &req.Temperature
	}

	headers := map[string]string{
		"x-api-key":         b.apiKey,
		"anthropic-version": b.apiVersion,
	}

	var out anthropicResponse
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint, headers, in, &out, anthropicErrorDetail); err != nil {
		return Response{}, err
	}

	if len(out.Content) == 0 {
		return Response{}, fmt.Errorf("empty response from anthropic")
	}

	return Response{
		Content: out.Content[0].Text,
		Model:   out.Model,
		Usage: Usage{
			PromptTokens:     out.Usage.InputTokens,
			CompletionTokens: out.Usage.OutputTokens,
			TotalTokens:      out.Usage.InputTokens + out.Usage.OutputTokens,
		},
	}, nil
}
