package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// OpenAICompat implements Backend with any OpenAI-compatible chat
// completions server (OpenAI, vLLM, LM Studio, ...).
type OpenAICompat struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAICompatOption configures OpenAICompat.
type OpenAICompatOption func(*OpenAICompat)

// WithOpenAICompatHTTPClient overrides the HTTP client.
func WithOpenAICompatHTTPClient(c *http.Client) OpenAICompatOption {
	return func(b *OpenAICompat) {
		b.client = c
	}
}

// WithOpenAICompatAPIKey sets the bearer token instead of reading
// OPENAI_API_KEY.
func WithOpenAICompatAPIKey(key string) OpenAICompatOption {
	return func(b *OpenAICompat) {
		b.apiKey = key
	}
}

// NewOpenAICompat creates an OpenAI-compatible backend.
func NewOpenAICompat(endpoint, model string, opts ...OpenAICompatOption) *OpenAICompat {
	b := &OpenAICompat{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAICompat) Name() string { return "openai_compat" }

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    *float64      `json:"temperature,omitempty"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate calls POST /v1/chat/completions.
func (b *OpenAICompat) Generate(ctx context.Context, req Request) (Response, error) {
	var msgs []chatMessage
	if req.System != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.System})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: req.Prompt})

	in := chatRequest{Model: b.model, Messages: msgs, MaxTokens: req.MaxTokens}
	if req.Temperature > 0 {
		in.Temperature = &req.Temperature
	}
	if req.Format == FormatJSON {
		in.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	var headers map[string]string
	if b.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + b.apiKey}
	}

	var out chatResponse
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint+"/v1/chat/completions", headers, in, &out, nil); err != nil {
		return Response{}, err
	}
	if len(out.Choices) == 0 {
		return Response{}, fmt.Errorf("empty choices from openai-compatible API")
	}

	return Response{
		Content: out.Choices[0].Message.Content,
		Model:   out.Model,
		Usage: Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}
