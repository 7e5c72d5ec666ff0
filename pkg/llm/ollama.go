package llm

import (
	"context"
	"net/http"
	"strings"
)

// Ollama implements Backend with a local Ollama server.
type Ollama struct {
	endpoint string
	model    string
	client   *http.Client
}

// OllamaOption configures Ollama.
type OllamaOption func(*Ollama)

// WithOllamaHTTPClient overrides the HTTP client.
func WithOllamaHTTPClient(c *http.Client) OllamaOption {
	return func(b *Ollama) {
		b.client = c
	}
}

// NewOllama creates an Ollama backend for the server at endpoint.
func NewOllama(endpoint, model string, opts ...OllamaOption) *Ollama {
	b := &Ollama{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		client:   defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*Ollama) Name() string { return "ollama" }

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Format  string         `json:"format,omitempty"`
	Stream  bool           `json:"stream"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// Generate calls POST /api/generate without streaming.
func (b *Ollama) Generate(ctx context.Context, req Request) (Response, error) {
	in := ollamaRequest{
		Model:  b.model,
		Prompt: req.Prompt,
		System: req.System,
	}
	if req.Format == FormatJSON {
		in.Format = FormatJSON
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		in.Options = &ollamaOptions{Temperature: req.Temperature, NumPredict: req.MaxTokens}
	}

	var out ollamaResponse
	if err := postJSON(ctx, b.client, b.Name(), b.endpoint+"/api/generate", nil, in, &out, nil); err != nil {
		return Response{}, err
	}

	return Response{
		Content: out.Response,
		Model:   out.Model,
		Usage: Usage{
			PromptTokens:     out.PromptEvalCount,
			CompletionTokens: out.EvalCount,
			TotalTokens:      out.PromptEvalCount + out.EvalCount,
		},
	}, nil
}
