package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.5-flash"
)

// Gemini implements Backend with the Google Generative Language
// generateContent API.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// GeminiOption configures Gemini.
type GeminiOption func(*Gemini)

// WithGeminiEndpoint overrides the API base URL.
func WithGeminiEndpoint(u string) GeminiOption {
	return func(b *Gemini) {
		b.endpoint = strings.TrimRight(u, "/")
	}
}

// WithGeminiModel overrides the model id.
func WithGeminiModel(model string) GeminiOption {
	return func(b *Gemini) {
		if model != "" {
			b.model = model
		}
	}
}

// WithGeminiAPIKey sets the API key instead of reading GEMINI_API_KEY.
func WithGeminiAPIKey(key string) GeminiOption {
	return func(b *Gemini) {
		b.apiKey = key
	}
}

// WithGeminiHTTPClient overrides the HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(b *Gemini) {
		b.client = c
	}
}

// NewGemini creates a Gemini backend.
func NewGemini(opts ...GeminiOption) *Gemini {
	b := &Gemini{
		apiKey:   os.Getenv("GEMINI_API_KEY"),
		model:    defaultGeminiModel,
		endpoint: defaultGeminiURL,
		client:   defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiGenConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	ModelVersion string `json:"modelVersion"`
}

func geminiErrorDetail(body []byte) string {
	var e struct {
		Error struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &e) != nil || e.Error.Message == "" {
		return ""
	}
	return e.Error.Status + ": " + e.Error.Message
}

// Generate calls POST /models/{model}:generateContent.
func (b *Gemini) Generate(ctx context.Context, req Request) (Response, error) {
	if b.apiKey == "" {
		return Response{}, errors.New("GEMINI_API_KEY is not set")
	}

	in := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: geminiGenConfig{
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.System != "" {
		in.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.Temperature > 0 {
		in.GenerationConfig.Temperature = &req.Temperature
	}
	if req.Format == FormatJSON {
		in.GenerationConfig.ResponseMIMEType = "application/json"
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		b.endpoint, url.PathEscape(b.model), url.QueryEscape(b.apiKey))

	var out geminiResponse
	if err := postJSON(ctx, b.client, b.Name(), u, nil, in, &out, geminiErrorDetail); err != nil {
		return Response{}, err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Response{}, fmt.Errorf("empty response from gemini")
	}

	model := out.ModelVersion
	if model == "" {
		model = b.model
	}

	return Response{
		Content: out.Candidates[0].Content.Parts[0].Text,
		Model:   model,
		Usage: Usage{
			PromptTokens:     out.UsageMetadata.PromptTokenCount,
			CompletionTokens: out.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      out.UsageMetadata.TotalTokenCount,
		},
	}, nil
}
