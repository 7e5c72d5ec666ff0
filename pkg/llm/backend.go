// Package llm provides text-generation backends used to polish upsell copy
// and to turn free-text descriptions into structured data.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FormatJSON requests JSON mode from backends that support it.
const FormatJSON = "json"

// ErrDisabled is returned by backends that are switched off by configuration.
var ErrDisabled = errors.New("llm backend disabled")

// Request defines the input for one generation call.
type Request struct {
	Prompt      string
	System      string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response holds the generated text.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Backend generates text from a prompt.
type Backend interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

const defaultTimeout = 60 * time.Second

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// statusError is returned for non-200 responses.
type statusError struct {
	backend string
	status  int
	detail  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.backend, e.status, e.detail)
}

// postJSON sends in as JSON to url and decodes a 200 response into out.
// errDetail, when set, turns an error body into a readable message.
func postJSON(
	ctx context.Context,
	client *http.Client,
	backend, url string,
	headers map[string]string,
	in, out any,
	errDetail func([]byte) string,
) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", backend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := string(respBody)
		if errDetail != nil {
			if d := errDetail(respBody); d != "" {
				detail = d
			}
		}
		return &statusError{backend: backend, status: resp.StatusCode, detail: detail}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", backend, err)
	}
	return nil
}

// Noop is a Backend that always fails with ErrDisabled, so callers take
// their deterministic fallback path.
type Noop struct{}

// Name returns the backend name.
func (Noop) Name() string { return "noop" }

// Generate always returns ErrDisabled.
func (Noop) Generate(context.Context, Request) (Response, error) {
	return Response{}, ErrDisabled
}
