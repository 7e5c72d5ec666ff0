package cmd

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/internal/config"
	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/internal/notify"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DataSourceConfig
		check   func(t *testing.T, src datasource.Source)
		wantErr string
	}{
		{
			name: "demo",
			cfg:  config.DataSourceConfig{Kind: config.SourceDemo},
			check: func(t *testing.T, src datasource.Source) {
				t.Helper()
				assert.IsType(t, &datasource.DemoSource{}, src)
			},
		},
		{
			name: "sixt with quota",
			cfg: config.DataSourceConfig{
				Kind: config.SourceSixt,
				Sixt: config.SixtConfig{
					BaseURL: "http://localhost:1",
					RateLimit: config.RateLimitConfig{
						PerSecond: 1, Burst: 1, Quota: 10, QuotaWindow: time.Hour,
					},
				},
			},
			check: func(t *testing.T, src datasource.Source) {
				t.Helper()
				assert.IsType(t, &datasource.SixtClient{}, src)
			},
		},
		{
			name:    "unknown",
			cfg:     config.DataSourceConfig{Kind: "postgres"},
			wantErr: `unknown datasource kind "postgres"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := buildSource(&tt.cfg)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, src)
		})
	}
}

func TestBuildBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantName string
		wantErr  string
	}{
		{name: "none", cfg: config.LLMConfig{Backend: config.BackendNone}, wantName: "noop"},
		{
			name:     "ollama",
			cfg:      config.LLMConfig{Backend: config.BackendOllama, Ollama: config.OllamaConfig{Endpoint: "http://ollama:11434"}},
			wantName: "ollama",
		},
		{
			name:     "anthropic",
			cfg:      config.LLMConfig{Backend: config.BackendAnthropic, Anthropic: config.AnthropicConfig{Model: "claude-haiku-4-5"}},
			wantName: "anthropic",
		},
		{
			name:     "openai compat",
			cfg:      config.LLMConfig{Backend: config.BackendOpenAICompat, OpenAICompat: config.OpenAICompatConfig{Endpoint: "http://vllm"}},
			wantName: "openai_compat",
		},
		{
			name:     "gemini",
			cfg:      config.LLMConfig{Backend: config.BackendGemini, Gemini: config.GeminiConfig{Model: "gemini-2.0-flash"}},
			wantName: "gemini",
		},
		{name: "unknown", cfg: config.LLMConfig{Backend: "bard"}, wantErr: `unknown llm backend "bard"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := buildBackend(&tt.cfg)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, b.Name())
		})
	}
}

func TestBuildComponents_WithCache(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	cfg := &config.Config{
		DataSource: config.DataSourceConfig{
			Kind: config.SourceDemo,
			Cache: config.CacheConfig{
				Enabled: true,
				Addr:    mr.Addr(),
				TTL:     time.Minute,
				Prefix:  "test",
			},
		},
		LLM: config.LLMConfig{Backend: config.BackendNone},
	}

	comps, err := buildComponents(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = comps.Close() })

	require.NotNil(t, comps.redis)
	assert.IsType(t, &datasource.CachedSource{}, comps.engine.Source())
	require.NoError(t, comps.engine.CheckHealth(context.Background()))

	res, err := comps.engine.Recommend(context.Background(), mustCreateBooking(t, comps), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.BookingID)

	assert.NotEmpty(t, mr.Keys(), "catalogs should be cached")
}

func TestBuildComponents_WithoutCache(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DataSource: config.DataSourceConfig{Kind: config.SourceDemo},
		LLM:        config.LLMConfig{Backend: config.BackendNone},
	}

	comps, err := buildComponents(cfg, quietLogger())
	require.NoError(t, err)

	assert.Nil(t, comps.redis)
	require.NoError(t, comps.Close())
	assert.Equal(t, "noop", comps.backend.Name())
}

func mustCreateBooking(t *testing.T, comps *components) string {
	t.Helper()

	b, err := comps.engine.CreateBooking(context.Background())
	require.NoError(t, err)
	return b.ID
}

func TestBuildNotifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.NotifyConfig
		want any
	}{
		{name: "no webhook", cfg: config.NotifyConfig{}, want: &notify.NoOpNotifier{}},
		{
			name: "discord webhook",
			cfg:  config.NotifyConfig{DiscordWebhookURL: "https://discord.com/api/webhooks/1/abc", Timeout: time.Second},
			want: &notify.DiscordNotifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.IsType(t, tt.want, buildNotifier(&tt.cfg, quietLogger()))
		})
	}
}
