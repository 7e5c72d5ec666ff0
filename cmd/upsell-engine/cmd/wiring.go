package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/rental-upsell/internal/config"
	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	"github.com/donaldgifford/rental-upsell/internal/notify"
	"github.com/donaldgifford/rental-upsell/pkg/llm"
	"github.com/donaldgifford/rental-upsell/pkg/logger"
	"github.com/donaldgifford/rental-upsell/pkg/message"
)

// components holds everything built from the config that the commands share.
type components struct {
	engine  *engine.Engine
	backend llm.Backend
	redis   *redis.Client
}

func (c *components) Close() error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Close()
}

func buildComponents(cfg *config.Config, log *slog.Logger) (*components, error) {
	comps := &components{}

	src, err := buildSource(&cfg.DataSource)
	if err != nil {
		return nil, err
	}

	if cfg.DataSource.Cache.Enabled {
		comps.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.DataSource.Cache.Addr,
			Password: cfg.DataSource.Cache.Password,
			DB:       cfg.DataSource.Cache.DB,
		})
		src = datasource.NewCachedSource(src, comps.redis,
			datasource.WithCacheTTL(cfg.DataSource.Cache.TTL),
			datasource.WithCachePrefix(cfg.DataSource.Cache.Prefix),
			datasource.WithCacheLogger(logger.Component(log, "cache")),
		)
	}

	comps.backend, err = buildBackend(&cfg.LLM)
	if err != nil {
		return nil, err
	}

	builderOpts := []message.BuilderOption{
		message.WithLogger(logger.Component(log, "message")),
		message.WithRefineObserver(engine.ObserveRefinement),
	}
	if cfg.Messaging.RefineEnabled {
		builderOpts = append(builderOpts, message.WithRefiner(message.NewLLMRefiner(comps.backend)))
	}
	builder := message.NewBuilder(message.Config{
		RefineEnabled: cfg.Messaging.RefineEnabled,
		Timeout:       cfg.Messaging.RefineTimeout,
	}, builderOpts...)

	comps.engine = engine.NewEngine(src,
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithBuilder(builder),
	)

	log.Info("components ready",
		"datasource", cfg.DataSource.Kind,
		"cache", cfg.DataSource.Cache.Enabled,
		"llm_backend", comps.backend.Name(),
		"refine", cfg.Messaging.RefineEnabled,
	)

	return comps, nil
}

func buildSource(cfg *config.DataSourceConfig) (datasource.Source, error) {
	switch cfg.Kind {
	case config.SourceDemo:
		return datasource.NewDemoSource(), nil
	case config.SourceSixt:
		rl := cfg.Sixt.RateLimit
		var limiterOpts []datasource.RateLimiterOption
		if rl.Quota > 0 {
			limiterOpts = append(limiterOpts, datasource.WithQuota(rl.Quota, rl.QuotaWindow))
		}
		return datasource.NewSixtClient(cfg.Sixt.BaseURL,
			datasource.WithHTTPClient(&http.Client{Timeout: cfg.Sixt.Timeout}),
			datasource.WithRateLimiter(datasource.NewRateLimiter(rl.PerSecond, rl.Burst, limiterOpts...)),
		), nil
	default:
		return nil, fmt.Errorf("unknown datasource kind %q", cfg.Kind)
	}
}

func buildBackend(cfg *config.LLMConfig) (llm.Backend, error) {
	hc := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Backend {
	case config.BackendNone:
		return llm.Noop{}, nil
	case config.BackendOllama:
		return llm.NewOllama(cfg.Ollama.Endpoint, cfg.Ollama.Model, llm.WithOllamaHTTPClient(hc)), nil
	case config.BackendAnthropic:
		return llm.NewAnthropic(
			llm.WithAnthropicModel(cfg.Anthropic.Model),
			llm.WithAnthropicHTTPClient(hc),
		), nil
	case config.BackendOpenAICompat:
		return llm.NewOpenAICompat(
			cfg.OpenAICompat.Endpoint,
			cfg.OpenAICompat.Model,
			llm.WithOpenAICompatHTTPClient(hc),
		), nil
	case config.BackendGemini:
		return llm.NewGemini(
			llm.WithGeminiModel(cfg.Gemini.Model),
			llm.WithGeminiHTTPClient(hc),
		), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// buildNotifier returns a Discord notifier when a webhook is configured,
// otherwise alerts are only logged.
func buildNotifier(cfg *config.NotifyConfig, log *slog.Logger) notify.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	return notify.NewDiscordNotifier(
		cfg.DiscordWebhookURL,
		notify.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
}
