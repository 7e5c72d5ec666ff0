// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Data source kinds.
const (
	SourceSixt = "sixt"
	SourceDemo = "demo"
)

// LLM backend names.
const (
	BackendNone         = "none"
	BackendOllama       = "ollama"
	BackendAnthropic    = "anthropic"
	BackendOpenAICompat = "openai_compat"
	BackendGemini       = "gemini"
)

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	DataSource DataSourceConfig `yaml:"datasource"`
	LLM        LLMConfig        `yaml:"llm"`
	Messaging  MessagingConfig  `yaml:"messaging"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Notify     NotifyConfig     `yaml:"notify"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DataSourceConfig selects and configures where bookings and catalogs come
// from.
type DataSourceConfig struct {
	Kind  string      `yaml:"kind"` // sixt, demo
	Sixt  SixtConfig  `yaml:"sixt"`
	Cache CacheConfig `yaml:"cache"`
}

// SixtConfig defines Sixt booking API settings.
type SixtConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines booking API rate limiting settings.
type RateLimitConfig struct {
	PerSecond   float64       `yaml:"per_second"`
	Burst       int           `yaml:"burst"`
	Quota       int64         `yaml:"quota"`        // 0 disables the quota
	QuotaWindow time.Duration `yaml:"quota_window"` // default: 24h
}

// CacheConfig defines the Redis catalog cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// LLMConfig defines LLM backend settings.
type LLMConfig struct {
	Backend      string             `yaml:"backend"` // none, ollama, anthropic, openai_compat, gemini
	Ollama       OllamaConfig       `yaml:"ollama"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	Gemini       GeminiConfig       `yaml:"gemini"`
	Timeout      time.Duration      `yaml:"timeout"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings.
type AnthropicConfig struct {
	Model string `yaml:"model"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// GeminiConfig defines Google Gemini API settings.
type GeminiConfig struct {
	Model string `yaml:"model"`
}

// MessagingConfig defines how upsell messages are produced.
type MessagingConfig struct {
	RefineEnabled bool          `yaml:"refine_enabled"`
	RefineTimeout time.Duration `yaml:"refine_timeout"`
}

// ScheduleConfig defines background job intervals.
type ScheduleConfig struct {
	HealthInterval time.Duration `yaml:"health_interval"`
	CanaryInterval time.Duration `yaml:"canary_interval"` // 0 disables the canary
}

// NotifyConfig defines where scheduler alerts are delivered.
type NotifyConfig struct {
	DiscordWebhookURL string        `yaml:"discord_webhook_url"` // empty disables delivery
	Timeout           time.Duration `yaml:"timeout"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDataSourceDefaults(&cfg.DataSource)
	applyLLMDefaults(&cfg.LLM)
	applyMessagingDefaults(&cfg.Messaging)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotifyDefaults(&cfg.Notify)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDataSourceDefaults(d *DataSourceConfig) {
	if d.Kind == "" {
		d.Kind = SourceDemo
	}
	if d.Sixt.BaseURL == "" {
		d.Sixt.BaseURL = "https://hackatum25.sixt.io"
	}
	if d.Sixt.Timeout == 0 {
		d.Sixt.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&d.Sixt.RateLimit)

	if d.Cache.TTL == 0 {
		d.Cache.TTL = 10 * time.Minute
	}
	if d.Cache.Prefix == "" {
		d.Cache.Prefix = "upsell:catalog"
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.QuotaWindow == 0 {
		r.QuotaWindow = 24 * time.Hour
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = BackendNone
	}
	if l.Timeout == 0 {
		l.Timeout = 30 * time.Second
	}
}

func applyMessagingDefaults(m *MessagingConfig) {
	if m.RefineTimeout == 0 {
		m.RefineTimeout = 5 * time.Second
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.HealthInterval == 0 {
		s.HealthInterval = 30 * time.Second
	}
}

func applyNotifyDefaults(n *NotifyConfig) {
	if n.Timeout == 0 {
		n.Timeout = 10 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.DataSource.Kind {
	case SourceSixt:
		if cfg.DataSource.Sixt.RateLimit.PerSecond < 0 {
			errs = append(errs, fmt.Errorf("datasource.sixt.rate_limit.per_second must not be negative"))
		}
	case SourceDemo:
	default:
		errs = append(
			errs,
			fmt.Errorf("datasource.kind must be one of: sixt, demo (got %q)", cfg.DataSource.Kind),
		)
	}

	if cfg.DataSource.Cache.Enabled && cfg.DataSource.Cache.Addr == "" {
		errs = append(errs, fmt.Errorf("datasource.cache.addr is required when the cache is enabled"))
	}

	errs = append(errs, validateLLM(&cfg.LLM)...)

	if cfg.Messaging.RefineEnabled && cfg.LLM.Backend == BackendNone {
		errs = append(errs, fmt.Errorf("messaging.refine_enabled requires an llm.backend other than none"))
	}

	if u := cfg.Notify.DiscordWebhookURL; u != "" && !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
		errs = append(errs, fmt.Errorf("notify.discord_webhook_url must be an http(s) URL"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateLLM(l *LLMConfig) []error {
	var errs []error

	switch l.Backend {
	case BackendNone:
	case BackendOllama:
		if l.Ollama.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.ollama.endpoint is required when backend is ollama"),
			)
		}
	case BackendAnthropic:
		// API key comes from env, model must be set.
		if l.Anthropic.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.anthropic.model is required when backend is anthropic"),
			)
		}
	case BackendOpenAICompat:
		if l.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	case BackendGemini:
		if l.Gemini.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.gemini.model is required when backend is gemini"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.backend must be one of: none, ollama, anthropic, openai_compat, gemini (got %q)",
				l.Backend,
			),
		)
	}

	return errs
}
