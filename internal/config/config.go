package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"radar/internal/model"
	"radar/pkg/llm"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = llm.ProviderOpenAI
	ProviderAnthropic = llm.ProviderAnthropic
)

var ErrMissingAPIKey = errors.New("VSE_GPT_API_KEY is not set")

type Config struct {
	APIKey         string
	BaseURL        string
	FactsModel     string
	DraftModel     string
	DraftProvider  string
	AnthropicKey   string
	AnthropicModel string
	RequestTimeout time.Duration
	HotnessMode    string
	Port           string
	FrontendURL    string
	LogLevel       slog.Level
}

// Load reads an optional .env file and then the process environment. A
// missing completion credential is fatal.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:         os.Getenv("VSE_GPT_API_KEY"),
		BaseURL:        getEnv("LLM_BASE_URL", llm.DefaultBaseURL),
		FactsModel:     getEnv("FACTS_MODEL", llm.DefaultFactsModel),
		DraftModel:     getEnv("DRAFT_MODEL", llm.DefaultDraftModel),
		DraftProvider:  strings.ToLower(getEnv("DRAFT_PROVIDER", ProviderOpenAI)),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", llm.DefaultAnthropicModel),
		HotnessMode:    strings.ToLower(getEnv("HOTNESS_MODE", model.HotnessComputed)),
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", llm.DefaultTimeout.String()))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %q", os.Getenv("REQUEST_TIMEOUT"))
	}
	cfg.RequestTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch cfg.HotnessMode {
	case model.HotnessComputed, model.HotnessManual:
	default:
		return nil, fmt.Errorf("invalid HOTNESS_MODE %q: want %s or %s", cfg.HotnessMode, model.HotnessComputed, model.HotnessManual)
	}

	switch cfg.DraftProvider {
	case ProviderOpenAI:
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is required when DRAFT_PROVIDER=anthropic")
		}
	default:
		return nil, fmt.Errorf("invalid DRAFT_PROVIDER %q", cfg.DraftProvider)
	}

	return cfg, nil
}

func (c *Config) LLM() llm.Config {
	return llm.Config{
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		FactsModel: c.FactsModel,
		DraftModel: c.DraftModel,
		Timeout:    c.RequestTimeout,
	}
}

func (c *Config) Anthropic() llm.Config {
	return llm.Config{
		APIKey:     c.AnthropicKey,
		DraftModel: c.AnthropicModel,
		Timeout:    c.RequestTimeout,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
