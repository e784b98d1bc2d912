package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	rediscache "github.com/ribenamaplesyrup/artificial-centuria/internal/cache/redis"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/anthropic"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/gemini"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/openai"
)

// Config represents the application configuration.
type Config struct {
	LLM       LLMConfig
	OpenAI    openai.Config
	Anthropic anthropic.Config
	Gemini    gemini.Config
	Cache     rediscache.Config
}

// LLMConfig contains model defaults.
type LLMConfig struct {
	DefaultModel string `env:"DEFAULT_MODEL" envDefault:"gpt-4o-mini"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	LLM       *LLMConfig
	OpenAI    *openai.Config
	Anthropic *anthropic.Config
	Gemini    *gemini.Config
	Cache     *rediscache.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:       dig.Out{},
		LLM:       &cfg.LLM,
		OpenAI:    &cfg.OpenAI,
		Anthropic: &cfg.Anthropic,
		Gemini:    &cfg.Gemini,
		Cache:     &cfg.Cache,
	}
}
