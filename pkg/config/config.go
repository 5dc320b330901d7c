package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-backed defaults for an invocation. Flags
// override these; these override the envDefault values. AWS credential
// discovery itself is left to the SDK chain — only the profile/region
// selection and the optional static key pair live here.
type Config struct {
	Region      string  `env:"AWS_REGION" envDefault:"us-east-1"`
	Profile     string  `env:"AWS_PROFILE" envDefault:"default"`
	Provider    string  `env:"BEDROCKCLAW_PROVIDER" envDefault:"bedrock"`
	Model       string  `env:"BEDROCKCLAW_MODEL" envDefault:"claude-opus-4-5"`
	OutputDir   string  `env:"BEDROCKCLAW_OUTPUT_DIR" envDefault:"./output"`
	MaxTokens   int     `env:"BEDROCKCLAW_MAX_TOKENS" envDefault:"4096"`
	Temperature float64 `env:"BEDROCKCLAW_TEMPERATURE" envDefault:"1.0"`

	// Direct Anthropic API access (provider=anthropic).
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// OpenAI-compatible proxy access (provider=proxy). The defaults match a
	// LiteLLM proxy running locally with auth disabled.
	ProxyBaseURL string `env:"BEDROCKCLAW_PROXY_URL" envDefault:"http://localhost:4000"`
	ProxyAPIKey  string `env:"BEDROCKCLAW_PROXY_KEY" envDefault:"anything"`

	// Optional static AWS credentials. When both are set they take priority
	// over the shared-config profile.
	AccessKey string `env:"BEDROCKCLAW_AK"`
	SecretKey string `env:"BEDROCKCLAW_SK"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
