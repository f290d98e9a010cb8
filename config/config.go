package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Provider names accepted in configuration.
const (
	OpenAIProvider    = "openai"
	AnthropicProvider = "anthropic"
	CohereProvider    = "cohere"
)

// Config holds credentials and tunables for the planner and its tools.
// Values come from the environment first, then an optional voyagent.yaml.
type Config struct {
	// Provider selects the language model backend: openai, anthropic or cohere.
	Provider string `mapstructure:"provider"`
	// Model is the model name passed to the backend.
	Model string `mapstructure:"model"`
	// Temperature for response generation.
	Temperature float32 `mapstructure:"temperature"`
	// MaxTokens allowed in a response.
	MaxTokens int `mapstructure:"max_tokens"`

	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	OpenAIBaseURL    string `mapstructure:"openai_api_base_url"`
	AnthropicAPIKey  string `mapstructure:"anthropic_api_key"`
	AnthropicBaseURL string `mapstructure:"anthropic_api_base_url"`
	CohereAPIKey     string `mapstructure:"cohere_api_key"`
	CohereBaseURL    string `mapstructure:"cohere_api_base_url"`

	// SerperAPIKey enables web search.
	SerperAPIKey string `mapstructure:"serper_api_key"`
	// OpenWeatherAPIKey enables live weather lookups.
	OpenWeatherAPIKey string `mapstructure:"openweather_api_key"`
	// TranslateBaseURL enables live translation.
	TranslateBaseURL string `mapstructure:"translate_base_url"`
	TranslateAPIKey  string `mapstructure:"translate_api_key"`

	// Host and Port of the HTTP server.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load reads configuration from the environment and an optional voyagent.yaml
// in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("voyagent")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.voyagent")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"provider", "model", "temperature", "max_tokens",
		"openai_api_key", "openai_api_base_url",
		"anthropic_api_key", "anthropic_api_base_url",
		"cohere_api_key", "cohere_api_base_url",
		"serper_api_key", "openweather_api_key",
		"translate_base_url", "translate_api_key",
		"host", "port",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.SetDefault("provider", OpenAIProvider)
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("max_tokens", 4096)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate enforces the credentials the selected provider needs.
// A missing language model credential is a startup failure, not a degraded run.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case OpenAIProvider:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %s", c.Provider)
		}
	case AnthropicProvider:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for provider %s", c.Provider)
		}
	case CohereProvider:
		if c.CohereAPIKey == "" {
			return fmt.Errorf("COHERE_API_KEY is required for provider %s", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}
