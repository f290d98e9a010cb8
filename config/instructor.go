package config

import (
	"strings"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// NewInstructor builds the language model client for the configured provider.
func (c *Config) NewInstructor() instructor.Instructor {
	switch strings.ToLower(c.Provider) {
	case AnthropicProvider:
		opts := make([]anthropic.ClientOption, 0, 1)
		if c.AnthropicBaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(c.AnthropicBaseURL))
		}
		clt := anthropic.NewClient(c.AnthropicAPIKey, opts...)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	case CohereProvider:
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(c.CohereAPIKey))
		if c.CohereBaseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(c.CohereBaseURL))
		}
		clt := cohereClient.NewClient(opts...)
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	default:
		cfg := openai.DefaultConfig(c.OpenAIAPIKey)
		if c.OpenAIBaseURL != "" {
			cfg.BaseURL = c.OpenAIBaseURL
		}
		clt := openai.NewClientWithConfig(cfg)
		return instructor.FromOpenAI(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	}
}
