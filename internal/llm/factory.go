package llm

import (
	"context"
	"fmt"
	"strings"
)

// Options selects and configures a generation service provider.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// New builds a Client for the configured provider. An empty provider
// defaults to openai.
func New(ctx context.Context, opts Options) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "openai"
	}

	switch provider {
	case "openai":
		return NewOpenAIClient(opts.APIKey, opts.Model, opts.BaseURL), nil
	case "gemini":
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", opts.Provider)
	}
}
