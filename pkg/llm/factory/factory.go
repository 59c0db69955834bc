package factory

import (
	"context"
	"fmt"

	"github.com/cadagent-org/cadagent/pkg/config"
	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/llm/gemini"
	"github.com/cadagent-org/cadagent/pkg/llm/mock"
	"github.com/cadagent-org/cadagent/pkg/llm/openai"
)

// NewProvider builds the active provider from configuration. DeepSeek
// and other OpenAI-compatible endpoints reuse the openai client with a
// BaseURL override.
func NewProvider(ctx context.Context, cfg *config.Config) (llm.Provider, string, error) {
	providerID, opts, err := cfg.GetActiveProvider()
	if err != nil {
		return nil, "", err
	}

	switch providerID {
	case "openai", "deepseek":
		return openai.New(openai.Config{
			APIKey:  opts.APIKey,
			BaseURL: opts.BaseURL,
		}), providerID, nil
	case "gemini":
		p, err := gemini.New(ctx, gemini.Config{
			APIKey:    opts.APIKey,
			ProjectID: opts.ProjectID,
			Location:  opts.Location,
			Model:     opts.Model,
		})
		if err != nil {
			return nil, "", err
		}
		return p, providerID, nil
	case "mock":
		return mock.New(""), providerID, nil
	default:
		return nil, "", fmt.Errorf("unknown provider %q", providerID)
	}
}
