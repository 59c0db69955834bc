package llm

import (
	"context"

	"github.com/cadagent-org/cadagent/pkg/types"
)

// Provider defines the interface for an LLM provider (e.g., OpenAI, Gemini)
type Provider interface {
	// ID returns the unique identifier of the provider
	ID() string

	// Call executes a synchronous chat request
	Call(ctx context.Context, req *ProviderRequest) (*ProviderResponse, error)
}

type ChatRequest struct {
	Model    string
	Messages []types.Message
}

type ChatResponse struct {
	Model   string
	Content string
	Usage   types.Usage
}

type ProviderRequest struct {
	Model       string
	Messages    []types.Message
	MaxTokens   int
	Temperature float64
}

type ProviderResponse struct {
	ID      string
	Model   string
	Content string
	Usage   types.Usage
}
