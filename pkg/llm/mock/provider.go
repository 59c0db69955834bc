package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/cadagent-org/cadagent/pkg/llm"
)

// Provider returns a canned response, for tests and offline dry runs.
type Provider struct {
	ResponseContent string
	Err             error
}

func New(response string) *Provider {
	return &Provider{
		ResponseContent: response,
	}
}

func (p *Provider) ID() string {
	return "mock"
}

func (p *Provider) Call(ctx context.Context, req *llm.ProviderRequest) (*llm.ProviderResponse, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	content := p.ResponseContent
	if content == "" {
		lastMsg := req.Messages[len(req.Messages)-1]
		content = fmt.Sprintf("Mock response to: %s", lastMsg.Content)
	}

	return &llm.ProviderResponse{
		ID:      fmt.Sprintf("mock-%d", time.Now().UnixNano()),
		Model:   "mock-model",
		Content: content,
	}, nil
}
