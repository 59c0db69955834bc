package llm

import (
	"context"

	"github.com/cadagent-org/cadagent/pkg/config"
)

type Gateway struct {
	provider Provider
	options  config.ProviderOptions
}

func NewGateway(provider Provider, opts config.ProviderOptions) *Gateway {
	if opts.Temperature == 0 {
		opts.Temperature = 0.2 // low default: command output should be deterministic
	}
	return &Gateway{
		provider: provider,
		options:  opts,
	}
}

func (g *Gateway) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = g.options.Model
	}
	provReq := &ProviderRequest{
		Model:       model,
		Messages:    req.Messages,
		MaxTokens:   g.options.MaxTokens,
		Temperature: g.options.Temperature,
	}

	resp, err := g.provider.Call(ctx, provReq)
	if err != nil {
		return nil, err
	}

	return &ChatResponse{
		Model:   resp.Model,
		Content: resp.Content,
		Usage:   resp.Usage,
	}, nil
}
