package openai

import (
	"context"
	"fmt"

	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/types"
	"github.com/sashabaranov/go-openai"
)

type Provider struct {
	client *openai.Client
	config Config
}

type Config struct {
	APIKey  string
	BaseURL string
}

func New(cfg Config) *Provider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &Provider{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

func (p *Provider) ID() string {
	return "openai"
}

func (p *Provider) Call(ctx context.Context, req *llm.ProviderRequest) (*llm.ProviderResponse, error) {
	openAIReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    convertMessages(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	resp, err := p.client.CreateChatCompletion(ctx, openAIReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}
	choice := resp.Choices[0]

	return &llm.ProviderResponse{
		ID:      resp.ID,
		Model:   resp.Model,
		Content: choice.Message.Content,
		Usage:   convertUsage(resp.Usage),
	}, nil
}

// Helpers

func convertMessages(msgs []types.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		// go-openai uses `omitempty` on Content; DeepSeek requires the
		// field to be present, so empty content gets a placeholder.
		content := m.Content
		if content == "" {
			content = " "
		}
		result = append(result, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: content,
		})
	}
	return result
}

func convertUsage(u openai.Usage) types.Usage {
	return types.Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}
