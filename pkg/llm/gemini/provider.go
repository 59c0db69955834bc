package gemini

import (
	"context"
	"fmt"

	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/types"
	"google.golang.org/genai"
)

// Config contains Gemini-specific configuration.
type Config struct {
	APIKey    string
	ProjectID string
	Location  string
	Model     string
}

type Provider struct {
	client *genai.Client
	config Config
}

func New(ctx context.Context, cfg Config) (*Provider, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI, // Default to Gemini API
	}

	if cfg.ProjectID != "" && cfg.Location != "" {
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = cfg.ProjectID
		clientConfig.Location = cfg.Location
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Provider{
		client: client,
		config: cfg,
	}, nil
}

func (p *Provider) ID() string {
	return "gemini"
}

func (p *Provider) Call(ctx context.Context, req *llm.ProviderRequest) (*llm.ProviderResponse, error) {
	modelName, contents, conf := p.prepareCall(req)

	resp, err := p.client.Models.GenerateContent(ctx, modelName, contents, conf)
	if err != nil {
		return nil, err
	}

	return convertResponse(resp, modelName)
}

func (p *Provider) prepareCall(req *llm.ProviderRequest) (string, []*genai.Content, *genai.GenerateContentConfig) {
	// The system prompt travels separately from the conversation turns.
	var systemInstruction *genai.Content
	var contents []*genai.Content

	for _, m := range req.Messages {
		if m.Role == "system" {
			systemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: m.Content}},
			}
			continue
		}
		contents = append(contents, convertMessage(m))
	}

	conf := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens:   int32(req.MaxTokens),
		SystemInstruction: systemInstruction,
	}

	modelName := req.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	return modelName, contents, conf
}

// Helpers

func convertMessage(m types.Message) *genai.Content {
	role := "user"
	if m.Role == "assistant" {
		role = "model"
	}
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{{Text: m.Content}},
	}
}

func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.ProviderResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned")
	}
	cand := resp.Candidates[0]

	var content string
	for _, part := range cand.Content.Parts {
		content += part.Text
	}

	llmResp := &llm.ProviderResponse{
		Model:   model,
		Content: content,
	}
	if resp.UsageMetadata != nil {
		llmResp.Usage = types.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return llmResp, nil
}
