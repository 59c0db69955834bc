package openai

import (
	"testing"

	"github.com/cadagent-org/cadagent/pkg/types"
	sdk "github.com/sashabaranov/go-openai"
)

func TestConvertMessages(t *testing.T) {
	msgs := []types.Message{{Role: "system", Content: "be terse"}, {Role: "user", Content: "hi"}, {Role: "assistant", Content: ""}}
	converted := convertMessages(msgs)
	if len(converted) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(converted))
	}
	if converted[0].Role != "system" || converted[1].Content != "hi" {
		t.Fatalf("unexpected conversion: %+v", converted)
	}
	// empty content must still serialize for OpenAI-compatible backends
	if converted[2].Content == "" {
		t.Fatalf("empty content must get a placeholder")
	}
}

func TestConvertUsage(t *testing.T) {
	u := sdk.Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}
	res := convertUsage(u)
	if res.TotalTokens != 3 || res.PromptTokens != 1 || res.CompletionTokens != 2 {
		t.Fatalf("unexpected usage conversion: %+v", res)
	}
}
