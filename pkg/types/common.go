package types

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Message is one chat turn exchanged with the AI provider.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // system/user/assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Usage reports provider token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ID Generation Helpers

func GenerateID(prefix string) string {
	return prefix + "_" + ulid.Make().String()
}

func GenerateCommandID() string { return GenerateID("cmd") }
func GenerateRequestID() string { return GenerateID("req") }
