package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func TestProviderCall(t *testing.T) {
	p := New("preset")
	resp, err := p.Call(context.Background(), &llm.ProviderRequest{Messages: []types.Message{{Content: "hello"}}})
	if err != nil {
		t.Fatalf("call returned error: %v", err)
	}
	if resp.Content != "preset" {
		t.Fatalf("unexpected content %q", resp.Content)
	}
}

func TestProviderCallEcho(t *testing.T) {
	p := New("")
	resp, err := p.Call(context.Background(), &llm.ProviderRequest{Messages: []types.Message{{Content: "hello"}}})
	if err != nil {
		t.Fatalf("call returned error: %v", err)
	}
	if resp.Content == "" {
		t.Fatalf("expected echoed content")
	}
}

func TestProviderCallInjectedError(t *testing.T) {
	p := New("ignored")
	p.Err = errors.New("boom")
	if _, err := p.Call(context.Background(), &llm.ProviderRequest{}); err == nil {
		t.Fatalf("expected injected error")
	}
}
