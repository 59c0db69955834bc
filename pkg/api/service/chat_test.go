package service

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/operation"
)

type scriptedGateway struct {
	responses []string
	calls     int
	gotMsgs   int
}

func (g *scriptedGateway) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	g.gotMsgs = len(req.Messages)
	content := g.responses[g.calls%len(g.responses)]
	g.calls++
	return &llm.ChatResponse{Model: "scripted", Content: content}, nil
}

func newService(gw Chatter) (*ChatService, *cad.MemContext) {
	mem := cad.NewMemContext()
	d := operation.NewDispatcher(operation.DefaultRegistry(), slog.Default())
	return NewChatService(gw, d, mem, "", nil), mem
}

func TestAskCarriesConversationHistory(t *testing.T) {
	gw := &scriptedGateway{responses: []string{"noted."}}
	svc, _ := newService(gw)

	if _, err := svc.Ask(context.Background(), "hello"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	// system + user
	if gw.gotMsgs != 2 {
		t.Fatalf("first turn should carry 2 messages, got %d", gw.gotMsgs)
	}

	if _, err := svc.Ask(context.Background(), "thanks"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	// system + prior user/assistant + user
	if gw.gotMsgs != 4 {
		t.Fatalf("second turn should carry 4 messages, got %d", gw.gotMsgs)
	}
}

func TestExecuteDoesNotInferFromResponse(t *testing.T) {
	svc, mem := newService(&scriptedGateway{responses: []string{""}})

	// prose about a box, but no structured command and no user prompt
	result := svc.Execute("I could make a box for you if you ask.")
	if result.Command != nil {
		t.Fatalf("execute must not infer from model prose: %+v", result.Command)
	}
	if len(mem.Calls()) != 0 {
		t.Fatalf("no modeling calls expected: %v", mem.Calls())
	}
	if result.Reply != "I could make a box for you if you ask." {
		t.Fatalf("unexpected reply: %q", result.Reply)
	}
}

func TestExecuteRunsEmbeddedCommand(t *testing.T) {
	svc, mem := newService(&scriptedGateway{responses: []string{""}})

	result := svc.Execute(`{"response": "ok", "command": {"action": "create_part", "type": "cylinder", "parameters": {"diameter": 40, "height": 80, "units": "mm"}}}`)
	if result.Result == nil || !strings.HasPrefix(result.Reply, "Success:") {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(mem.Features()) != 1 {
		t.Fatalf("expected one feature, got %v", mem.Features())
	}
	if result.RequestID == "" {
		t.Fatalf("request id must be assigned")
	}
}
