package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/operation"
	"github.com/cadagent-org/cadagent/pkg/parser"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// DefaultSystemPrompt instructs the model to answer in prose and embed
// machine-readable commands as JSON.
const DefaultSystemPrompt = `You are a CAD modeling assistant. Answer the user in one or two short sentences.
When the user asks for a modeling operation, include a JSON object of the form
{"response": "<your sentence>", "command": {"action": "create_part|create_feature|modify|delete", "type": "<operation type>", "parameters": {...}}}
Dimensions are numbers; include a "units" parameter ("mm", "cm", "m", "in").
If no modeling operation is requested, answer in plain text without a command.`

// Chatter is the LLM surface the service needs.
type Chatter interface {
	Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// ChatResult is the outcome of one turn: the model's text, the command
// recovered from it (if any), and the dispatch result.
type ChatResult struct {
	RequestID string
	Response  string
	Command   *types.Command
	Result    *types.OperationResult

	// Reply is the single line to show the user: the operation result
	// when a command ran, otherwise the model's own text.
	Reply string
}

// ChatService runs the prompt -> response -> command -> dispatch
// pipeline against the active modeling session.
type ChatService struct {
	gateway    Chatter
	dispatcher *operation.Dispatcher
	modeling   cad.ModelingContext
	system     string
	log        *slog.Logger

	// The CAD session is single-flight: commands mutate shared
	// selection state, so turns serialize here.
	mu      sync.Mutex
	history []types.Message
}

func NewChatService(gateway Chatter, dispatcher *operation.Dispatcher, modeling cad.ModelingContext, systemPrompt string, log *slog.Logger) *ChatService {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	if log == nil {
		log = slog.Default()
	}
	return &ChatService{
		gateway:    gateway,
		dispatcher: dispatcher,
		modeling:   modeling,
		system:     systemPrompt,
		log:        log,
	}
}

// Ask sends the prompt to the LLM and executes whatever command comes
// back in the response.
func (s *ChatService) Ask(ctx context.Context, prompt string) (*ChatResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]types.Message, 0, len(s.history)+2)
	messages = append(messages, types.Message{Role: "system", Content: s.system})
	messages = append(messages, s.history...)
	messages = append(messages, types.Message{Role: "user", Content: prompt})

	resp, err := s.gateway.Chat(ctx, &llm.ChatRequest{Messages: messages})
	if err != nil {
		return nil, err
	}

	result := s.execute(resp.Content, prompt)

	s.history = append(s.history,
		types.Message{Role: "user", Content: prompt},
		types.Message{Role: "assistant", Content: resp.Content},
	)
	// Bound the transcript; old turns rarely matter for modeling.
	if len(s.history) > 20 {
		s.history = s.history[len(s.history)-20:]
	}

	return result, nil
}

// Execute runs a raw response body through extraction and dispatch
// without calling the LLM. Useful for replaying captured responses.
func (s *ChatService) Execute(body string) *ChatResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.execute(body, "")
}

func (s *ChatService) execute(body, prompt string) *ChatResult {
	result := &ChatResult{
		RequestID: types.GenerateRequestID(),
	}

	parsed := parser.Parse(body)
	result.Response = parsed.Message

	if parsed.ProviderError != "" {
		res := types.Errorf("%s", parsed.ProviderError)
		result.Result = &res
		result.Reply = res.Display()
		return result
	}

	cmd := parsed.Command
	if cmd == nil && prompt != "" {
		// The model answered in prose; fall back to reading the
		// intent straight out of the user's request.
		cmd = parser.Infer(prompt)
	}
	if cmd == nil {
		result.Reply = parsed.Message
		return result
	}

	result.Command = cmd
	res := s.dispatcher.Dispatch(cmd, s.modeling)
	result.Result = &res
	result.Reply = res.Display()

	s.log.Info("command executed",
		"request_id", result.RequestID,
		"type", cmd.Type,
		"status", string(res.Status))
	return result
}
