package e2e

import (
	"context"
	"sync"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// scriptedLLM replays a fixed response sequence in call order. Calls past
// the end of the script get an empty response, which both engines treat as
// an unparseable (or final) answer rather than an error.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []agent.ChatResponse
	calls     int
}

func (s *scriptedLLM) Chat(_ context.Context, _ *agent.ChatRequest) (*agent.ChatResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		return &agent.ChatResponse{}, nil
	}
	resp := s.responses[i]
	return &resp, nil
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// text builds a content-only scripted response.
func text(content string) agent.ChatResponse {
	return agent.ChatResponse{Content: content}
}

// toolCalls builds a scripted response proposing the given calls.
func toolCalls(calls ...agent.ToolCall) agent.ChatResponse {
	return agent.ChatResponse{ToolCalls: calls}
}
