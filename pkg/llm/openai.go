// Package llm provides agent.LLMClient adapters: an OpenAI-compatible
// client for direct provider access and a gRPC client for deployments
// that route model traffic through an inference gateway.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4o

// OpenAIConfig configures the OpenAI-compatible client. BaseURL covers
// self-hosted gateways that speak the same protocol.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// OpenAIClient adapts the OpenAI chat API to agent.LLMClient and
// agent.StreamingLLMClient.
type OpenAIClient struct {
	api *openai.Client
	cfg OpenAIConfig
}

// NewOpenAI creates a client. The API key may be empty for gateways that
// authenticate by network position.
func NewOpenAI(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{api: openai.NewClientWithConfig(clientCfg), cfg: cfg}
}

// Chat sends one structured request and returns the model's reply,
// including any proposed tool calls.
func (c *OpenAIClient) Chat(ctx context.Context, req *agent.ChatRequest) (*agent.ChatResponse, error) {
	resp, err := c.api.CreateChatCompletion(ctx, c.completionRequest(req, false))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	out := &agent.ChatResponse{Content: choice.Message.Content}
	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, toolCallFromOpenAI(tc.ID, tc.Function.Name, tc.Function.Arguments))
	}
	return out, nil
}

// ChatStream streams the reply as chunks. Tool-call deltas are accumulated
// and emitted whole once the stream ends; partial tool JSON is useless to
// callers.
func (c *OpenAIClient) ChatStream(ctx context.Context, req *agent.ChatRequest) (<-chan agent.Chunk, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, c.completionRequest(req, true))
	if err != nil {
		return nil, fmt.Errorf("chat completion stream failed: %w", err)
	}

	chunks := make(chan agent.Chunk, 16)
	go func() {
		defer close(chunks)
		defer stream.Close()

		type partialCall struct {
			id   string
			name string
			args strings.Builder
		}
		var calls []*partialCall

		emit := func(chunk agent.Chunk) bool {
			select {
			case chunks <- chunk:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				emit(agent.Chunk{Type: agent.ChunkDone, Err: fmt.Errorf("stream error: %w", err)})
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta
			if delta.Content != "" {
				if !emit(agent.Chunk{Type: agent.ChunkText, Text: delta.Content}) {
					return
				}
			}
			for _, tc := range delta.ToolCalls {
				idx := 0
				if tc.Index != nil {
					idx = *tc.Index
				}
				for len(calls) <= idx {
					calls = append(calls, &partialCall{})
				}
				if tc.ID != "" {
					calls[idx].id = tc.ID
				}
				if tc.Function.Name != "" {
					calls[idx].name = tc.Function.Name
				}
				calls[idx].args.WriteString(tc.Function.Arguments)
			}
		}

		for _, pc := range calls {
			call := toolCallFromOpenAI(pc.id, pc.name, pc.args.String())
			if !emit(agent.Chunk{Type: agent.ChunkToolCall, ToolCall: &call}) {
				return
			}
		}
		emit(agent.Chunk{Type: agent.ChunkDone})
	}()
	return chunks, nil
}

func (c *OpenAIClient) completionRequest(req *agent.ChatRequest, stream bool) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Stream:      stream,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Tools: toOpenAITools(req.Tools),
	}
	return out
}

// toOpenAITools converts tool definitions to the OpenAI function format.
func toOpenAITools(defs []agent.Definition) []openai.Tool {
	if len(defs) == 0 {
		return nil
	}
	tools := make([]openai.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  SchemaToJSONSchema(def.Schema),
			},
		})
	}
	return tools
}

// SchemaToJSONSchema renders a tool schema as a JSON Schema object, the
// parameter format both the OpenAI API and the gateway protocol expect.
func SchemaToJSONSchema(schema agent.ToolSchema) map[string]any {
	properties := make(map[string]any, len(schema.Params))
	for name, spec := range schema.Params {
		prop := map[string]any{"type": string(spec.Type)}
		if spec.Description != "" {
			prop["description"] = spec.Description
		}
		if len(spec.Enum) > 0 {
			prop["enum"] = spec.Enum
		}
		properties[name] = prop
	}
	out := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(schema.Required) > 0 {
		out["required"] = schema.Required
	}
	return out
}

// toolCallFromOpenAI decodes a proposed call. Malformed argument JSON is
// preserved raw under "input" rather than dropped; the error surfaces at
// execution where the tool can report it.
func toolCallFromOpenAI(id, name, arguments string) agent.ToolCall {
	call := agent.ToolCall{ID: id, Name: name, Args: map[string]any{}}
	trimmed := strings.TrimSpace(arguments)
	if trimmed == "" {
		return call
	}
	if err := json.Unmarshal([]byte(trimmed), &call.Args); err != nil {
		call.Args = map[string]any{"input": trimmed}
	}
	return call
}
