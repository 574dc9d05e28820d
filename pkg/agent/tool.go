// Package agent defines the ports the investigation engine is driven
// through: tools, the LLM client, and the shared call/result types. Concrete
// observability and cloud tools live outside this repository and are plugged
// in through the Tool interface; pkg/llm provides LLMClient adapters.
package agent

import (
	"context"
	"fmt"
)

// ParamType is the declared type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
	ParamObject  ParamType = "object"
	ParamArray   ParamType = "array"
)

// ParamSpec describes one tool parameter.
type ParamSpec struct {
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
}

// ToolSchema describes a tool's parameters: names, types, and which are
// required. Kept as explicit data (not reflection) so the planner can
// type-check queries at registration time.
type ToolSchema struct {
	Params   map[string]ParamSpec `json:"params"`
	Required []string             `json:"required,omitempty"`
}

// Tool is an abstract operation with typed parameters. Execute must be safe
// to invoke concurrently with distinct argument sets, may block on I/O, and
// returns errors rather than panicking. Implementations honor ctx at every
// suspension point.
type Tool interface {
	Name() string
	Description() string
	Schema() ToolSchema
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// Definition is the tool description handed to the LLM.
type Definition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Schema      ToolSchema `json:"schema"`
}

// Define returns the Definition for a tool.
func Define(t Tool) Definition {
	return Definition{Name: t.Name(), Description: t.Description(), Schema: t.Schema()}
}

// ToolCall is an LLM-proposed (or planner-produced) tool invocation.
// Proposals are not executed by the LLM client — execution is always the
// caller's responsibility.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ToolFunc adapts a plain function into a Tool.
type ToolFunc struct {
	ToolName string
	ToolDesc string
	ToolSpec ToolSchema
	Fn       func(ctx context.Context, args map[string]any) (any, error)
}

func (t *ToolFunc) Name() string        { return t.ToolName }
func (t *ToolFunc) Description() string { return t.ToolDesc }
func (t *ToolFunc) Schema() ToolSchema  { return t.ToolSpec }

func (t *ToolFunc) Execute(ctx context.Context, args map[string]any) (any, error) {
	if t.Fn == nil {
		return nil, fmt.Errorf("tool %q has no implementation", t.ToolName)
	}
	return t.Fn(ctx, args)
}
