package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
)

func TestSchemaToJSONSchema(t *testing.T) {
	schema := agent.ToolSchema{
		Params: map[string]agent.ParamSpec{
			"service": {Type: agent.ParamString, Description: "service name"},
			"state":   {Type: agent.ParamString, Enum: []string{"ALARM", "OK"}},
			"limit":   {Type: agent.ParamNumber},
		},
		Required: []string{"service"},
	}

	out := SchemaToJSONSchema(schema)
	assert.Equal(t, "object", out["type"])
	assert.Equal(t, []string{"service"}, out["required"])

	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	service := props["service"].(map[string]any)
	assert.Equal(t, "string", service["type"])
	assert.Equal(t, "service name", service["description"])
	state := props["state"].(map[string]any)
	assert.Equal(t, []string{"ALARM", "OK"}, state["enum"])
}

func TestSchemaToJSONSchemaEmpty(t *testing.T) {
	out := SchemaToJSONSchema(agent.ToolSchema{})
	assert.Equal(t, "object", out["type"])
	assert.NotContains(t, out, "required")
}

func TestToolCallFromOpenAI(t *testing.T) {
	call := toolCallFromOpenAI("c1", "logs-query", `{"filter": "ERROR", "limit": 50}`)
	assert.Equal(t, "c1", call.ID)
	assert.Equal(t, "logs-query", call.Name)
	assert.Equal(t, "ERROR", call.Args["filter"])
	assert.Equal(t, 50.0, call.Args["limit"])
}

func TestToolCallFromOpenAIMalformedArgs(t *testing.T) {
	call := toolCallFromOpenAI("c1", "logs-query", `filter=ERROR`)
	assert.Equal(t, map[string]any{"input": "filter=ERROR"}, call.Args)

	call = toolCallFromOpenAI("c2", "inventory", "")
	assert.Empty(t, call.Args)
}

func TestToOpenAIToolsPreservesOrderAndNames(t *testing.T) {
	reg := agent.NewRegistry()
	reg.Register(&agent.ToolFunc{ToolName: "metrics-query", ToolDesc: "query metrics"})
	reg.Register(&agent.ToolFunc{ToolName: "logs-query", ToolDesc: "query logs"})

	tools := toOpenAITools(reg.Definitions())
	require.Len(t, tools, 2)
	assert.Equal(t, "logs-query", tools[0].Function.Name)
	assert.Equal(t, "metrics-query", tools[1].Function.Name)
	assert.Nil(t, toOpenAITools(nil))
}
