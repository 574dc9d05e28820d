package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
)

func TestConvertSchema(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"service": map[string]any{
				"type":        "string",
				"description": "service name",
			},
			"limit": map[string]any{"type": "integer"},
			"level": map[string]any{
				"type": "string",
				"enum": []any{"info", "warn", "error"},
			},
		},
		"required": []any{"service"},
	}

	converted := convertSchema(schema)
	require.Len(t, converted.Params, 3)
	assert.Equal(t, agent.ParamString, converted.Params["service"].Type)
	assert.Equal(t, "service name", converted.Params["service"].Description)
	assert.Equal(t, agent.ParamNumber, converted.Params["limit"].Type)
	assert.Equal(t, []string{"info", "warn", "error"}, converted.Params["level"].Enum)
	assert.Equal(t, []string{"service"}, converted.Required)
}

func TestConvertSchemaDegradesGracefully(t *testing.T) {
	assert.Empty(t, convertSchema(nil).Params)
	assert.Empty(t, convertSchema("not a schema").Params)
	assert.Empty(t, convertSchema(map[string]any{"type": "object"}).Params)
}

func TestServerToolName(t *testing.T) {
	tool := &serverTool{server: "cloudwatch", name: "query_logs"}
	assert.Equal(t, "cloudwatch.query_logs", tool.Name())
	assert.Contains(t, tool.Description(), "query_logs")
}

func TestCreateTransportValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TransportConfig
	}{
		{"stdio without command", config.TransportConfig{Type: config.TransportTypeStdio}},
		{"http without url", config.TransportConfig{Type: config.TransportTypeHTTP}},
		{"sse without url", config.TransportConfig{Type: config.TransportTypeSSE}},
		{"unknown type", config.TransportConfig{Type: "carrier-pigeon"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := createTransport(tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestCallToolOnDisconnectedServer(t *testing.T) {
	client := NewClient(config.MCPConfig{}, nil)
	_, err := client.CallTool(t.Context(), "ghost", "anything", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}
