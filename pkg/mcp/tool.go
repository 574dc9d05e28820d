package mcp

import (
	"context"
	"encoding/json"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// serverTool exposes one remote MCP tool through the agent.Tool port.
// The registered name is "<server>.<tool>" so two servers can carry tools
// with the same short name.
type serverTool struct {
	client *Client
	server string
	name   string
	desc   string
	schema agent.ToolSchema
}

func (t *serverTool) Name() string {
	return t.server + "." + t.name
}

func (t *serverTool) Description() string {
	if t.desc != "" {
		return t.desc
	}
	return "tool " + t.name + " on MCP server " + t.server
}

func (t *serverTool) Schema() agent.ToolSchema {
	return t.schema
}

func (t *serverTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	return t.client.CallTool(ctx, t.server, t.name, args)
}

// convertSchema translates a tool's JSON Schema into the engine's
// ToolSchema. The SDK hands the schema over as an opaque value; a marshal
// round-trip flattens it into the generic shape regardless of the concrete
// type. Anything that fails to translate degrades to an empty schema — the
// tool still works, the planner just cannot type-check its calls.
func convertSchema(raw any) agent.ToolSchema {
	if raw == nil {
		return agent.ToolSchema{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return agent.ToolSchema{}
	}

	var doc struct {
		Properties map[string]struct {
			Type        string `json:"type"`
			Description string `json:"description"`
			Enum        []any  `json:"enum"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(data, &doc); err != nil || len(doc.Properties) == 0 {
		return agent.ToolSchema{}
	}

	params := make(map[string]agent.ParamSpec, len(doc.Properties))
	for name, prop := range doc.Properties {
		spec := agent.ParamSpec{
			Type:        paramType(prop.Type),
			Description: prop.Description,
		}
		for _, v := range prop.Enum {
			if s, ok := v.(string); ok {
				spec.Enum = append(spec.Enum, s)
			}
		}
		params[name] = spec
	}
	return agent.ToolSchema{Params: params, Required: doc.Required}
}

func paramType(jsonType string) agent.ParamType {
	switch jsonType {
	case "number", "integer":
		return agent.ParamNumber
	case "boolean":
		return agent.ParamBoolean
	case "object":
		return agent.ParamObject
	case "array":
		return agent.ParamArray
	default:
		return agent.ParamString
	}
}
