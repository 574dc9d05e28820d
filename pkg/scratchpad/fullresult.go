package scratchpad

import (
	"context"
	"fmt"
	"sync"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// FullResultToolName is the tool the LLM calls to retrieve a stored result
// body by its result ID.
const FullResultToolName = "get_full_result"

// FullResultTool exposes the result arena to the LLM for drill-down. It
// reads from a frozen snapshot installed by the coordinator before each
// iteration, so parallel batch execution never races arena mutation.
type FullResultTool struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewFullResultTool creates the tool with no snapshot installed. Install
// must be called before the tool is offered to the LLM.
func NewFullResultTool() *FullResultTool {
	return &FullResultTool{}
}

// Install replaces the snapshot the tool reads from.
func (t *FullResultTool) Install(snap *Snapshot) {
	t.mu.Lock()
	t.snap = snap
	t.mu.Unlock()
}

func (t *FullResultTool) Name() string { return FullResultToolName }

func (t *FullResultTool) Description() string {
	return "Retrieve the full body of a previously summarized or cleared tool result by its resultId."
}

func (t *FullResultTool) Schema() agent.ToolSchema {
	return agent.ToolSchema{
		Params: map[string]agent.ParamSpec{
			"resultId": {
				Type:        agent.ParamString,
				Description: "The resultId shown in the tool-result context, e.g. logs-3fa2b91c.",
			},
		},
		Required: []string{"resultId"},
	}
}

func (t *FullResultTool) Execute(_ context.Context, args map[string]any) (any, error) {
	id, _ := args["resultId"].(string)
	if id == "" {
		return nil, fmt.Errorf("resultId is required")
	}

	t.mu.RLock()
	snap := t.snap
	t.mu.RUnlock()
	if snap == nil {
		return nil, fmt.Errorf("no results are available yet")
	}

	tr, ok := snap.Result(id)
	if !ok {
		return nil, fmt.Errorf("unknown resultId %q", id)
	}
	return map[string]any{
		"resultId": tr.ResultID,
		"tool":     tr.Tool,
		"result":   tr.Full,
	}, nil
}
