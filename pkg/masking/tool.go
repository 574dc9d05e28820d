package masking

import (
	"context"

	"github.com/rootline-ai/rootline/pkg/agent"
)

// maskedTool decorates a Tool so its results are scrubbed before the
// engine sees them. Errors pass through unmasked — they come from the
// tool itself, not from monitored systems.
type maskedTool struct {
	agent.Tool
	svc *Service
}

func (t *maskedTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	result, err := t.Tool.Execute(ctx, args)
	if err != nil {
		return result, err
	}
	return t.svc.MaskValue(result), nil
}

// WrapTool returns a masking decorator around the tool. A disabled
// service returns the tool unchanged.
func WrapTool(t agent.Tool, svc *Service) agent.Tool {
	if svc == nil || !svc.Enabled() {
		return t
	}
	return &maskedTool{Tool: t, svc: svc}
}

// WrapRegistry builds a new registry whose tools all mask their results.
func WrapRegistry(reg *agent.Registry, svc *Service) *agent.Registry {
	if svc == nil || !svc.Enabled() {
		return reg
	}
	out := agent.NewRegistry()
	for _, name := range reg.Names() {
		t, err := reg.Get(name)
		if err != nil {
			continue
		}
		out.Register(WrapTool(t, svc))
	}
	return out
}
