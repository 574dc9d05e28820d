package masking

import "log/slog"

// Config selects the active rule set.
type Config struct {
	Enabled      bool
	PatternGroup string
	Custom       []Pattern
}

// Service applies the configured masking rules. Stateless beyond the
// compiled patterns; safe for concurrent use.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService compiles the configured rule set. With Enabled false the
// service passes everything through untouched.
func NewService(cfg Config) *Service {
	s := &Service{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return s
	}
	group := cfg.PatternGroup
	if group == "" {
		group = "secrets"
	}
	s.patterns = compileGroup(group, cfg.Custom)
	slog.Info("masking service initialized", "group", group, "patterns", len(s.patterns))
	return s
}

// Enabled reports whether masking is active.
func (s *Service) Enabled() bool {
	return s.enabled && len(s.patterns) > 0
}

// MaskString applies every rule to the text.
func (s *Service) MaskString(text string) string {
	if !s.Enabled() || text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskValue walks a decoded JSON value and masks every string in it.
// Non-container, non-string values pass through unchanged.
func (s *Service) MaskValue(v any) any {
	if !s.Enabled() {
		return v
	}
	switch val := v.(type) {
	case string:
		return s.MaskString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = s.MaskValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.MaskValue(item)
		}
		return out
	default:
		return v
	}
}
