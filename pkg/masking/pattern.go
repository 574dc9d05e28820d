// Package masking scrubs credentials from tool results before they reach
// the scratchpad, the LLM, or the event stream. Observability tools echo
// whatever the monitored systems log — connection strings, tokens pasted
// into error messages, key material in dumped configuration — so results
// pass through a pattern scrubber on their way into the engine.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is one masking rule: a regex and its replacement text.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern is a Pattern with its regex compiled.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are the rules shipped with the engine. Replacements keep
// the key name visible where the rule captures one, so investigators can
// still tell what kind of secret was present.
var builtinPatterns = []Pattern{
	{
		Name:        "api_key",
		Pattern:     `(?i)\b(api[_-]?key|apikey|x-api-key)\b["'\s:=]+[A-Za-z0-9_\-]{16,}`,
		Replacement: `${1}=***MASKED_API_KEY***`,
		Description: "API key assignments in config dumps and logs",
	},
	{
		Name:        "password",
		Pattern:     `(?i)\b(password|passwd|pwd)\b["'\s:=]+[^\s"',;]+`,
		Replacement: `${1}=***MASKED_PASSWORD***`,
		Description: "Password assignments",
	},
	{
		Name:        "bearer_token",
		Pattern:     `(?i)\bbearer\s+[A-Za-z0-9\-._~+/]{16,}=*`,
		Replacement: `Bearer ***MASKED_TOKEN***`,
		Description: "HTTP bearer tokens in request/response logs",
	},
	{
		Name:        "aws_access_key",
		Pattern:     `\b(AKIA|ASIA)[0-9A-Z]{16}\b`,
		Replacement: `***MASKED_AWS_ACCESS_KEY***`,
		Description: "AWS access key IDs",
	},
	{
		Name:        "aws_secret_key",
		Pattern:     `(?i)\baws_secret_access_key\b["'\s:=]+[A-Za-z0-9/+=]{40}`,
		Replacement: `aws_secret_access_key=***MASKED_AWS_SECRET***`,
		Description: "AWS secret access keys",
	},
	{
		Name:        "github_token",
		Pattern:     `\bgh[pousr]_[A-Za-z0-9]{36,}\b`,
		Replacement: `***MASKED_GITHUB_TOKEN***`,
		Description: "GitHub personal access and app tokens",
	},
	{
		Name:        "url_credentials",
		Pattern:     `([a-zA-Z][a-zA-Z0-9+.-]*://)[^/\s:@]+:[^/\s@]+@`,
		Replacement: `${1}***:***@`,
		Description: "Credentials embedded in connection URLs",
	},
	{
		Name:        "slack_webhook",
		Pattern:     `https://hooks\.slack\.com/services/[A-Za-z0-9/]+`,
		Replacement: `https://hooks.slack.com/services/***MASKED***`,
		Description: "Slack incoming-webhook URLs",
	},
	{
		Name:        "private_key",
		Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		Replacement: `***MASKED_PRIVATE_KEY***`,
		Description: "PEM private key blocks",
	},
}

// patternGroups name the rule sets selectable via configuration.
var patternGroups = map[string][]string{
	"credentials": {"api_key", "password", "url_credentials"},
	"tokens":      {"bearer_token", "aws_access_key", "aws_secret_key", "github_token", "slack_webhook"},
	"secrets": {
		"api_key", "password", "bearer_token", "aws_access_key", "aws_secret_key",
		"github_token", "url_credentials", "slack_webhook", "private_key",
	},
}

// KnownGroup reports whether a pattern-group name is recognized.
func KnownGroup(name string) bool {
	_, ok := patternGroups[name]
	return ok
}

// compileGroup resolves a group name into compiled patterns, then appends
// custom rules. Invalid regexes are logged and skipped, never fatal.
func compileGroup(group string, custom []Pattern) []*CompiledPattern {
	names, ok := patternGroups[group]
	if !ok {
		names = patternGroups["secrets"]
	}

	byName := make(map[string]Pattern, len(builtinPatterns))
	for _, p := range builtinPatterns {
		byName[p.Name] = p
	}

	var out []*CompiledPattern
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			continue
		}
		out = appendCompiled(out, p)
	}
	for _, p := range custom {
		out = appendCompiled(out, p)
	}
	return out
}

func appendCompiled(list []*CompiledPattern, p Pattern) []*CompiledPattern {
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		slog.Error("skipping invalid masking pattern", "pattern", p.Name, "error", err)
		return list
	}
	return append(list, &CompiledPattern{Name: p.Name, Regex: re, Replacement: p.Replacement})
}
