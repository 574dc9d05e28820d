// Package tokens provides approximate token counting and size-bounded
// truncation for tool output and prompt context assembly.
package tokens

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken is the approximate number of characters per token for
// English text. Used for threshold estimation only — not exact counting.
const charsPerToken = 4

// Estimate returns an approximate token count for the given text using the
// common ~4 characters per token heuristic. Deterministic and monotone in
// the input length, which is all the compaction thresholds need.
//
// len(text) counts bytes, not runes. Multi-byte UTF-8 content therefore
// overestimates — a safe direction, since compaction triggers slightly
// earlier than strictly necessary.
func Estimate(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken // round up
}

// Truncate cuts content to at most maxTokens estimated tokens, at the last
// newline before the limit so indented JSON, YAML, and log output keep
// logical line boundaries. The cut point is adjusted backwards so multi-byte
// UTF-8 characters are never split.
func Truncate(content string, maxTokens int, marker string) string {
	maxChars := maxTokens * charsPerToken
	if maxChars <= 0 || len(content) <= maxChars {
		return content
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: %s — original size: %s, limit: %s]",
		marker, formatSize(len(content)), formatSize(maxChars),
	)
}

// formatSize returns a human-readable size. Bytes under 1KB stay in bytes to
// avoid confusing "0KB" output on small content.
func formatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%dKB", bytes/1024)
}
