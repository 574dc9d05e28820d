package prompt

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls the first JSON document out of LLM output. It accepts
// fenced code blocks (with or without a language tag), raw objects or
// arrays embedded in prose, and bare JSON. Returns an error when no
// balanced document is found.
func ExtractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	// Prefer fenced blocks: the model was asked for JSON, so a fence almost
	// always wraps the payload.
	if block := fencedBlock(content); block != "" {
		if doc := balancedDocument(block); doc != "" {
			return doc, nil
		}
	}
	if doc := balancedDocument(content); doc != "" {
		return doc, nil
	}
	return "", fmt.Errorf("no JSON document found in response")
}

// fencedBlock returns the contents of the first ``` fence, or "".
func fencedBlock(content string) string {
	start := strings.Index(content, "```")
	if start < 0 {
		return ""
	}
	rest := content[start+3:]
	// Skip the language tag line, if any.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{[") {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// balancedDocument scans for the first '{' or '[' and returns the balanced
// document starting there, honoring string literals and escapes.
func balancedDocument(content string) string {
	start := strings.IndexAny(content, "{[")
	if start < 0 {
		return ""
	}
	open := content[start]
	closer := byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == open:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return ""
}
