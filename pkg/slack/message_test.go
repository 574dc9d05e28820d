package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage(InvestigationStartedInput{
		RunID: "run-123",
		Query: "why is checkout latency elevated",
	}, "https://rootline.example.com")

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Investigation started")
	assert.Contains(t, section.Text.Text, "why is checkout latency elevated")
	assert.Contains(t, section.Text.Text, "https://rootline.example.com/investigations/run-123")
}

func TestBuildConcludedMessage_Completed(t *testing.T) {
	blocks := BuildConcludedMessage(InvestigationConcludedInput{
		RunID:            "run-123",
		Status:           "completed",
		RootCause:        "connection pool exhaustion in checkout-api",
		Confidence:       "high",
		AffectedServices: []string{"checkout-api", "payments"},
	}, "https://rootline.example.com")

	require.Len(t, blocks, 3)
	body := blocks[1].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, body, "connection pool exhaustion")
	assert.Contains(t, body, "confidence: high")
	assert.Contains(t, body, "checkout-api, payments")

	action, ok := blocks[2].(*goslack.ActionBlock)
	require.True(t, ok)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Full Investigation", btn.Text.Text)
	assert.Equal(t, "https://rootline.example.com/investigations/run-123", btn.URL)
}

func TestBuildConcludedMessage_NoRootCause(t *testing.T) {
	blocks := BuildConcludedMessage(InvestigationConcludedInput{
		RunID:  "run-123",
		Status: "completed",
	}, "https://rootline.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, header, "Root cause: not determined")
}

func TestBuildConcludedMessage_Failed(t *testing.T) {
	blocks := BuildConcludedMessage(InvestigationConcludedInput{
		RunID:        "run-123",
		Status:       "failed",
		ErrorMessage: "llm transport unavailable",
	}, "https://rootline.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, header, "Investigation Failed")
	assert.Contains(t, header, "llm transport unavailable")

	btn := blocks[1].(*goslack.ActionBlock).Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestTruncateForSlack(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("a", maxBlockTextLength+100)
	truncated := truncateForSlack(long)
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "truncated")
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Incident PD-12345 Triggered", "incident pd-12345 triggered"},
		{"collapse whitespace", "pd-12345\t\thigh\n\nlatency", "pd-12345 high latency"},
		{"trim", "  pd-12345  ", "pd-12345"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	msg := goslack.Message{
		Msg: goslack.Msg{
			Text: "alert fired",
			Attachments: []goslack.Attachment{
				{Text: "PD-12345 checkout-api", Fallback: "incident PD-12345"},
			},
		},
	}
	text := collectMessageText(msg)
	assert.Contains(t, text, "alert fired")
	assert.Contains(t, text, "PD-12345 checkout-api")
	assert.Contains(t, text, "incident PD-12345")
}
