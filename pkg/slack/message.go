package slack

import (
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Investigation Complete",
	"failed":    "Investigation Failed",
	"cancelled": "Investigation Cancelled",
}

func runURL(runID, dashboardURL string) string {
	return fmt.Sprintf("%s/investigations/%s", dashboardURL, runID)
}

// BuildStartedMessage creates Block Kit blocks for a start notification.
func BuildStartedMessage(input InvestigationStartedInput, dashboardURL string) []goslack.Block {
	url := runURL(input.RunID, dashboardURL)
	text := fmt.Sprintf(":mag: *Investigation started* — %s\n<%s|Follow along in the dashboard>",
		input.Query, url)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildConcludedMessage creates Block Kit blocks for a terminal
// notification. A completed run shows the root cause and confidence; a
// failed or cancelled run shows the error.
func BuildConcludedMessage(input InvestigationConcludedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Investigation " + input.Status
	}

	var blocks []goslack.Block
	headerText := fmt.Sprintf("%s *%s*", emoji, label)

	switch {
	case input.Status == "completed" && input.RootCause != "":
		body := fmt.Sprintf("*Root cause:* %s", input.RootCause)
		if input.Confidence != "" {
			body += fmt.Sprintf(" _(confidence: %s)_", input.Confidence)
		}
		if len(input.AffectedServices) > 0 {
			body += "\n*Affected services:* " + strings.Join(input.AffectedServices, ", ")
		}
		if input.Summary != "" {
			body += "\n\n" + input.Summary
		}
		blocks = append(blocks,
			goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
				nil, nil),
			goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
				nil, nil),
		)

	case input.Status == "completed":
		headerText += "\n\nRoot cause: not determined"
		if input.Summary != "" {
			headerText += "\n" + truncateForSlack(input.Summary)
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil))

	default:
		if input.ErrorMessage != "" {
			headerText += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(input.ErrorMessage))
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil))
	}

	url := runURL(input.RunID, dashboardURL)
	buttonText := "View Full Investigation"
	if input.Status != "completed" {
		buttonText = "View Details"
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — view the full investigation in the dashboard)_"
}
