// Package slack posts investigation lifecycle notifications to a Slack
// channel. When the incident originated from a pager message in that
// channel, notifications are threaded under it by matching the incident id
// in recent history. Delivery is fail-open: a Slack outage never affects
// the investigation itself.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// InvestigationStartedInput carries the data for a start notification.
type InvestigationStartedInput struct {
	RunID      string
	Query      string
	IncidentID string
}

// InvestigationConcludedInput carries the data for a terminal notification.
type InvestigationConcludedInput struct {
	RunID            string
	IncidentID       string
	Status           string // completed, failed, cancelled
	RootCause        string
	Confidence       string // high, medium, low
	AffectedServices []string
	Summary          string
	ErrorMessage     string
	ThreadTS         string // cached from the start notification
}

// Service delivers investigation notifications.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a notification service. Returns nil when Token or
// Channel is empty, which disables notifications everywhere.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing against a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack"),
	}
}

// NotifyInvestigationStarted posts an "investigation started" message.
// When the incident id matches a recent pager message in the channel, the
// notification threads under it; the resolved thread timestamp is returned
// for reuse by the terminal notification.
func (s *Service) NotifyInvestigationStarted(ctx context.Context, input InvestigationStartedInput) string {
	if s == nil {
		return ""
	}

	threadTS := s.findThread(ctx, input.RunID, input.IncidentID)

	blocks := BuildStartedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("failed to send start notification",
			"run_id", input.RunID, "error", err)
	}
	return threadTS
}

// NotifyInvestigationConcluded posts a terminal status message.
func (s *Service) NotifyInvestigationConcluded(ctx context.Context, input InvestigationConcludedInput) {
	if s == nil {
		return
	}

	threadTS := input.ThreadTS
	if threadTS == "" {
		threadTS = s.findThread(ctx, input.RunID, input.IncidentID)
	}

	blocks := BuildConcludedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("failed to send terminal notification",
			"run_id", input.RunID, "status", input.Status, "error", err)
	}
}

func (s *Service) findThread(ctx context.Context, runID, incidentID string) string {
	if incidentID == "" {
		return ""
	}
	threadTS, err := s.client.FindMessageByFingerprint(ctx, incidentID)
	if err != nil {
		s.logger.Warn("failed to find pager thread for incident",
			"run_id", runID, "incident_id", incidentID, "error", err)
	}
	return threadTS
}
