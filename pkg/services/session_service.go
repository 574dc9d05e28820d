package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rootline-ai/rootline/ent"
	"github.com/rootline-ai/rootline/ent/investigationsession"
	"github.com/rootline-ai/rootline/pkg/models"
)

// SessionService persists investigation sessions. All writes happen on the
// queue worker goroutine that owns the run; reads come from API handlers.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a session service.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateParams describes a new session record.
type CreateParams struct {
	ID                  string
	Query               string
	IncidentID          string
	Mode                investigationsession.Mode
	ScratchpadSessionID string
}

// Create inserts a pending session.
func (s *SessionService) Create(ctx context.Context, p CreateParams) (*ent.InvestigationSession, error) {
	if p.ID == "" {
		return nil, &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if p.Query == "" {
		return nil, &ValidationError{Field: "query", Message: "must not be empty"}
	}
	mode := p.Mode
	if mode == "" {
		mode = investigationsession.ModeInvestigation
	}

	created, err := s.client.InvestigationSession.Create().
		SetID(p.ID).
		SetQuery(p.Query).
		SetIncidentID(p.IncidentID).
		SetMode(mode).
		SetStatus(investigationsession.StatusPending).
		SetScratchpadSessionID(p.ScratchpadSessionID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

// MarkRunning records that a worker picked the session up.
func (s *SessionService) MarkRunning(ctx context.Context, id string) error {
	err := s.client.InvestigationSession.UpdateOneID(id).
		SetStatus(investigationsession.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	return translateNotFound(err)
}

// CompleteInvestigation stores the terminal result of an incident
// investigation, including the full serialized state for drill-down.
func (s *SessionService) CompleteInvestigation(ctx context.Context, id string, result *models.InvestigationResult, state *models.InvestigationState) error {
	update := s.client.InvestigationSession.UpdateOneID(id).
		SetStatus(investigationsession.StatusCompleted).
		SetCompletedAt(time.Now())

	if result != nil {
		update = update.
			SetRootCause(result.RootCause).
			SetConfidence(string(result.Confidence)).
			SetAffectedServices(result.AffectedServices).
			SetSummary(result.Summary).
			SetDurationMs(result.DurationMs)
	}
	if state != nil {
		stateMap, err := toMap(state)
		if err != nil {
			return fmt.Errorf("serialize state: %w", err)
		}
		update = update.SetState(stateMap)
	}

	return translateNotFound(update.Exec(ctx))
}

// CompleteAssistant stores the terminal answer of a free-form run.
func (s *SessionService) CompleteAssistant(ctx context.Context, id, answer string, durationMs int64) error {
	err := s.client.InvestigationSession.UpdateOneID(id).
		SetStatus(investigationsession.StatusCompleted).
		SetAnswer(answer).
		SetDurationMs(durationMs).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	return translateNotFound(err)
}

// Fail marks the session failed with a diagnostic message.
func (s *SessionService) Fail(ctx context.Context, id, message string) error {
	err := s.client.InvestigationSession.UpdateOneID(id).
		SetStatus(investigationsession.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	return translateNotFound(err)
}

// Cancel marks a non-terminal session cancelled. Terminal sessions return
// ErrNotCancellable.
func (s *SessionService) Cancel(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	switch current.Status {
	case investigationsession.StatusPending, investigationsession.StatusRunning:
	default:
		return ErrNotCancellable
	}

	err = s.client.InvestigationSession.UpdateOneID(id).
		SetStatus(investigationsession.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	return translateNotFound(err)
}

// Get fetches one session.
func (s *SessionService) Get(ctx context.Context, id string) (*ent.InvestigationSession, error) {
	found, err := s.client.InvestigationSession.Get(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return found, nil
}

// ListParams filters List. A zero Limit returns up to 50 rows.
type ListParams struct {
	Status     string
	IncidentID string
	Limit      int
	Offset     int
}

// List returns sessions newest first.
func (s *SessionService) List(ctx context.Context, p ListParams) ([]*ent.InvestigationSession, error) {
	limit := p.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := s.client.InvestigationSession.Query().
		Order(ent.Desc(investigationsession.FieldCreatedAt)).
		Limit(limit).
		Offset(p.Offset)
	if p.Status != "" {
		q = q.Where(investigationsession.StatusEQ(investigationsession.Status(p.Status)))
	}
	if p.IncidentID != "" {
		q = q.Where(investigationsession.IncidentIDEQ(p.IncidentID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return rows, nil
}

// DeleteOlderThan removes terminal sessions completed before the cutoff.
// Used by the retention service.
func (s *SessionService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.InvestigationSession.Delete().
		Where(
			investigationsession.StatusIn(
				investigationsession.StatusCompleted,
				investigationsession.StatusFailed,
				investigationsession.StatusCancelled,
			),
			investigationsession.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete old sessions: %w", err)
	}
	return n, nil
}

func translateNotFound(err error) error {
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func toMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
