package api

import (
	"time"

	"github.com/rootline-ai/rootline/ent"
	"github.com/rootline-ai/rootline/pkg/models"
	"github.com/rootline-ai/rootline/pkg/session"
)

// sessionResponse is the unified view of an investigation, whether it is
// live in memory or read back from the database.
type sessionResponse struct {
	ID               string                      `json:"id"`
	Query            string                      `json:"query"`
	IncidentID       string                      `json:"incidentId,omitempty"`
	Mode             string                      `json:"mode"`
	Status           string                      `json:"status"`
	Live             bool                        `json:"live"`
	CreatedAt        time.Time                   `json:"createdAt"`
	CompletedAt      *time.Time                  `json:"completedAt,omitempty"`
	Error            string                      `json:"error,omitempty"`
	Result           *models.InvestigationResult `json:"result,omitempty"`
	Answer           string                      `json:"answer,omitempty"`
	State            map[string]any              `json:"state,omitempty"`
	RootCause        string                      `json:"rootCause,omitempty"`
	Confidence       string                      `json:"confidence,omitempty"`
	AffectedServices []string                    `json:"affectedServices,omitempty"`
	Summary          string                      `json:"summary,omitempty"`
	DurationMs       int64                       `json:"durationMs,omitempty"`
}

func fromView(v session.View) sessionResponse {
	resp := sessionResponse{
		ID:         v.ID,
		Query:      v.Query,
		IncidentID: v.IncidentID,
		Mode:       string(v.Mode),
		Status:     string(v.Status),
		Live:       true,
		CreatedAt:  v.CreatedAt,
		Error:      v.Error,
		Result:     v.Result,
		Answer:     v.Answer,
	}
	if v.Result != nil {
		resp.RootCause = v.Result.RootCause
		resp.Confidence = string(v.Result.Confidence)
		resp.AffectedServices = v.Result.AffectedServices
		resp.Summary = v.Result.Summary
		resp.DurationMs = v.Result.DurationMs
	}
	return resp
}

func fromRow(row *ent.InvestigationSession) sessionResponse {
	resp := sessionResponse{
		ID:               row.ID,
		Query:            row.Query,
		IncidentID:       row.IncidentID,
		Mode:             string(row.Mode),
		Status:           string(row.Status),
		CreatedAt:        row.CreatedAt,
		CompletedAt:      row.CompletedAt,
		Confidence:       row.Confidence,
		AffectedServices: row.AffectedServices,
		State:            row.State,
		DurationMs:       row.DurationMs,
	}
	if row.RootCause != nil {
		resp.RootCause = *row.RootCause
	}
	if row.Summary != nil {
		resp.Summary = *row.Summary
	}
	if row.Answer != nil {
		resp.Answer = *row.Answer
	}
	if row.ErrorMessage != nil {
		resp.Error = *row.ErrorMessage
	}
	return resp
}
