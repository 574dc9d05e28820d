package api

import (
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/session"
)

// createInvestigationRequest starts a run. Mode defaults to investigation;
// Overrides adjust engine settings for this run only.
type createInvestigationRequest struct {
	Query             string               `json:"query" binding:"required"`
	IncidentID        string               `json:"incidentId"`
	AdditionalContext string               `json:"additionalContext"`
	Mode              session.Mode         `json:"mode"`
	Overrides         *config.RunOverrides `json:"overrides"`
}

// listQuery filters the session listing.
type listQuery struct {
	Status     string `form:"status"`
	IncidentID string `form:"incidentId"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}
