package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InvestigationSession holds the schema definition for one persisted
// investigation: the request that created it, its terminal outcome, and
// the full serialized state for drill-down from the API.
type InvestigationSession struct {
	ent.Schema
}

// Fields of the InvestigationSession.
func (InvestigationSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.Text("query").
			Comment("User query that started the investigation"),
		field.String("incident_id").
			Optional().
			Comment("External paging-system incident identifier"),
		field.Enum("mode").
			Values("investigation", "assistant").
			Default("investigation"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Text("root_cause").
			Optional().
			Nillable(),
		field.String("confidence").
			Optional().
			Comment("high, medium, or low"),
		field.JSON("affected_services", []string{}).
			Optional(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Text("answer").
			Optional().
			Nillable().
			Comment("Final answer text for assistant-mode runs"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Full serialized investigation state"),
		field.String("scratchpad_session_id").
			Optional().
			Comment("NDJSON session file name for audit drill-down"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the InvestigationSession.
func (InvestigationSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("incident_id"),
		index.Fields("created_at"),
	}
}
