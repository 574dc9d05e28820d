// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvestigationSessionsColumns holds the columns for the "investigation_sessions" table.
	InvestigationSessionsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"investigation", "assistant"}, Default: "investigation"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "root_cause", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeString, Nullable: true},
		{Name: "affected_services", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "scratchpad_session_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// InvestigationSessionsTable holds the schema information for the "investigation_sessions" table.
	InvestigationSessionsTable = &schema.Table{
		Name:       "investigation_sessions",
		Columns:    InvestigationSessionsColumns,
		PrimaryKey: []*schema.Column{InvestigationSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "investigationsession_status",
				Unique:  false,
				Columns: []*schema.Column{InvestigationSessionsColumns[4]},
			},
			{
				Name:    "investigationsession_incident_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationSessionsColumns[2]},
			},
			{
				Name:    "investigationsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationSessionsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvestigationSessionsTable,
	}
)

func init() {
}
