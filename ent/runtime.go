// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rootline-ai/rootline/ent/investigationsession"
	"github.com/rootline-ai/rootline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	investigationsessionFields := schema.InvestigationSession{}.Fields()
	_ = investigationsessionFields
	// investigationsessionDescCreatedAt is the schema descriptor for created_at field.
	investigationsessionDescCreatedAt := investigationsessionFields[14].Descriptor()
	// investigationsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigationsession.DefaultCreatedAt = investigationsessionDescCreatedAt.Default.(func() time.Time)
}
