// Package database provides a ready-made *database.Client for integration
// tests, backed by the shared testcontainer from test/util.
package database

import (
	"testing"

	"github.com/rootline-ai/rootline/pkg/database"
	"github.com/rootline-ai/rootline/test/util"
)

// NewTestClient creates a database client bound to a fresh test schema.
// Cleanup is registered by the underlying fixture.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
