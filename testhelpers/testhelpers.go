// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"curtainquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestPriceRecord saves one price table row and returns it.
func CreateTestPriceRecord(t *testing.T, app *pocketbase.PocketBase, category, system, code1, code2 string, widthMin, widthMax, heightMin, heightMax, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_records")
	if err != nil {
		t.Fatalf("failed to find price_records collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("category", category)
	record.Set("system", system)
	record.Set("code1", code1)
	record.Set("code2", code2)
	record.Set("width_min", widthMin)
	record.Set("width_max", widthMax)
	record.Set("height_min", heightMin)
	record.Set("height_max", heightMax)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test price record: %v", err)
	}

	return record
}

// CreateTestCustomer creates a customer record with the given name and
// returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "555-0100")
	record.Set("address", "12 Main St")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}
