// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/collections"
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

// CreateTestCustomer creates a customer record and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, firstName, lastName, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("first_name", firstName)
	record.Set("last_name", lastName)
	record.Set("email", email)
	record.Set("phone", "555-0100")
	record.Set("address", "12 Test Lane")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestStaff creates a staff record and returns it.
func CreateTestStaff(t *testing.T, app *pocketbase.PocketBase, name, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		t.Fatalf("failed to find staff collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test staff: %v", err)
	}

	return record
}

// CreateTestLead creates a lead for a customer and returns it.
func CreateTestLead(t *testing.T, app *pocketbase.PocketBase, customerID, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		t.Fatalf("failed to find leads collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("source", "website")
	record.Set("status", status)
	record.Set("priority", "medium")
	record.Set("description", "Backyard refresh")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test lead: %v", err)
	}

	return record
}

// CreateTestDesignProject creates a design project for a customer.
func CreateTestDesignProject(t *testing.T, app *pocketbase.PocketBase, customerID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("design_projects")
	if err != nil {
		t.Fatalf("failed to find design_projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("title", title)
	record.Set("status", "needs_estimate")
	record.Set("project_type", "residential")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test design project: %v", err)
	}

	return record
}

// CreateTestEstimate creates a draft estimate for a design project.
func CreateTestEstimate(t *testing.T, app *pocketbase.PocketBase, projectID, number string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("failed to find estimates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("design_project", projectID)
	record.Set("number", number)
	record.Set("status", "draft")
	record.Set("markup_percent", 25.0)
	record.Set("tax_percent", 8.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test estimate: %v", err)
	}

	return record
}

// CreateTestLineItem creates a line item on an estimate.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, estimateID, description string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimate_line_items")
	if err != nil {
		t.Fatalf("failed to find estimate_line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("category", "plants")
	record.Set("description", description)
	record.Set("quantity", quantity)
	record.Set("unit", "each")
	record.Set("unit_price", unitPrice)
	record.Set("total", quantity*unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}

	return record
}

// CreateTestIssue creates a nursery issue and returns it.
func CreateTestIssue(t *testing.T, app *pocketbase.PocketBase, title, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("nursery_issues")
	if err != nil {
		t.Fatalf("failed to find nursery_issues collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("type", "pest")
	record.Set("priority", "high")
	record.Set("status", status)
	record.Set("location", "Greenhouse 2")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test issue: %v", err)
	}

	return record
}

// CreateTestBlueSheet creates a blue sheet for a customer and designer.
func CreateTestBlueSheet(t *testing.T, app *pocketbase.PocketBase, customerID, designerID, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("blue_sheets")
	if err != nil {
		t.Fatalf("failed to find blue_sheets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("designer", designerID)
	record.Set("status", status)
	record.Set("priority", "medium")
	record.Set("project_type", "residential")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test blue sheet: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with
// the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
