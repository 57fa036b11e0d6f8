package collections_test

import (
	"testing"

	"landscapedesk/collections"
	"landscapedesk/testhelpers"
)

func TestMigrateLegacyLeadStatuses_RewritesLegacyValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")

	// The legacy value fails select validation, so it has to be written
	// the way it would arrive from an old database: without validation.
	lead := testhelpers.CreateTestLead(t, app, customer.Id, "new")
	lead.Set("status", "consultation_needed")
	if err := app.SaveNoValidate(lead); err != nil {
		t.Fatalf("failed to store legacy status: %v", err)
	}

	if err := collections.MigrateLegacyLeadStatuses(app); err != nil {
		t.Fatalf("MigrateLegacyLeadStatuses() error: %v", err)
	}

	reloaded, err := app.FindRecordById("leads", lead.Id)
	if err != nil {
		t.Fatalf("failed to reload lead: %v", err)
	}
	if got := reloaded.GetString("status"); got != "contacted" {
		t.Errorf("expected legacy status to become 'contacted', got %q", got)
	}
}

func TestMigrateLegacyLeadStatuses_HyphenVariant(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")

	lead := testhelpers.CreateTestLead(t, app, customer.Id, "new")
	lead.Set("status", "consultation-needed")
	if err := app.SaveNoValidate(lead); err != nil {
		t.Fatalf("failed to store legacy status: %v", err)
	}

	if err := collections.MigrateLegacyLeadStatuses(app); err != nil {
		t.Fatalf("MigrateLegacyLeadStatuses() error: %v", err)
	}

	reloaded, _ := app.FindRecordById("leads", lead.Id)
	if got := reloaded.GetString("status"); got != "contacted" {
		t.Errorf("expected hyphenated legacy status to become 'contacted', got %q", got)
	}
}

func TestMigrateLegacyLeadStatuses_LeavesCanonicalAlone(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Priya", "Raman", "priya@example.com")
	lead := testhelpers.CreateTestLead(t, app, customer.Id, "qualified")

	if err := collections.MigrateLegacyLeadStatuses(app); err != nil {
		t.Fatalf("MigrateLegacyLeadStatuses() error: %v", err)
	}

	reloaded, _ := app.FindRecordById("leads", lead.Id)
	if got := reloaded.GetString("status"); got != "qualified" {
		t.Errorf("expected canonical status to survive migration, got %q", got)
	}
}

func TestMigrateLegacyLeadStatuses_EmptyDatabase(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.MigrateLegacyLeadStatuses(app); err != nil {
		t.Errorf("MigrateLegacyLeadStatuses() on empty database: %v", err)
	}
}
