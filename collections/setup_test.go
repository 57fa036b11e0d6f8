package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/collections"
	"landscapedesk/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"staff",
	"customers",
	"leads",
	"design_projects",
	"estimates",
	"estimate_line_items",
	"nursery_issues",
	"issue_comments",
	"blue_sheets",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_LeadsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("leads")

	fields := []string{
		"customer", "source", "status", "priority", "services",
		"description", "assigned_to", "last_contact", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("leads: missing field %q", f)
		}
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		expected := map[string]bool{
			"new": true, "assigned": true, "contacted": true,
			"qualified": true, "closed": true,
		}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected lead status value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing lead status value: %q", v)
		}
	} else {
		t.Error("leads.status is not a SelectField")
	}

	customerField := col.Fields.GetByName("customer")
	if rf, ok := customerField.(*core.RelationField); ok {
		if rf.MaxSelect != 1 {
			t.Errorf("leads.customer: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Error("leads.customer is not a RelationField")
	}
}

func TestSetup_EstimatesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("estimates")

	fields := []string{
		"design_project", "number", "status", "markup_percent", "tax_percent",
		"subtotal", "markup_amount", "tax_amount", "total", "expires",
		"document", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("estimates: missing field %q", f)
		}
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		if len(sf.Values) != 7 {
			t.Errorf("estimates.status: expected 7 values, got %d", len(sf.Values))
		}
	}
}

func TestSetup_EstimateNumberUnique(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Unique number check")
	testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0001")

	estimatesCol, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("estimates collection missing: %v", err)
	}
	dup := core.NewRecord(estimatesCol)
	dup.Set("design_project", project.Id)
	dup.Set("number", "EST-26-0001")
	dup.Set("status", "draft")

	if err := app.Save(dup); err == nil {
		t.Error("expected saving a duplicate estimate number to fail")
	}
}

func TestSetup_LineItemsCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Cascade check")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0001")
	item := testhelpers.CreateTestLineItem(t, app, estimate.Id, "Boxwood shrubs", 2, 10.00)

	if err := app.Delete(estimate); err != nil {
		t.Fatalf("failed to delete estimate: %v", err)
	}

	if _, err := app.FindRecordById("estimate_line_items", item.Id); err == nil {
		t.Error("line item should have been cascade-deleted with the estimate")
	}
}

func TestSetup_IssueCommentsCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	issue := testhelpers.CreateTestIssue(t, app, "Aphids on roses", "open")

	commentsCol, err := app.FindCollectionByNameOrId("issue_comments")
	if err != nil {
		t.Fatalf("issue_comments collection missing: %v", err)
	}
	comment := core.NewRecord(commentsCol)
	comment.Set("issue", issue.Id)
	comment.Set("author", "Sam")
	comment.Set("body", "Sprayed neem oil this morning")
	if err := app.Save(comment); err != nil {
		t.Fatalf("failed to save comment: %v", err)
	}

	if err := app.Delete(issue); err != nil {
		t.Fatalf("failed to delete issue: %v", err)
	}

	if _, err := app.FindRecordById("issue_comments", comment.Id); err == nil {
		t.Error("comment should have been cascade-deleted with the issue")
	}
}

func TestSetup_NurseryIssuesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("nursery_issues")

	fields := []string{
		"title", "description", "type", "priority", "status",
		"location", "assigned_to", "tags", "photos", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("nursery_issues: missing field %q", f)
		}
	}

	photosField := col.Fields.GetByName("photos")
	if ff, ok := photosField.(*core.FileField); ok {
		if ff.MaxSelect != 5 {
			t.Errorf("nursery_issues.photos: expected MaxSelect=5, got %d", ff.MaxSelect)
		}
	} else {
		t.Error("nursery_issues.photos is not a FileField")
	}
}
