package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"landscapedesk/testhelpers"
)

func TestHandleLeadConvert_CreatesProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	lead := testhelpers.CreateTestLead(t, app, customer.Id, "contacted")

	handler := HandleLeadConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/leads/"+lead.Id+"/convert", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", lead.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/designs")

	projects, err := app.FindRecordsByFilter("design_projects",
		"source_lead = {:leadId}", "", 0, 0,
		map[string]any{"leadId": lead.Id})
	if err != nil || len(projects) != 1 {
		t.Fatalf("expected 1 design project for the lead, got %d (err %v)", len(projects), err)
	}

	project := projects[0]
	if project.GetString("customer") != customer.Id {
		t.Errorf("expected project customer %q, got %q", customer.Id, project.GetString("customer"))
	}
	if project.GetString("status") != "needs_estimate" {
		t.Errorf("expected project status 'needs_estimate', got %q", project.GetString("status"))
	}
	// The lead description becomes the project title.
	if project.GetString("title") != "Backyard refresh" {
		t.Errorf("expected title 'Backyard refresh', got %q", project.GetString("title"))
	}

	reloaded, _ := app.FindRecordById("leads", lead.Id)
	if reloaded.GetString("status") != "qualified" {
		t.Errorf("expected converted lead to be 'qualified', got %q", reloaded.GetString("status"))
	}
}

func TestHandleLeadConvert_TitleFallsBackToCustomerName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")

	lead := testhelpers.CreateTestLead(t, app, customer.Id, "new")
	lead.Set("description", "")
	if err := app.Save(lead); err != nil {
		t.Fatalf("failed to clear description: %v", err)
	}

	handler := HandleLeadConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/leads/"+lead.Id+"/convert", nil)
	req.SetPathValue("id", lead.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Non-HTMX request gets a plain redirect.
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", rec.Code)
	}

	projects, err := app.FindRecordsByFilter("design_projects",
		"source_lead = {:leadId}", "", 0, 0,
		map[string]any{"leadId": lead.Id})
	if err != nil || len(projects) != 1 {
		t.Fatalf("expected 1 design project, got %d (err %v)", len(projects), err)
	}
	if got := projects[0].GetString("title"); got != "Tom Whitfield landscape design" {
		t.Errorf("expected fallback title, got %q", got)
	}
}

func TestHandleLeadConvert_MissingLead(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLeadConvert(app)

	req := httptest.NewRequest(http.MethodPost, "/leads/missing123/convert", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
