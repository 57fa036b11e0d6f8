package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"landscapedesk/testhelpers"
)

func TestHandleLeadStatus_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	lead := testhelpers.CreateTestLead(t, app, customer.Id, "new")

	handler := HandleLeadStatus(app)

	form := url.Values{}
	form.Set("status", "contacted")

	req := httptest.NewRequest(http.MethodPost, "/leads/"+lead.Id+"/status",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", lead.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	reloaded, err := app.FindRecordById("leads", lead.Id)
	if err != nil {
		t.Fatalf("failed to reload lead: %v", err)
	}
	if reloaded.GetString("status") != "contacted" {
		t.Errorf("expected status 'contacted', got %q", reloaded.GetString("status"))
	}
	if reloaded.GetDateTime("last_contact").IsZero() {
		t.Error("expected last_contact to be stamped on status change")
	}

	if !strings.Contains(rec.Header().Get("HX-Trigger"), "Lead moved to Contacted") {
		t.Errorf("expected success toast, got HX-Trigger %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestHandleLeadStatus_InvalidStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")
	lead := testhelpers.CreateTestLead(t, app, customer.Id, "new")

	handler := HandleLeadStatus(app)

	form := url.Values{}
	form.Set("status", "launched")

	req := httptest.NewRequest(http.MethodPost, "/leads/"+lead.Id+"/status",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", lead.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none on validation error")
	}

	reloaded, _ := app.FindRecordById("leads", lead.Id)
	if reloaded.GetString("status") != "new" {
		t.Errorf("lead status mutated to %q on invalid transition", reloaded.GetString("status"))
	}
}

func TestHandleLeadStatus_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLeadStatus(app)

	form := url.Values{}
	form.Set("status", "contacted")

	req := httptest.NewRequest(http.MethodPost, "/leads/missing123/status",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
