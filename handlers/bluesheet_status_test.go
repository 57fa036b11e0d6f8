package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"landscapedesk/testhelpers"
)

func TestHandleBlueSheetStatus_CompletedSnapsPercent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	designer := testhelpers.CreateTestStaff(t, app, "Dana Brooks", "designer")
	sheet := testhelpers.CreateTestBlueSheet(t, app, customer.Id, designer.Id, "review")
	sheet.Set("completion_percent", 60)
	if err := app.Save(sheet); err != nil {
		t.Fatalf("failed to set completion: %v", err)
	}

	handler := HandleBlueSheetStatus(app)

	form := url.Values{}
	form.Set("status", "completed")

	req := httptest.NewRequest(http.MethodPost, "/bluesheets/"+sheet.Id+"/status",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", sheet.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	reloaded, _ := app.FindRecordById("blue_sheets", sheet.Id)
	if got := reloaded.GetString("status"); got != "completed" {
		t.Errorf("expected status 'completed', got %q", got)
	}
	if got := reloaded.GetInt("completion_percent"); got != 100 {
		t.Errorf("expected completion to snap to 100, got %d", got)
	}
}

func TestHandleBlueSheetStatus_NonTerminalKeepsPercent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")
	designer := testhelpers.CreateTestStaff(t, app, "Luis Ortega", "estimator")
	sheet := testhelpers.CreateTestBlueSheet(t, app, customer.Id, designer.Id, "draft")
	sheet.Set("completion_percent", 25)
	if err := app.Save(sheet); err != nil {
		t.Fatalf("failed to set completion: %v", err)
	}

	handler := HandleBlueSheetStatus(app)

	form := url.Values{}
	form.Set("status", "in_progress")

	req := httptest.NewRequest(http.MethodPost, "/bluesheets/"+sheet.Id+"/status",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", sheet.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	reloaded, _ := app.FindRecordById("blue_sheets", sheet.Id)
	if got := reloaded.GetInt("completion_percent"); got != 25 {
		t.Errorf("expected completion to stay at 25, got %d", got)
	}
}
