package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"landscapedesk/testhelpers"
)

func TestHandleCustomerCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCustomerCreate(app)

	form := url.Values{}
	form.Set("first_name", "Elena")
	form.Set("last_name", "Garcia")
	form.Set("email", "elena@example.com")
	form.Set("phone", "555-0101")

	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/customers" {
		t.Errorf("expected redirect to /customers, got %q", loc)
	}

	saved, err := app.FindRecordsByFilter("customers",
		"email = {:email}", "", 0, 0,
		map[string]any{"email": "elena@example.com"})
	if err != nil || len(saved) != 1 {
		t.Fatalf("expected customer to be created, got %d (err %v)", len(saved), err)
	}
	if saved[0].GetString("first_name") != "Elena" {
		t.Errorf("expected first_name 'Elena', got %q", saved[0].GetString("first_name"))
	}
}

func TestHandleCustomerCreate_MissingRequiredFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCustomerCreate(app)

	form := url.Values{}
	form.Set("first_name", "")
	form.Set("last_name", "")

	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Validation failure re-renders the form instead of redirecting.
	if rec.Header().Get("Location") != "" {
		t.Error("expected no redirect on validation failure")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"First name is required",
		"Last name is required",
	)

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("customers collection missing: %v", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("failed to query customers: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no customer to be created, got %d", len(records))
	}
}

func TestHandleCustomerCreate_InvalidEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCustomerCreate(app)

	form := url.Values{}
	form.Set("first_name", "Tom")
	form.Set("last_name", "Whitfield")
	form.Set("email", "not-an-email")

	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid email address")

	// Entered values survive the re-render.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Tom", "Whitfield")
}
