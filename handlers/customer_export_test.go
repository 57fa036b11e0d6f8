package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"landscapedesk/testhelpers"
)

func TestHandleCustomerExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")

	handler := HandleCustomerExport(app)

	req := httptest.NewRequest(http.MethodGet, "/customers/export", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != excelContentType {
		t.Errorf("expected xlsx content type, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=customers_") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response body is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Customers")
	if err != nil {
		t.Fatalf("read Customers sheet: %v", err)
	}
	// Header plus one row per customer.
	if len(rows) != 3 {
		t.Errorf("expected 3 sheet rows, got %d", len(rows))
	}
}

func TestHandleCustomerExport_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCustomerExport(app)

	req := httptest.NewRequest(http.MethodGet, "/customers/export", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for empty export, got %d", rec.Code)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response body is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Customers")
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}
