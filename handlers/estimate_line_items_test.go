package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"landscapedesk/testhelpers"
)

func TestHandleLineItemAdd_RecomputesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Courtyard redesign")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0001")

	handler := HandleLineItemAdd(app)

	form := url.Values{}
	form.Set("category", "plants")
	form.Set("description", "Boxwood shrubs")
	form.Set("quantity", "2")
	form.Set("unit", "each")
	form.Set("unit_price", "10.00")

	req := httptest.NewRequest(http.MethodPost, "/estimates/"+estimate.Id+"/line-items",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	items, err := app.FindRecordsByFilter("estimate_line_items",
		"estimate = {:estimateId}", "", 0, 0,
		map[string]any{"estimateId": estimate.Id})
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d (err %v)", len(items), err)
	}
	if got := items[0].GetFloat("total"); got != 20.00 {
		t.Errorf("expected line total 20.00, got %v", got)
	}

	// 25% markup and 8% tax on the test estimate: 20 + 5 markup,
	// tax on 25 = 2, grand total 27.
	reloaded, _ := app.FindRecordById("estimates", estimate.Id)
	if got := reloaded.GetFloat("subtotal"); got != 20.00 {
		t.Errorf("expected subtotal 20.00, got %v", got)
	}
	if got := reloaded.GetFloat("total"); got != 27.00 {
		t.Errorf("expected total 27.00, got %v", got)
	}
}

func TestHandleLineItemAdd_InvalidQuantity(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Front yard")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0002")

	handler := HandleLineItemAdd(app)

	form := url.Values{}
	form.Set("description", "Sod installation")
	form.Set("quantity", "0")
	form.Set("unit_price", "1.25")

	req := httptest.NewRequest(http.MethodPost, "/estimates/"+estimate.Id+"/line-items",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Quantity must be a positive number")

	items, _ := app.FindRecordsByFilter("estimate_line_items",
		"estimate = {:estimateId}", "", 0, 0,
		map[string]any{"estimateId": estimate.Id})
	if len(items) != 0 {
		t.Errorf("expected no line item to be created, got %d", len(items))
	}
}

func TestHandleLineItemAdd_MissingDescription(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Priya", "Raman", "priya@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Patio build")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0003")

	handler := HandleLineItemAdd(app)

	form := url.Values{}
	form.Set("description", "  ")
	form.Set("quantity", "3")
	form.Set("unit_price", "5.00")

	req := httptest.NewRequest(http.MethodPost, "/estimates/"+estimate.Id+"/line-items",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", estimate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Description is required")
}

func TestHandleLineItemDelete_RecomputesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Marek", "Kowalski", "marek@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Border planting")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0004")

	keep := testhelpers.CreateTestLineItem(t, app, estimate.Id, "Lavender", 4, 12.00)
	drop := testhelpers.CreateTestLineItem(t, app, estimate.Id, "Rototilling", 1, 80.00)
	_ = keep

	handler := HandleLineItemDelete(app)

	req := httptest.NewRequest(http.MethodDelete,
		"/estimates/"+estimate.Id+"/line-items/"+drop.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", estimate.Id)
	req.SetPathValue("itemId", drop.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("estimate_line_items", drop.Id); err == nil {
		t.Error("expected line item to be deleted")
	}

	reloaded, _ := app.FindRecordById("estimates", estimate.Id)
	if got := reloaded.GetFloat("subtotal"); got != 48.00 {
		t.Errorf("expected subtotal 48.00 after delete, got %v", got)
	}
}

func TestHandleLineItemDelete_WrongEstimate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Dana", "Ito", "dana@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Rock garden")
	owner := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0005")
	other := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0006")
	item := testhelpers.CreateTestLineItem(t, app, owner.Id, "Granite boulders", 3, 150.00)

	handler := HandleLineItemDelete(app)

	req := httptest.NewRequest(http.MethodDelete,
		"/estimates/"+other.Id+"/line-items/"+item.Id, nil)
	req.SetPathValue("id", other.Id)
	req.SetPathValue("itemId", item.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("estimate_line_items", item.Id); err != nil {
		t.Error("expected line item to survive a mismatched delete")
	}
}
