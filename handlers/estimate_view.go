package handlers

import (
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleEstimateView renders the estimate detail page with its line items
// and derived totals.
// Route: GET /estimates/{id}
func HandleEstimateView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		data, err := buildEstimateViewData(app, id)
		if err != nil {
			return ErrorToast(e, 404, "Estimate not found")
		}

		if isHTMX(e) {
			return templates.EstimateViewContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.EstimateViewPage(data, sidebarFor(e, "estimates")).Render(e.Request.Context(), e.Response)
	}
}

// buildEstimateViewData assembles the detail view model. Line item handlers
// reuse it to re-render the section after a mutation.
func buildEstimateViewData(app *pocketbase.PocketBase, estimateID string) (templates.EstimateViewData, error) {
	estimate, err := app.FindRecordById("estimates", estimateID)
	if err != nil {
		return templates.EstimateViewData{}, err
	}

	data := templates.EstimateViewData{
		ID:               estimate.Id,
		Number:           estimate.GetString("number"),
		Status:           estimate.GetString("status"),
		StatusBadgeClass: statusBadgeClass(estimate.GetString("status")),
		StatusOptions:    services.EstimateStatuses,
		Subtotal:         services.FormatUSD(estimate.GetFloat("subtotal")),
		MarkupPercent:    strconv.FormatFloat(estimate.GetFloat("markup_percent"), 'f', -1, 64),
		MarkupAmount:     services.FormatUSD(estimate.GetFloat("markup_amount")),
		TaxPercent:       strconv.FormatFloat(estimate.GetFloat("tax_percent"), 'f', -1, 64),
		TaxAmount:        services.FormatUSD(estimate.GetFloat("tax_amount")),
		GrandTotal:       services.FormatUSD(estimate.GetFloat("total")),
		Expired:          services.IsEstimateExpired(estimate.GetDateTime("expires").Time(), time.Now()),
		CategoryOptions:  templates.SelectOptions(services.LineItemCategoryOptions, ""),
		UnitOptions:      templates.SelectOptions(services.UnitOptions, ""),
		Errors:           map[string]string{},
	}

	if dt := estimate.GetDateTime("expires"); !dt.IsZero() {
		data.ExpiresDate = dt.Time().Format("02 Jan 2006")
	}
	if doc := estimate.GetString("document"); doc != "" {
		data.DocumentURL = "/api/files/estimates/" + estimate.Id + "/" + doc
	}

	if project, err := app.FindRecordById("design_projects", estimate.GetString("design_project")); err == nil {
		data.ProjectTitle = project.GetString("title")
		data.CustomerName = customerName(app, project.GetString("customer"))
	}

	items, err := app.FindRecordsByFilter(
		"estimate_line_items",
		"estimate = {:estimateId}",
		"created", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		items = nil
	}
	for _, item := range items {
		data.Items = append(data.Items, templates.LineItemRow{
			ID:          item.Id,
			Category:    item.GetString("category"),
			Description: item.GetString("description"),
			Quantity:    strconv.FormatFloat(item.GetFloat("quantity"), 'f', -1, 64),
			Unit:        item.GetString("unit"),
			UnitPrice:   services.FormatUSD(item.GetFloat("unit_price")),
			Total:       services.FormatUSD(item.GetFloat("total")),
		})
	}

	return data, nil
}
