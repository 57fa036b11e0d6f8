package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleLineItemAdd appends a line item to an estimate, recomputes the
// derived totals and swaps the line items section back in.
// Route: POST /estimates/{id}/line-items
func HandleLineItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("estimates", estimateID); err != nil {
			return ErrorToast(e, 404, "Estimate not found")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		errs := map[string]string{}
		if description == "" {
			errs["description"] = "Description is required"
		}

		quantity, err := strconv.ParseFloat(e.Request.FormValue("quantity"), 64)
		if err != nil || quantity <= 0 {
			errs["quantity"] = "Quantity must be a positive number"
		}
		unitPrice, err := strconv.ParseFloat(e.Request.FormValue("unit_price"), 64)
		if err != nil || unitPrice < 0 {
			errs["unit_price"] = "Unit price must be a non-negative number"
		}

		if len(errs) > 0 {
			data, err := buildEstimateViewData(app, estimateID)
			if err != nil {
				return ErrorToast(e, 404, "Estimate not found")
			}
			data.Errors = errs
			return templates.EstimateLineItemsSection(data).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("estimate_line_items")
		if err != nil {
			return ErrorToast(e, 500, "Line items collection is missing")
		}

		item := core.NewRecord(col)
		item.Set("estimate", estimateID)
		item.Set("category", e.Request.FormValue("category"))
		item.Set("description", description)
		item.Set("quantity", quantity)
		item.Set("unit", e.Request.FormValue("unit"))
		item.Set("unit_price", unitPrice)
		item.Set("total", services.LineItemTotalFloat(quantity, unitPrice))
		if err := app.Save(item); err != nil {
			log.Printf("line_item_add: could not save line item: %v", err)
			return ErrorToast(e, 500, "Could not save line item")
		}

		if _, err := services.RecalcEstimateTotals(app, estimateID); err != nil {
			log.Printf("line_item_add: %v", err)
		}

		SetToast(e, "success", "Line item added")
		return renderLineItemsSection(app, e, estimateID)
	}
}

// HandleLineItemDelete removes a line item and recomputes the totals.
// Route: DELETE /estimates/{id}/line-items/{itemId}
func HandleLineItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		estimateID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		item, err := app.FindRecordById("estimate_line_items", itemID)
		if err != nil {
			return ErrorToast(e, 404, "Line item not found")
		}
		if item.GetString("estimate") != estimateID {
			return ErrorToast(e, 404, "Line item not found")
		}

		if err := app.Delete(item); err != nil {
			log.Printf("line_item_delete: could not delete line item %s: %v", itemID, err)
			return ErrorToast(e, 500, "Could not delete line item")
		}

		if _, err := services.RecalcEstimateTotals(app, estimateID); err != nil {
			log.Printf("line_item_delete: %v", err)
		}

		SetToast(e, "success", "Line item removed")
		return renderLineItemsSection(app, e, estimateID)
	}
}

func renderLineItemsSection(app *pocketbase.PocketBase, e *core.RequestEvent, estimateID string) error {
	data, err := buildEstimateViewData(app, estimateID)
	if err != nil {
		return ErrorToast(e, 404, "Estimate not found")
	}
	return templates.EstimateLineItemsSection(data).Render(e.Request.Context(), e.Response)
}
