package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// EstimateExportRow is one line item in an estimate export.
type EstimateExportRow struct {
	Category    string
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	Total       float64
}

// EstimateExportData holds everything the PDF export needs.
type EstimateExportData struct {
	Number        string
	CustomerName  string
	ProjectTitle  string
	Status        string
	CreatedDate   string
	ExpiresDate   string
	Rows          []EstimateExportRow
	Subtotal      float64
	MarkupPercent float64
	MarkupAmount  float64
	TaxPercent    float64
	TaxAmount     float64
	GrandTotal    float64
}

// BuildEstimateExportData loads an estimate with its project, customer and
// line items and flattens them for export.
func BuildEstimateExportData(app *pocketbase.PocketBase, estimateID string) (*EstimateExportData, error) {
	estimate, err := app.FindRecordById("estimates", estimateID)
	if err != nil {
		return nil, fmt.Errorf("export: estimate %q not found: %w", estimateID, err)
	}

	data := &EstimateExportData{
		Number:        estimate.GetString("number"),
		Status:        estimate.GetString("status"),
		Subtotal:      estimate.GetFloat("subtotal"),
		MarkupPercent: estimate.GetFloat("markup_percent"),
		MarkupAmount:  estimate.GetFloat("markup_amount"),
		TaxPercent:    estimate.GetFloat("tax_percent"),
		TaxAmount:     estimate.GetFloat("tax_amount"),
		GrandTotal:    estimate.GetFloat("total"),
	}

	if dt := estimate.GetDateTime("created"); !dt.IsZero() {
		data.CreatedDate = dt.Time().Format("02 Jan 2006")
	}
	if dt := estimate.GetDateTime("expires"); !dt.IsZero() {
		data.ExpiresDate = dt.Time().Format("02 Jan 2006")
	}

	if project, err := app.FindRecordById("design_projects", estimate.GetString("design_project")); err == nil {
		data.ProjectTitle = project.GetString("title")
		if customer, err := app.FindRecordById("customers", project.GetString("customer")); err == nil {
			data.CustomerName = customer.GetString("first_name") + " " + customer.GetString("last_name")
		}
	}

	items, err := app.FindRecordsByFilter(
		"estimate_line_items",
		"estimate = {:estimateId}",
		"created", 0, 0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		return nil, fmt.Errorf("export: could not load line items for %q: %w", estimateID, err)
	}

	for _, item := range items {
		data.Rows = append(data.Rows, EstimateExportRow{
			Category:    item.GetString("category"),
			Description: item.GetString("description"),
			Quantity:    item.GetFloat("quantity"),
			Unit:        item.GetString("unit"),
			UnitPrice:   item.GetFloat("unit_price"),
			Total:       item.GetFloat("total"),
		})
	}

	return data, nil
}

// CustomerExportRow is one customer in the Excel export.
type CustomerExportRow struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	Notes       string
	LeadCount   int
	CreatedDate string
}

// BuildCustomerExportData loads every customer, ordered as stored, with a
// per-customer lead count.
func BuildCustomerExportData(app *pocketbase.PocketBase) ([]CustomerExportRow, error) {
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil, fmt.Errorf("export: could not find customers collection: %w", err)
	}

	records, err := app.FindAllRecords(customersCol)
	if err != nil {
		return nil, fmt.Errorf("export: could not query customers: %w", err)
	}

	rows := make([]CustomerExportRow, 0, len(records))
	for _, rec := range records {
		leads, err := app.FindRecordsByFilter(
			"leads",
			"customer = {:customerId}",
			"", 0, 0,
			map[string]any{"customerId": rec.Id},
		)
		if err != nil {
			leads = nil
		}

		createdDate := ""
		if dt := rec.GetDateTime("created"); !dt.IsZero() {
			createdDate = dt.Time().Format("02 Jan 2006")
		}

		rows = append(rows, CustomerExportRow{
			FirstName:   rec.GetString("first_name"),
			LastName:    rec.GetString("last_name"),
			Email:       rec.GetString("email"),
			Phone:       rec.GetString("phone"),
			Address:     rec.GetString("address"),
			Notes:       rec.GetString("notes"),
			LeadCount:   len(leads),
			CreatedDate: createdDate,
		})
	}
	return rows, nil
}
