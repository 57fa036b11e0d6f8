package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query().Get("q")

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			return ErrorToast(e, 500, "Customers collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
		}, services.SearchFields["customers"])

		items := make([]templates.CustomerListItem, 0, len(filtered))
		for _, rec := range filtered {
			leads, err := app.FindRecordsByFilter(
				"leads",
				"customer = {:customerId}",
				"", 0, 0,
				map[string]any{"customerId": rec.Id},
			)
			if err != nil {
				leads = nil
			}

			items = append(items, templates.CustomerListItem{
				ID:          rec.Id,
				Name:        rec.GetString("first_name") + " " + rec.GetString("last_name"),
				Email:       rec.GetString("email"),
				Phone:       rec.GetString("phone"),
				Address:     rec.GetString("address"),
				LeadCount:   len(leads),
				CreatedDate: createdDate(rec),
			})
		}

		data := templates.CustomerListData{
			Items:      items,
			TotalCount: len(items),
			Query:      query,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.CustomerListContent(data)
		} else {
			component = templates.CustomerListPage(data, sidebarFor(e, "customers"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
