package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleBlueSheetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		query := q.Get("q")
		tab := q.Get("tab")

		col, err := app.FindCollectionByNameOrId("blue_sheets")
		if err != nil {
			return ErrorToast(e, 500, "Blue sheets collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("bluesheet_list: could not query blue_sheets: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
			Tab:   tab,
			ExtraText: func(rec *core.Record) string {
				return customerName(app, rec.GetString("customer")) + " " +
					staffName(app, rec.GetString("designer"))
			},
		}, services.SearchFields["blue_sheets"])

		items := make([]templates.BlueSheetListItem, 0, len(filtered))
		for _, rec := range filtered {
			items = append(items, templates.BlueSheetListItem{
				ID:                rec.Id,
				CustomerName:      customerName(app, rec.GetString("customer")),
				DesignerName:      staffName(app, rec.GetString("designer")),
				Status:            rec.GetString("status"),
				StatusBadgeClass:  statusBadgeClass(rec.GetString("status")),
				Priority:          rec.GetString("priority"),
				ProjectType:       rec.GetString("project_type"),
				Services:          rec.GetStringSlice("services"),
				CompletionPercent: rec.GetInt("completion_percent"),
				CreatedDate:       createdDate(rec),
			})
		}

		data := templates.BlueSheetListData{
			Items:         items,
			TotalCount:    len(items),
			Query:         query,
			Tabs:          statusTabs("/bluesheets", services.BlueSheetStatuses, tab, records),
			StatusOptions: services.BlueSheetStatuses,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.BlueSheetListContent(data)
		} else {
			component = templates.BlueSheetListPage(data, sidebarFor(e, "bluesheets"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
