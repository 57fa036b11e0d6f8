package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleDesignList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		query := q.Get("q")
		tab := q.Get("tab")
		projectType := q.Get("project_type")

		col, err := app.FindCollectionByNameOrId("design_projects")
		if err != nil {
			return ErrorToast(e, 500, "Design projects collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("design_list: could not query design_projects: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
			Tab:   tab,
			Attrs: map[string]string{"project_type": projectType},
			ExtraText: func(rec *core.Record) string {
				return customerName(app, rec.GetString("customer"))
			},
		}, services.SearchFields["design_projects"])

		items := make([]templates.DesignListItem, 0, len(filtered))
		for _, rec := range filtered {
			estimates, err := app.FindRecordsByFilter(
				"estimates",
				"design_project = {:projectId}",
				"", 0, 0,
				map[string]any{"projectId": rec.Id},
			)
			if err != nil {
				estimates = nil
			}

			items = append(items, templates.DesignListItem{
				ID:               rec.Id,
				Title:            rec.GetString("title"),
				CustomerName:     customerName(app, rec.GetString("customer")),
				Status:           rec.GetString("status"),
				StatusBadgeClass: statusBadgeClass(rec.GetString("status")),
				ProjectType:      rec.GetString("project_type"),
				BudgetRange:      rec.GetString("budget_range"),
				Timeline:         rec.GetString("timeline"),
				EstimateCount:    len(estimates),
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.DesignListData{
			Items:         items,
			TotalCount:    len(items),
			Query:         query,
			Tabs:          statusTabs("/designs", services.DesignStatuses, tab, records),
			TypeFilter:    templates.FilterOptions(services.ProjectTypeOptions, projectType, "All types"),
			StatusOptions: services.DesignStatuses,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.DesignListContent(data)
		} else {
			component = templates.DesignListPage(data, sidebarFor(e, "designs"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
