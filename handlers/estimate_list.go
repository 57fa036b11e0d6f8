package handlers

import (
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleEstimateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		query := q.Get("q")
		tab := q.Get("tab")

		col, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			return ErrorToast(e, 500, "Estimates collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("estimate_list: could not query estimates: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
			Tab:   tab,
		}, services.SearchFields["estimates"])

		now := time.Now()
		items := make([]templates.EstimateListItem, 0, len(filtered))
		for _, rec := range filtered {
			projectTitle := ""
			custName := ""
			if project, err := app.FindRecordById("design_projects", rec.GetString("design_project")); err == nil {
				projectTitle = project.GetString("title")
				custName = customerName(app, project.GetString("customer"))
			}

			expiresDate := ""
			if dt := rec.GetDateTime("expires"); !dt.IsZero() {
				expiresDate = dt.Time().Format("02 Jan 2006")
			}

			items = append(items, templates.EstimateListItem{
				ID:               rec.Id,
				Number:           rec.GetString("number"),
				ProjectTitle:     projectTitle,
				CustomerName:     custName,
				Status:           rec.GetString("status"),
				StatusBadgeClass: statusBadgeClass(rec.GetString("status")),
				Total:            services.FormatUSD(rec.GetFloat("total")),
				Expired:          services.IsEstimateExpired(rec.GetDateTime("expires").Time(), now),
				ExpiresDate:      expiresDate,
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.EstimateListData{
			Items:         items,
			TotalCount:    len(items),
			Query:         query,
			Tabs:          statusTabs("/estimates", services.EstimateStatuses, tab, records),
			StatusOptions: services.EstimateStatuses,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.EstimateListContent(data)
		} else {
			component = templates.EstimateListPage(data, sidebarFor(e, "estimates"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
