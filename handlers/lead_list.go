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

func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		query := q.Get("q")
		tab := q.Get("tab")
		source := q.Get("source")
		priority := q.Get("priority")

		col, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			return ErrorToast(e, 500, "Leads collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("lead_list: could not query leads: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
			Tab:   tab,
			Attrs: map[string]string{"source": source, "priority": priority},
			ExtraText: func(rec *core.Record) string {
				return customerName(app, rec.GetString("customer"))
			},
		}, services.SearchFields["leads"])

		now := time.Now()
		items := make([]templates.LeadListItem, 0, len(filtered))
		for _, rec := range filtered {
			items = append(items, templates.LeadListItem{
				ID:               rec.Id,
				CustomerName:     customerName(app, rec.GetString("customer")),
				Source:           humanize(rec.GetString("source")),
				Status:           rec.GetString("status"),
				StatusBadgeClass: statusBadgeClass(rec.GetString("status")),
				Priority:         rec.GetString("priority"),
				Services:         rec.GetStringSlice("services"),
				AssignedTo:       staffName(app, rec.GetString("assigned_to")),
				Description:      rec.GetString("description"),
				Stale: services.IsLeadStale(
					rec.GetString("status"),
					rec.GetDateTime("last_contact").Time(),
					rec.GetDateTime("created").Time(),
					now,
				),
				CreatedDate: createdDate(rec),
			})
		}

		data := templates.LeadListData{
			Items:          items,
			TotalCount:     len(items),
			Query:          query,
			Tabs:           statusTabs("/leads", services.LeadStatuses, tab, records),
			SourceFilter:   templates.FilterOptions(services.LeadSourceOptions, source, "All sources"),
			PriorityFilter: templates.FilterOptions(services.LeadPriorityOptions, priority, "All priorities"),
			StatusOptions:  services.LeadStatuses,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.LeadListContent(data)
		} else {
			component = templates.LeadListPage(data, sidebarFor(e, "leads"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
