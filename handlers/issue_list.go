package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleIssueList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		query := q.Get("q")
		tab := q.Get("tab")
		issueType := q.Get("type")
		priority := q.Get("priority")

		col, err := app.FindCollectionByNameOrId("nursery_issues")
		if err != nil {
			return ErrorToast(e, 500, "Nursery issues collection is missing")
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			log.Printf("issue_list: could not query nursery_issues: %v", err)
			records = nil
		}

		filtered := services.FilterRecords(records, services.FilterParams{
			Query: query,
			Tab:   tab,
			Attrs: map[string]string{"type": issueType, "priority": priority},
		}, services.SearchFields["nursery_issues"])

		items := make([]templates.IssueListItem, 0, len(filtered))
		for _, rec := range filtered {
			comments, err := app.FindRecordsByFilter(
				"issue_comments",
				"issue = {:issueId}",
				"", 0, 0,
				map[string]any{"issueId": rec.Id},
			)
			if err != nil {
				comments = nil
			}

			items = append(items, templates.IssueListItem{
				ID:               rec.Id,
				Title:            rec.GetString("title"),
				Type:             rec.GetString("type"),
				Priority:         rec.GetString("priority"),
				PriorityClass:    priorityBadgeClass(rec.GetString("priority")),
				Status:           rec.GetString("status"),
				StatusBadgeClass: statusBadgeClass(rec.GetString("status")),
				Location:         rec.GetString("location"),
				AssignedTo:       rec.GetString("assigned_to"),
				Tags:             rec.GetString("tags"),
				CommentCount:     len(comments),
				PhotoCount:       len(rec.GetStringSlice("photos")),
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.IssueListData{
			Items:          items,
			TotalCount:     len(items),
			Query:          query,
			Tabs:           statusTabs("/issues", services.IssueStatuses, tab, records),
			TypeFilter:     templates.FilterOptions(services.IssueTypeOptions, issueType, "All types"),
			PriorityFilter: templates.FilterOptions(services.IssuePriorityOptions, priority, "All priorities"),
			StatusOptions:  services.IssueStatuses,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.IssueListContent(data)
		} else {
			component = templates.IssueListPage(data, sidebarFor(e, "issues"))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
