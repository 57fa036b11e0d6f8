package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleIssueView renders the issue detail page with photos and the comment
// thread.
// Route: GET /issues/{id}
func HandleIssueView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		data, err := buildIssueViewData(app, id)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		if isHTMX(e) {
			return templates.IssueViewContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.IssueViewPage(data, sidebarFor(e, "issues")).Render(e.Request.Context(), e.Response)
	}
}

func buildIssueViewData(app *pocketbase.PocketBase, issueID string) (templates.IssueViewData, error) {
	rec, err := app.FindRecordById("nursery_issues", issueID)
	if err != nil {
		return templates.IssueViewData{}, err
	}

	data := templates.IssueViewData{
		ID:               rec.Id,
		Title:            rec.GetString("title"),
		Description:      rec.GetString("description"),
		Type:             rec.GetString("type"),
		Priority:         rec.GetString("priority"),
		PriorityClass:    priorityBadgeClass(rec.GetString("priority")),
		Status:           rec.GetString("status"),
		StatusBadgeClass: statusBadgeClass(rec.GetString("status")),
		StatusOptions:    services.IssueStatuses,
		Location:         rec.GetString("location"),
		AssignedTo:       rec.GetString("assigned_to"),
		Tags:             rec.GetString("tags"),
		CreatedDate:      createdDate(rec),
	}

	for _, photo := range rec.GetStringSlice("photos") {
		data.PhotoURLs = append(data.PhotoURLs, "/api/files/nursery_issues/"+rec.Id+"/"+photo)
	}

	comments, err := app.FindRecordsByFilter(
		"issue_comments",
		"issue = {:issueId}",
		"created", 0, 0,
		map[string]any{"issueId": issueID},
	)
	if err != nil {
		comments = nil
	}
	for _, c := range comments {
		author := c.GetString("author")
		if author == "" {
			author = "Anonymous"
		}
		data.Comments = append(data.Comments, templates.IssueComment{
			Author:      author,
			Body:        c.GetString("body"),
			CreatedDate: createdDate(c),
		})
	}

	return data, nil
}
