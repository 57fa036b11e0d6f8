package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleIssueStatus moves an issue to a new status. The list posts here from
// the inline select, the detail page from the transition buttons; both get
// their own partial back.
// Route: POST /issues/{id}/status
func HandleIssueStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")

		if _, err := services.TransitionStatus(app, "nursery_issues", id, status); err != nil {
			return transitionError(e, err)
		}

		SetToast(e, "success", "Issue moved to "+humanize(status))

		data, err := buildIssueViewData(app, id)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}
		if isHTMX(e) {
			return templates.IssueViewContent(data).Render(e.Request.Context(), e.Response)
		}
		return e.Redirect(303, "/issues/"+id)
	}
}
