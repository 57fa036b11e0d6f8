package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleEstimateStatus moves an estimate to a new status and re-renders the
// detail view.
// Route: POST /estimates/{id}/status
func HandleEstimateStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")

		if _, err := services.TransitionStatus(app, "estimates", id, status); err != nil {
			return transitionError(e, err)
		}

		SetToast(e, "success", "Estimate moved to "+humanize(status))

		data, err := buildEstimateViewData(app, id)
		if err != nil {
			return ErrorToast(e, 404, "Estimate not found")
		}
		if isHTMX(e) {
			return templates.EstimateViewContent(data).Render(e.Request.Context(), e.Response)
		}
		return e.Redirect(303, "/estimates/"+id)
	}
}
