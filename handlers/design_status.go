package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
)

// HandleDesignStatus moves a design project to a new status and refreshes
// the list.
// Route: POST /designs/{id}/status
func HandleDesignStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")

		if _, err := services.TransitionStatus(app, "design_projects", id, status); err != nil {
			return transitionError(e, err)
		}

		SetToast(e, "success", "Project moved to "+humanize(status))
		return HandleDesignList(app)(e)
	}
}
