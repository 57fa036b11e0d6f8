package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
)

// HandleBlueSheetStatus moves a blue sheet to a new status and refreshes
// the list. Reaching "completed" snaps completion to 100%.
// Route: POST /bluesheets/{id}/status
func HandleBlueSheetStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")

		_, err := services.TransitionStatus(app, "blue_sheets", id, status, func(rec *core.Record) {
			if status == "completed" {
				rec.Set("completion_percent", 100)
			}
		})
		if err != nil {
			return transitionError(e, err)
		}

		SetToast(e, "success", "Blue sheet moved to "+humanize(status))
		return HandleBlueSheetList(app)(e)
	}
}
