package handlers

import (
	"errors"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"landscapedesk/services"
)

// HandleLeadStatus moves a lead to a new status and refreshes the list.
// Route: POST /leads/{id}/status
func HandleLeadStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")

		// A status move counts as contact for stale tracking; the stamp
		// rides along in the transition's save.
		_, err := services.TransitionStatus(app, "leads", id, status, func(rec *core.Record) {
			rec.Set("last_contact", types.NowDateTime())
		})
		if err != nil {
			return transitionError(e, err)
		}

		SetToast(e, "success", "Lead moved to "+humanize(status))
		return HandleLeadList(app)(e)
	}
}

// transitionError maps the service sentinels onto toast responses.
func transitionError(e *core.RequestEvent, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		return ErrorToast(e, 400, "Invalid status")
	case errors.Is(err, services.ErrNotFound):
		return ErrorToast(e, 404, "Record not found")
	default:
		log.Printf("status transition: %v", err)
		return ErrorToast(e, 500, "Could not update status")
	}
}
