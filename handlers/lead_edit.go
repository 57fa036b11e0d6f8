package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"landscapedesk/templates"
)

func HandleLeadEditForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("leads", id)
		if err != nil {
			return ErrorToast(e, 404, "Lead not found")
		}

		data := leadFormData(app, rec)
		return templates.LeadFormPage(data, sidebarFor(e, "leads")).Render(e.Request.Context(), e.Response)
	}
}

func HandleLeadSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("leads", id)
		if err != nil {
			return ErrorToast(e, 404, "Lead not found")
		}

		form, errs := leadFormFromRequest(app, e)
		if len(errs) > 0 {
			data := leadFormData(app, rec)
			applyLeadFormValues(&data, e)
			data.Errors = errs
			return templates.LeadFormPage(data, sidebarFor(e, "leads")).Render(e.Request.Context(), e.Response)
		}

		applyLeadForm(rec, form)
		rec.Set("last_contact", types.NowDateTime())
		if err := app.Save(rec); err != nil {
			log.Printf("lead_edit: could not save lead %s: %v", id, err)
			return ErrorToast(e, 500, "Could not save lead")
		}

		SetToast(e, "success", "Lead updated")
		return e.Redirect(303, "/leads")
	}
}

func HandleLeadDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("leads", id)
		if err != nil {
			return ErrorToast(e, 404, "Lead not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("lead_delete: could not delete lead %s: %v", id, err)
			return ErrorToast(e, 500, "Could not delete lead")
		}

		SetToast(e, "success", "Lead deleted")
		return e.Redirect(303, "/leads")
	}
}
