package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/templates"
)

func HandleDesignEditForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("design_projects", id)
		if err != nil {
			return ErrorToast(e, 404, "Design project not found")
		}

		data := designFormData(app, rec)
		return templates.DesignFormPage(data, sidebarFor(e, "designs")).Render(e.Request.Context(), e.Response)
	}
}

func HandleDesignSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("design_projects", id)
		if err != nil {
			return ErrorToast(e, 404, "Design project not found")
		}

		form, errs := designFormFromRequest(app, e)
		if len(errs) > 0 {
			data := designFormData(app, rec)
			data.Title = form.Title
			data.Errors = errs
			return templates.DesignFormPage(data, sidebarFor(e, "designs")).Render(e.Request.Context(), e.Response)
		}

		applyDesignForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("design_edit: could not save design project %s: %v", id, err)
			return ErrorToast(e, 500, "Could not save design project")
		}

		SetToast(e, "success", "Design project updated")
		return e.Redirect(303, "/designs")
	}
}

func HandleDesignDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("design_projects", id)
		if err != nil {
			return ErrorToast(e, 404, "Design project not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("design_delete: could not delete design project %s: %v", id, err)
			return ErrorToast(e, 500, "Could not delete design project")
		}

		SetToast(e, "success", "Design project deleted")
		return e.Redirect(303, "/designs")
	}
}
