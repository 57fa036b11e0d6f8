package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/templates"
)

func HandleBlueSheetEditForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("blue_sheets", id)
		if err != nil {
			return ErrorToast(e, 404, "Blue sheet not found")
		}

		data := blueSheetFormData(app, rec)
		return templates.BlueSheetFormPage(data, sidebarFor(e, "bluesheets")).Render(e.Request.Context(), e.Response)
	}
}

func HandleBlueSheetSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("blue_sheets", id)
		if err != nil {
			return ErrorToast(e, 404, "Blue sheet not found")
		}

		form, errs := blueSheetFormFromRequest(app, e)
		if len(errs) > 0 {
			data := blueSheetFormData(app, rec)
			data.Errors = errs
			return templates.BlueSheetFormPage(data, sidebarFor(e, "bluesheets")).Render(e.Request.Context(), e.Response)
		}

		applyBlueSheetForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("bluesheet_edit: could not save blue sheet %s: %v", id, err)
			return ErrorToast(e, 500, "Could not save blue sheet")
		}

		SetToast(e, "success", "Blue sheet updated")
		return e.Redirect(303, "/bluesheets")
	}
}

func HandleBlueSheetDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("blue_sheets", id)
		if err != nil {
			return ErrorToast(e, 404, "Blue sheet not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("bluesheet_delete: could not delete blue sheet %s: %v", id, err)
			return ErrorToast(e, 500, "Could not delete blue sheet")
		}

		SetToast(e, "success", "Blue sheet deleted")
		return e.Redirect(303, "/bluesheets")
	}
}
