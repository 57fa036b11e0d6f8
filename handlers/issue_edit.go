package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/templates"
)

func HandleIssueEditForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("nursery_issues", id)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		data := issueFormData(rec)
		return templates.IssueFormPage(data, sidebarFor(e, "issues")).Render(e.Request.Context(), e.Response)
	}
}

func HandleIssueSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("nursery_issues", id)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		form, errs := issueFormFromRequest(e)
		if len(errs) > 0 {
			data := issueFormData(rec)
			data.Title = form.Title
			data.Errors = errs
			return templates.IssueFormPage(data, sidebarFor(e, "issues")).Render(e.Request.Context(), e.Response)
		}

		applyIssueForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("issue_edit: could not save issue %s: %v", id, err)
			return ErrorToast(e, 500, "Could not save issue")
		}

		SetToast(e, "success", "Issue updated")
		return e.Redirect(303, "/issues/"+id)
	}
}

func HandleIssueDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("nursery_issues", id)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("issue_delete: could not delete issue %s: %v", id, err)
			return ErrorToast(e, 500, "Could not delete issue")
		}

		SetToast(e, "success", "Issue deleted")
		return e.Redirect(303, "/issues")
	}
}
