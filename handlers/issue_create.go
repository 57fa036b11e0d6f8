package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleIssueCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := issueFormData(nil)
		return templates.IssueFormPage(data, sidebarFor(e, "issues")).Render(e.Request.Context(), e.Response)
	}
}

func HandleIssueCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form, errs := issueFormFromRequest(e)
		if len(errs) > 0 {
			data := issueFormData(nil)
			data.Title = form.Title
			data.Description = form.Description
			data.Errors = errs
			return templates.IssueFormPage(data, sidebarFor(e, "issues")).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("nursery_issues")
		if err != nil {
			return ErrorToast(e, 500, "Nursery issues collection is missing")
		}

		rec := core.NewRecord(col)
		applyIssueForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("issue_create: could not save issue: %v", err)
			return ErrorToast(e, 500, "Could not save issue")
		}

		SetToast(e, "success", "Issue reported")
		return e.Redirect(303, "/issues/"+rec.Id)
	}
}

type issueForm struct {
	Title       string
	Description string
	Type        string
	Priority    string
	Status      string
	Location    string
	AssignedTo  string
	Tags        string
}

func issueFormFromRequest(e *core.RequestEvent) (issueForm, map[string]string) {
	form := issueForm{
		Title:       strings.TrimSpace(e.Request.FormValue("title")),
		Description: strings.TrimSpace(e.Request.FormValue("description")),
		Type:        e.Request.FormValue("type"),
		Priority:    e.Request.FormValue("priority"),
		Status:      e.Request.FormValue("status"),
		Location:    strings.TrimSpace(e.Request.FormValue("location")),
		AssignedTo:  strings.TrimSpace(e.Request.FormValue("assigned_to")),
		Tags:        strings.TrimSpace(e.Request.FormValue("tags")),
	}

	errs := map[string]string{}
	if form.Title == "" {
		errs["title"] = "Title is required"
	}
	if form.Status == "" {
		form.Status = "open"
	}
	if !services.IsValidStatus("nursery_issues", form.Status) {
		errs["status"] = "Invalid status"
	}
	return form, errs
}

func applyIssueForm(rec *core.Record, form issueForm) {
	rec.Set("title", form.Title)
	rec.Set("description", form.Description)
	rec.Set("type", form.Type)
	rec.Set("priority", form.Priority)
	rec.Set("status", form.Status)
	rec.Set("location", form.Location)
	rec.Set("assigned_to", form.AssignedTo)
	rec.Set("tags", form.Tags)
}

func issueFormData(rec *core.Record) templates.IssueFormData {
	data := templates.IssueFormData{
		Type:     "other",
		Priority: "medium",
		Status:   "open",
		Errors:   map[string]string{},
	}
	if rec != nil {
		data.ID = rec.Id
		data.Title = rec.GetString("title")
		data.Description = rec.GetString("description")
		data.Type = rec.GetString("type")
		data.Priority = rec.GetString("priority")
		data.Status = rec.GetString("status")
		data.Location = rec.GetString("location")
		data.AssignedTo = rec.GetString("assigned_to")
		data.Tags = rec.GetString("tags")
	}
	data.TypeOptions = templates.SelectOptions(services.IssueTypeOptions, data.Type)
	data.PriorityOptions = templates.SelectOptions(services.IssuePriorityOptions, data.Priority)
	data.StatusOptions = templates.SelectOptions(services.IssueStatuses, data.Status)
	return data
}
