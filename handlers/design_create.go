package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleDesignCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := designFormData(app, nil)
		return templates.DesignFormPage(data, sidebarFor(e, "designs")).Render(e.Request.Context(), e.Response)
	}
}

func HandleDesignCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form, errs := designFormFromRequest(app, e)
		if len(errs) > 0 {
			data := designFormData(app, nil)
			data.Title = form.Title
			data.Errors = errs
			return templates.DesignFormPage(data, sidebarFor(e, "designs")).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("design_projects")
		if err != nil {
			return ErrorToast(e, 500, "Design projects collection is missing")
		}

		rec := core.NewRecord(col)
		applyDesignForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("design_create: could not save design project: %v", err)
			return ErrorToast(e, 500, "Could not save design project")
		}

		SetToast(e, "success", "Design project created")
		return e.Redirect(303, "/designs")
	}
}

type designForm struct {
	Customer         string
	Title            string
	Status           string
	ProjectType      string
	Area             string
	BudgetRange      string
	Timeline         string
	Style            string
	MaintenanceLevel string
	PlantPreferences string
}

func designFormFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) (designForm, map[string]string) {
	form := designForm{
		Customer:         e.Request.FormValue("customer"),
		Title:            strings.TrimSpace(e.Request.FormValue("title")),
		Status:           e.Request.FormValue("status"),
		ProjectType:      e.Request.FormValue("project_type"),
		Area:             strings.TrimSpace(e.Request.FormValue("area")),
		BudgetRange:      e.Request.FormValue("budget_range"),
		Timeline:         strings.TrimSpace(e.Request.FormValue("timeline")),
		Style:            e.Request.FormValue("style"),
		MaintenanceLevel: e.Request.FormValue("maintenance_level"),
		PlantPreferences: strings.TrimSpace(e.Request.FormValue("plant_preferences")),
	}

	errs := map[string]string{}
	if form.Customer == "" {
		errs["customer"] = "Customer is required"
	} else if _, err := app.FindRecordById("customers", form.Customer); err != nil {
		errs["customer"] = "Customer not found"
	}
	if form.Title == "" {
		errs["title"] = "Title is required"
	}
	if form.Status == "" {
		form.Status = "needs_estimate"
	}
	if !services.IsValidStatus("design_projects", form.Status) {
		errs["status"] = "Invalid status"
	}
	return form, errs
}

func applyDesignForm(rec *core.Record, form designForm) {
	rec.Set("customer", form.Customer)
	rec.Set("title", form.Title)
	rec.Set("status", form.Status)
	rec.Set("project_type", form.ProjectType)
	rec.Set("area", form.Area)
	rec.Set("budget_range", form.BudgetRange)
	rec.Set("timeline", form.Timeline)
	rec.Set("style", form.Style)
	rec.Set("maintenance_level", form.MaintenanceLevel)
	rec.Set("plant_preferences", form.PlantPreferences)
}

func designFormData(app *pocketbase.PocketBase, rec *core.Record) templates.DesignFormData {
	data := templates.DesignFormData{
		Status: "needs_estimate",
		Errors: map[string]string{},
	}
	if rec != nil {
		data.ID = rec.Id
		data.CustomerID = rec.GetString("customer")
		data.Title = rec.GetString("title")
		data.Status = rec.GetString("status")
		data.ProjectType = rec.GetString("project_type")
		data.Area = rec.GetString("area")
		data.BudgetRange = rec.GetString("budget_range")
		data.Timeline = rec.GetString("timeline")
		data.Style = rec.GetString("style")
		data.MaintenanceLevel = rec.GetString("maintenance_level")
		data.PlantPreferences = rec.GetString("plant_preferences")
	}
	data.CustomerOptions = customerOptions(app, data.CustomerID)
	data.StatusOptions = templates.SelectOptions(services.DesignStatuses, data.Status)
	data.TypeOptions = templates.SelectOptions(services.ProjectTypeOptions, data.ProjectType)
	data.BudgetOptions = templates.SelectOptions(services.BudgetRangeOptions, data.BudgetRange)
	data.StyleOptions = templates.SelectOptions(services.DesignStyleOptions, data.Style)
	data.MaintenanceOptions = templates.SelectOptions(services.MaintenanceLevelOptions, data.MaintenanceLevel)
	return data
}
