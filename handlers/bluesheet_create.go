package handlers

import (
	"log"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleBlueSheetCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := blueSheetFormData(app, nil)
		return templates.BlueSheetFormPage(data, sidebarFor(e, "bluesheets")).Render(e.Request.Context(), e.Response)
	}
}

func HandleBlueSheetCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form, errs := blueSheetFormFromRequest(app, e)
		if len(errs) > 0 {
			data := blueSheetFormData(app, nil)
			data.Errors = errs
			return templates.BlueSheetFormPage(data, sidebarFor(e, "bluesheets")).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("blue_sheets")
		if err != nil {
			return ErrorToast(e, 500, "Blue sheets collection is missing")
		}

		rec := core.NewRecord(col)
		applyBlueSheetForm(rec, form)
		if err := app.Save(rec); err != nil {
			log.Printf("bluesheet_create: could not save blue sheet: %v", err)
			return ErrorToast(e, 500, "Could not save blue sheet")
		}

		SetToast(e, "success", "Blue sheet created")
		return e.Redirect(303, "/bluesheets")
	}
}

type blueSheetForm struct {
	Customer          string
	Designer          string
	Status            string
	Priority          string
	ProjectType       string
	Services          []string
	CompletionPercent int
}

func blueSheetFormFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) (blueSheetForm, map[string]string) {
	if err := e.Request.ParseForm(); err != nil {
		return blueSheetForm{}, map[string]string{"customer": "Invalid form data"}
	}

	form := blueSheetForm{
		Customer:    e.Request.FormValue("customer"),
		Designer:    e.Request.FormValue("designer"),
		Status:      e.Request.FormValue("status"),
		Priority:    e.Request.FormValue("priority"),
		ProjectType: e.Request.FormValue("project_type"),
		Services:    e.Request.Form["services"],
	}

	errs := map[string]string{}
	if form.Customer == "" {
		errs["customer"] = "Customer is required"
	} else if _, err := app.FindRecordById("customers", form.Customer); err != nil {
		errs["customer"] = "Customer not found"
	}
	if form.Designer == "" {
		errs["designer"] = "Designer is required"
	} else if _, err := app.FindRecordById("staff", form.Designer); err != nil {
		errs["designer"] = "Designer not found"
	}
	if form.Status == "" {
		form.Status = "draft"
	}
	if !services.IsValidStatus("blue_sheets", form.Status) {
		errs["status"] = "Invalid status"
	}

	if v := e.Request.FormValue("completion_percent"); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil || pct < 0 || pct > 100 {
			errs["completion_percent"] = "Completion must be between 0 and 100"
		} else {
			form.CompletionPercent = pct
		}
	}
	return form, errs
}

func applyBlueSheetForm(rec *core.Record, form blueSheetForm) {
	rec.Set("customer", form.Customer)
	rec.Set("designer", form.Designer)
	rec.Set("status", form.Status)
	rec.Set("priority", form.Priority)
	rec.Set("project_type", form.ProjectType)
	rec.Set("services", form.Services)
	rec.Set("completion_percent", form.CompletionPercent)
}

func blueSheetFormData(app *pocketbase.PocketBase, rec *core.Record) templates.BlueSheetFormData {
	data := templates.BlueSheetFormData{
		Status:            "draft",
		Priority:          "medium",
		CompletionPercent: "0",
		ServiceOptions:    services.ServiceTagOptions,
		Errors:            map[string]string{},
	}
	if rec != nil {
		data.ID = rec.Id
		data.CustomerID = rec.GetString("customer")
		data.DesignerID = rec.GetString("designer")
		data.Status = rec.GetString("status")
		data.Priority = rec.GetString("priority")
		data.ProjectType = rec.GetString("project_type")
		data.Services = rec.GetStringSlice("services")
		data.CompletionPercent = strconv.Itoa(rec.GetInt("completion_percent"))
	}
	data.CustomerOptions = customerOptions(app, data.CustomerID)
	data.DesignerOptions = designerOptions(app, data.DesignerID)
	data.StatusOptions = templates.SelectOptions(services.BlueSheetStatuses, data.Status)
	data.PriorityOptions = templates.SelectOptions(services.LeadPriorityOptions, data.Priority)
	data.TypeOptions = templates.SelectOptions(services.ProjectTypeOptions, data.ProjectType)
	return data
}

// designerOptions lists staff without the unassigned entry, since a blue
// sheet always has a designer.
func designerOptions(app *pocketbase.PocketBase, selected string) []templates.Option {
	col, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil
	}

	opts := make([]templates.Option, 0, len(records))
	for _, rec := range records {
		opts = append(opts, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("name"),
			Selected: rec.Id == selected,
		})
	}
	return opts
}
