package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleLeadCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := leadFormData(app, nil)
		return templates.LeadFormPage(data, sidebarFor(e, "leads")).Render(e.Request.Context(), e.Response)
	}
}

func HandleLeadCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form, errs := leadFormFromRequest(app, e)
		if len(errs) > 0 {
			data := leadFormData(app, nil)
			applyLeadFormValues(&data, e)
			data.Errors = errs
			return templates.LeadFormPage(data, sidebarFor(e, "leads")).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			return ErrorToast(e, 500, "Leads collection is missing")
		}

		rec := core.NewRecord(col)
		applyLeadForm(rec, form)
		rec.Set("last_contact", types.NowDateTime())
		if err := app.Save(rec); err != nil {
			log.Printf("lead_create: could not save lead: %v", err)
			return ErrorToast(e, 500, "Could not save lead")
		}

		SetToast(e, "success", "Lead created")
		return e.Redirect(303, "/leads")
	}
}

// leadForm holds a parsed intake form.
type leadForm struct {
	Customer    string
	Source      string
	Status      string
	Priority    string
	Services    []string
	Description string
	AssignedTo  string
}

func leadFormFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) (leadForm, map[string]string) {
	if err := e.Request.ParseForm(); err != nil {
		return leadForm{}, map[string]string{"customer": "Invalid form data"}
	}

	form := leadForm{
		Customer:    e.Request.FormValue("customer"),
		Source:      e.Request.FormValue("source"),
		Status:      e.Request.FormValue("status"),
		Priority:    e.Request.FormValue("priority"),
		Services:    e.Request.Form["services"],
		Description: strings.TrimSpace(e.Request.FormValue("description")),
		AssignedTo:  e.Request.FormValue("assigned_to"),
	}

	errs := map[string]string{}
	if form.Customer == "" {
		errs["customer"] = "Customer is required"
	} else if _, err := app.FindRecordById("customers", form.Customer); err != nil {
		errs["customer"] = "Customer not found"
	}
	if form.Status == "" {
		form.Status = "new"
	}
	if !services.IsValidStatus("leads", form.Status) {
		errs["status"] = "Invalid status"
	}
	return form, errs
}

func applyLeadForm(rec *core.Record, form leadForm) {
	rec.Set("customer", form.Customer)
	rec.Set("source", form.Source)
	rec.Set("status", form.Status)
	rec.Set("priority", form.Priority)
	rec.Set("services", form.Services)
	rec.Set("description", form.Description)
	rec.Set("assigned_to", form.AssignedTo)
}

// leadFormData builds the form view model, prefilled from rec when editing.
func leadFormData(app *pocketbase.PocketBase, rec *core.Record) templates.LeadFormData {
	data := templates.LeadFormData{
		Status:         "new",
		Priority:       "medium",
		ServiceOptions: services.ServiceTagOptions,
		Errors:         map[string]string{},
	}
	if rec != nil {
		data.ID = rec.Id
		data.CustomerID = rec.GetString("customer")
		data.Source = rec.GetString("source")
		data.Status = rec.GetString("status")
		data.Priority = rec.GetString("priority")
		data.Services = rec.GetStringSlice("services")
		data.Description = rec.GetString("description")
		data.AssignedTo = rec.GetString("assigned_to")
	}
	data.CustomerOptions = customerOptions(app, data.CustomerID)
	data.SourceOptions = templates.SelectOptions(services.LeadSourceOptions, data.Source)
	data.StatusOptions = templates.SelectOptions(services.LeadStatuses, data.Status)
	data.PriorityOptions = templates.SelectOptions(services.LeadPriorityOptions, data.Priority)
	data.StaffOptions = staffOptions(app, data.AssignedTo)
	return data
}

// applyLeadFormValues re-selects the submitted values after a validation
// failure so the user does not lose their input.
func applyLeadFormValues(data *templates.LeadFormData, e *core.RequestEvent) {
	data.CustomerOptions = reselect(data.CustomerOptions, e.Request.FormValue("customer"))
	data.SourceOptions = reselect(data.SourceOptions, e.Request.FormValue("source"))
	data.StatusOptions = reselect(data.StatusOptions, e.Request.FormValue("status"))
	data.PriorityOptions = reselect(data.PriorityOptions, e.Request.FormValue("priority"))
	data.StaffOptions = reselect(data.StaffOptions, e.Request.FormValue("assigned_to"))
	data.Services = e.Request.Form["services"]
	data.Description = strings.TrimSpace(e.Request.FormValue("description"))
}

func reselect(opts []templates.Option, value string) []templates.Option {
	for i := range opts {
		opts[i].Selected = opts[i].Value == value
	}
	return opts
}
