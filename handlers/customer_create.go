package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleCustomerCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerFormData{Errors: map[string]string{}}
		return templates.CustomerFormPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := customerFormFromRequest(e)
		validateCustomerForm(&data)
		if len(data.Errors) > 0 {
			return templates.CustomerFormPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			return ErrorToast(e, 500, "Customers collection is missing")
		}

		rec := core.NewRecord(col)
		applyCustomerForm(rec, data)
		if err := app.Save(rec); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return ErrorToast(e, 500, "Could not save customer")
		}

		SetToast(e, "success", "Customer created")
		return e.Redirect(303, "/customers")
	}
}

func customerFormFromRequest(e *core.RequestEvent) templates.CustomerFormData {
	return templates.CustomerFormData{
		FirstName: strings.TrimSpace(e.Request.FormValue("first_name")),
		LastName:  strings.TrimSpace(e.Request.FormValue("last_name")),
		Email:     strings.TrimSpace(e.Request.FormValue("email")),
		Phone:     strings.TrimSpace(e.Request.FormValue("phone")),
		Address:   strings.TrimSpace(e.Request.FormValue("address")),
		Notes:     strings.TrimSpace(e.Request.FormValue("notes")),
		Errors:    map[string]string{},
	}
}

func validateCustomerForm(data *templates.CustomerFormData) {
	if data.FirstName == "" {
		data.Errors["first_name"] = "First name is required"
	}
	if data.LastName == "" {
		data.Errors["last_name"] = "Last name is required"
	}
	if data.Email != "" && !services.ValidateEmail(data.Email) {
		data.Errors["email"] = "Invalid email address"
	}
}

func applyCustomerForm(rec *core.Record, data templates.CustomerFormData) {
	rec.Set("first_name", data.FirstName)
	rec.Set("last_name", data.LastName)
	rec.Set("email", data.Email)
	rec.Set("phone", data.Phone)
	rec.Set("address", data.Address)
	rec.Set("notes", data.Notes)
}
