package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/templates"
)

func HandleCustomerEditForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("customers", id)
		if err != nil {
			return ErrorToast(e, 404, "Customer not found")
		}

		data := templates.CustomerFormData{
			ID:        rec.Id,
			FirstName: rec.GetString("first_name"),
			LastName:  rec.GetString("last_name"),
			Email:     rec.GetString("email"),
			Phone:     rec.GetString("phone"),
			Address:   rec.GetString("address"),
			Notes:     rec.GetString("notes"),
			Errors:    map[string]string{},
		}
		return templates.CustomerFormPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("customers", id)
		if err != nil {
			return ErrorToast(e, 404, "Customer not found")
		}

		data := customerFormFromRequest(e)
		data.ID = rec.Id
		validateCustomerForm(&data)
		if len(data.Errors) > 0 {
			return templates.CustomerFormPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
		}

		applyCustomerForm(rec, data)
		if err := app.Save(rec); err != nil {
			log.Printf("customer_edit: could not save customer %s: %v", id, err)
			return ErrorToast(e, 500, "Could not save customer")
		}

		SetToast(e, "success", "Customer updated")
		return e.Redirect(303, "/customers")
	}
}

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("customers", id)
		if err != nil {
			return ErrorToast(e, 404, "Customer not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("customer_delete: could not delete customer %s: %v", id, err)
			return ErrorToast(e, 500, "Could not delete customer")
		}

		SetToast(e, "success", "Customer deleted")
		return e.Redirect(303, "/customers")
	}
}
