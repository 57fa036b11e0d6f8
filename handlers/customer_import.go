package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

// HandleCustomerImportPage renders the upload form.
// Route: GET /customers/import
func HandleCustomerImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerImportData{}
		if isHTMX(e) {
			return templates.CustomerImportContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.CustomerImportPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomerValidate receives a file upload, validates it, and re-renders
// the import page with the validation results.
// Route: POST /customers/import
func HandleCustomerValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateCustomerFile(app, file, header.Filename)
		if err != nil {
			log.Printf("customer_validate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		data := templates.CustomerImportData{
			Result: &templates.ImportValidation{
				FileName:  result.FileName,
				TotalRows: result.TotalRows,
				ValidRows: result.ValidRows,
				ErrorRows: result.ErrorRows,
			},
		}
		for _, ve := range result.Errors {
			data.Result.Errors = append(data.Result.Errors, templates.ImportError{
				Row: ve.Row, Field: ve.Field, Message: ve.Message,
			})
		}

		// Serialized rows ride in a hidden form field so the commit post can
		// replay them without server-side sessions.
		if result.ErrorRows == 0 {
			b, err := json.Marshal(result.ParsedRows)
			if err != nil {
				log.Printf("customer_validate: marshal parsed rows: %v", err)
			} else {
				data.ParsedRowsJSON = string(b)
			}
		}
		if len(result.Errors) > 0 {
			b, err := json.Marshal(result.Errors)
			if err != nil {
				log.Printf("customer_validate: marshal errors: %v", err)
			} else {
				data.ErrorsJSON = string(b)
			}
		}

		return templates.CustomerImportPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomerImportCommit inserts the previously validated rows.
// Route: POST /customers/import/commit
func HandleCustomerImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		parsedJSON := e.Request.FormValue("parsed_rows_json")
		if parsedJSON == "" {
			return ErrorToast(e, http.StatusBadRequest, "File data missing. Please re-upload and try again.")
		}

		var parsedRows []map[string]string
		if err := json.Unmarshal([]byte(parsedJSON), &parsedRows); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid parsed data")
		}

		result, err := services.CommitCustomerImport(app, parsedRows)
		if err != nil {
			log.Printf("customer_import_commit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if result.Failed > 0 {
			data := templates.CustomerImportData{}
			for _, ie := range result.Errors {
				data.CommitErrors = append(data.CommitErrors,
					fmt.Sprintf("Row %d: %s", ie.Row, ie.Message))
			}
			return templates.CustomerImportPage(data, sidebarFor(e, "customers")).Render(e.Request.Context(), e.Response)
		}

		SetToast(e, "success", fmt.Sprintf("%d customers imported successfully", result.Imported))
		return e.Redirect(303, "/customers")
	}
}

// HandleCustomerErrorReport downloads the validation errors as an Excel file.
// Route: POST /customers/import/errors
func HandleCustomerErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		errorsJSON := e.Request.FormValue("errors_json")
		var validationErrors []services.ValidationError
		if err := json.Unmarshal([]byte(errorsJSON), &validationErrors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		buf, err := services.GenerateErrorReport(validationErrors)
		if err != nil {
			log.Printf("customer_error_report: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		fileName := fmt.Sprintf("Customer_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		return e.Blob(200, excelContentType, buf)
	}
}

// HandleCustomerTemplate downloads the blank import template.
// Route: GET /customers/import/template
func HandleCustomerTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buf, err := services.GenerateCustomerTemplate()
		if err != nil {
			log.Printf("customer_template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate template")
		}

		e.Response.Header().Set("Content-Disposition", `attachment; filename="Customer_Import_Template.xlsx"`)
		return e.Blob(200, excelContentType, buf)
	}
}
