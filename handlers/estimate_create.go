package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"landscapedesk/services"
	"landscapedesk/templates"
)

func HandleEstimateCreateForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := estimateCreateData(app, "")
		return templates.EstimateCreatePage(data, sidebarFor(e, "estimates")).Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimateCreate creates a draft estimate for a design project with a
// generated number and the default markup/tax percentages.
// Route: POST /estimates
func HandleEstimateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.FormValue("design_project")
		errs := map[string]string{}

		if projectID == "" {
			errs["design_project"] = "Design project is required"
		} else if _, err := app.FindRecordById("design_projects", projectID); err != nil {
			errs["design_project"] = "Design project not found"
		}

		markup := services.DefaultMarkupPercent
		if v := e.Request.FormValue("markup_percent"); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 {
				errs["markup_percent"] = "Markup must be a non-negative number"
			} else {
				markup = parsed
			}
		}
		tax := services.DefaultTaxPercent
		if v := e.Request.FormValue("tax_percent"); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 {
				errs["tax_percent"] = "Tax must be a non-negative number"
			} else {
				tax = parsed
			}
		}

		if len(errs) > 0 {
			data := estimateCreateData(app, projectID)
			data.MarkupPercent = e.Request.FormValue("markup_percent")
			data.TaxPercent = e.Request.FormValue("tax_percent")
			data.Errors = errs
			return templates.EstimateCreatePage(data, sidebarFor(e, "estimates")).Render(e.Request.Context(), e.Response)
		}

		number, err := services.GenerateEstimateNumber(app, time.Now())
		if err != nil {
			log.Printf("estimate_create: could not generate number: %v", err)
			return ErrorToast(e, 500, "Could not generate estimate number")
		}

		col, err := app.FindCollectionByNameOrId("estimates")
		if err != nil {
			return ErrorToast(e, 500, "Estimates collection is missing")
		}

		rec := core.NewRecord(col)
		rec.Set("design_project", projectID)
		rec.Set("number", number)
		rec.Set("status", "draft")
		rec.Set("markup_percent", markup)
		rec.Set("tax_percent", tax)
		expires, _ := types.ParseDateTime(time.Now().AddDate(0, 1, 0))
		rec.Set("expires", expires)
		if err := app.Save(rec); err != nil {
			log.Printf("estimate_create: could not save estimate: %v", err)
			return ErrorToast(e, 500, "Could not save estimate")
		}

		SetToast(e, "success", "Estimate "+number+" created")
		return e.Redirect(303, "/estimates/"+rec.Id)
	}
}

func estimateCreateData(app *pocketbase.PocketBase, selected string) templates.EstimateCreateData {
	data := templates.EstimateCreateData{
		MarkupPercent: strconv.FormatFloat(services.DefaultMarkupPercent, 'f', -1, 64),
		TaxPercent:    strconv.FormatFloat(services.DefaultTaxPercent, 'f', -1, 64),
		Errors:        map[string]string{},
	}

	col, err := app.FindCollectionByNameOrId("design_projects")
	if err != nil {
		return data
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return data
	}
	for _, rec := range records {
		data.ProjectOptions = append(data.ProjectOptions, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("title"),
			Selected: rec.Id == selected,
		})
	}
	return data
}
