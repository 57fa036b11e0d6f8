package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleLeadConvert creates a design project from a lead and marks the lead
// qualified. The two writes are sequential, not transactional; if the lead
// update fails after the project was created, the project stands and the
// failure is logged.
// Route: POST /leads/{id}/convert
func HandleLeadConvert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		lead, err := app.FindRecordById("leads", id)
		if err != nil {
			return ErrorToast(e, 404, "Lead not found")
		}

		projectsCol, err := app.FindCollectionByNameOrId("design_projects")
		if err != nil {
			return ErrorToast(e, 500, "Design projects collection is missing")
		}

		name := customerName(app, lead.GetString("customer"))
		title := name + " landscape design"
		if desc := lead.GetString("description"); desc != "" {
			title = desc
		}

		project := core.NewRecord(projectsCol)
		project.Set("customer", lead.GetString("customer"))
		project.Set("title", title)
		project.Set("status", "needs_estimate")
		project.Set("source_lead", lead.Id)
		if err := app.Save(project); err != nil {
			log.Printf("lead_convert: could not create design project from lead %s: %v", id, err)
			return ErrorToast(e, 500, "Could not create design project")
		}

		lead.Set("status", "qualified")
		if err := app.Save(lead); err != nil {
			log.Printf("lead_convert: project %s created but lead %s not updated: %v", project.Id, id, err)
		}

		SetToast(e, "success", "Lead converted to design project")
		if isHTMX(e) {
			e.Response.Header().Set("HX-Redirect", "/designs")
			return e.String(200, "")
		}
		return e.Redirect(303, "/designs")
	}
}
