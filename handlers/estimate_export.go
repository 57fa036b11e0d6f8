package handlers

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"landscapedesk/services"
)

// HandleEstimatePDF streams the estimate as a PDF download.
// Route: GET /estimates/{id}/export/pdf
func HandleEstimatePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		data, err := services.BuildEstimateExportData(app, id)
		if err != nil {
			log.Printf("estimate_pdf: %v", err)
			return ErrorToast(e, 404, "Estimate not found")
		}

		pdf, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Printf("estimate_pdf: could not generate PDF: %v", err)
			return ErrorToast(e, 500, "Could not generate PDF")
		}

		fileName := fmt.Sprintf("%s.pdf", data.Number)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		return e.Blob(200, "application/pdf", pdf)
	}
}

// HandleEstimateAttachPDF generates the PDF and stores it on the estimate's
// document file field, so the rendered snapshot travels with the record.
// Route: POST /estimates/{id}/attach-pdf
func HandleEstimateAttachPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		estimate, err := app.FindRecordById("estimates", id)
		if err != nil {
			return ErrorToast(e, 404, "Estimate not found")
		}

		data, err := services.BuildEstimateExportData(app, id)
		if err != nil {
			log.Printf("estimate_attach: %v", err)
			return ErrorToast(e, 500, "Could not build estimate export")
		}
		pdf, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Printf("estimate_attach: could not generate PDF: %v", err)
			return ErrorToast(e, 500, "Could not generate PDF")
		}

		file, err := filesystem.NewFileFromBytes(pdf, data.Number+".pdf")
		if err != nil {
			log.Printf("estimate_attach: could not wrap PDF bytes: %v", err)
			return ErrorToast(e, 500, "Could not attach PDF")
		}

		estimate.Set("document", file)
		if err := app.Save(estimate); err != nil {
			log.Printf("estimate_attach: could not save estimate %s: %v", id, err)
			return ErrorToast(e, 500, "Could not attach PDF")
		}

		SetToast(e, "success", "PDF attached to estimate")
		return HandleEstimateView(app)(e)
	}
}
