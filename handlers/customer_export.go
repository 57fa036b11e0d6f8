package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleCustomerExport streams every customer as an .xlsx download.
func HandleCustomerExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.BuildCustomerExportData(app)
		if err != nil {
			log.Printf("customer_export: %v", err)
			return ErrorToast(e, 500, "Could not build customer export")
		}

		buf, err := services.GenerateCustomerExcel(rows)
		if err != nil {
			log.Printf("customer_export: could not generate workbook: %v", err)
			return ErrorToast(e, 500, "Could not generate customer export")
		}

		fileName := fmt.Sprintf("customers_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		return e.Blob(200, excelContentType, buf)
	}
}
