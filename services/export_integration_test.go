package services_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"landscapedesk/services"
	"landscapedesk/testhelpers"
)

func TestBuildEstimateExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Elena", "Garcia", "elena@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Courtyard redesign")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0001")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, "Boxwood shrubs", 2, 10.00)
	testhelpers.CreateTestLineItem(t, app, estimate.Id, "Mulch delivery", 1, 25.50)

	if _, err := services.RecalcEstimateTotals(app, estimate.Id); err != nil {
		t.Fatalf("recalc: %v", err)
	}

	data, err := services.BuildEstimateExportData(app, estimate.Id)
	if err != nil {
		t.Fatalf("BuildEstimateExportData: %v", err)
	}

	if data.Number != "EST-26-0001" {
		t.Errorf("Number = %q, want EST-26-0001", data.Number)
	}
	if data.CustomerName != "Elena Garcia" {
		t.Errorf("CustomerName = %q, want Elena Garcia", data.CustomerName)
	}
	if data.ProjectTitle != "Courtyard redesign" {
		t.Errorf("ProjectTitle = %q", data.ProjectTitle)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}
	if data.Rows[0].Description != "Boxwood shrubs" {
		t.Errorf("first row = %q, want Boxwood shrubs", data.Rows[0].Description)
	}
	if data.Subtotal != 45.50 {
		t.Errorf("Subtotal = %v, want 45.50", data.Subtotal)
	}
}

func TestGenerateEstimatePDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Tom", "Whitfield", "tom@example.com")
	project := testhelpers.CreateTestDesignProject(t, app, customer.Id, "Front yard")
	estimate := testhelpers.CreateTestEstimate(t, app, project.Id, "EST-26-0002")
	testhelpers.CreateTestLineItem(t, app, estimate.Id, "Sod installation", 400, 1.25)

	data, err := services.BuildEstimateExportData(app, estimate.Id)
	if err != nil {
		t.Fatalf("BuildEstimateExportData: %v", err)
	}

	pdf, err := services.GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("generated PDF is empty")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestGenerateCustomerExcel(t *testing.T) {
	rows := []services.CustomerExportRow{
		{FirstName: "Elena", LastName: "Garcia", Email: "elena@example.com", Phone: "555-0101", LeadCount: 2},
		{FirstName: "Tom", LastName: "Whitfield", Email: "tom@example.com", Notes: "=SUM(A1)"},
	}

	buf, err := services.GenerateCustomerExcel(rows)
	if err != nil {
		t.Fatalf("GenerateCustomerExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	got, err := f.GetCellValue(sheet, "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "Elena" {
		t.Errorf("A2 = %q, want Elena", got)
	}

	// Formula-looking cells are neutralized on export.
	notes, _ := f.GetCellValue(sheet, "F3")
	if len(notes) > 0 && notes[0] == '=' {
		t.Errorf("notes cell kept leading '=': %q", notes)
	}
}

func TestGenerateCustomerTemplate(t *testing.T) {
	buf, err := services.GenerateCustomerTemplate()
	if err != nil {
		t.Fatalf("GenerateCustomerTemplate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, _ := f.GetCellValue(sheet, "A1")
	if header != "First Name *" {
		t.Errorf("A1 = %q, want 'First Name *'", header)
	}
}

func TestGenerateErrorReport(t *testing.T) {
	errs := []services.ValidationError{
		{Row: 2, Field: "Email", Message: "Invalid email format"},
		{Row: 5, Field: "First Name", Message: "First name is required"},
	}

	buf, err := services.GenerateErrorReport(errs)
	if err != nil {
		t.Fatalf("GenerateErrorReport: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	msg, _ := f.GetCellValue("Errors", "C2")
	if msg != "Invalid email format" {
		t.Errorf("C2 = %q, want 'Invalid email format'", msg)
	}
}
