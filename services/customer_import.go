package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// TemplateField describes one column in the customer import template.
type TemplateField struct {
	Key          string // PocketBase field name
	Label        string // column header
	ExampleValue string
	Required     bool
}

// CustomerTemplateFields returns the ordered import columns for customers.
func CustomerTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "first_name", Label: "First Name", ExampleValue: "Maria", Required: true},
		{Key: "last_name", Label: "Last Name", ExampleValue: "Garcia", Required: true},
		{Key: "email", Label: "Email", ExampleValue: "maria@example.com"},
		{Key: "phone", Label: "Phone", ExampleValue: "555-0142"},
		{Key: "address", Label: "Address", ExampleValue: "48 Cedar Hollow Ln"},
		{Key: "notes", Label: "Notes", ExampleValue: "Prefers morning calls"},
	}
}

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned after parsing and validating an uploaded file.
type ValidationResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []ValidationError   `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
	FileName   string              `json:"-"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to template field keys.
// Returns one key per column ("" for unrecognized) plus the unrecognized
// header labels.
func mapHeadersToFields(headers []string, fields []TemplateField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		labelToKey[strings.ToLower(strings.TrimSpace(f.Label))] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))
		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

// ValidateCustomerFile parses and validates an uploaded customer file
// (.csv or .xlsx, chosen by extension).
func ValidateCustomerFile(app *pocketbase.PocketBase, file multipart.File, fileName string) (*ValidationResult, error) {
	fields := CustomerTemplateFields()

	var headers []string
	var dataRows [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		headers, dataRows, err = parseExcel(file)
	} else {
		headers, dataRows, err = parseCSV(file)
	}
	if err != nil {
		return nil, err
	}

	mapped, unrecognized := mapHeadersToFields(headers, fields)
	result := &ValidationResult{FileName: fileName}
	for _, u := range unrecognized {
		result.Errors = append(result.Errors, ValidationError{
			Row: 1, Field: u, Message: "Unrecognized column (will be ignored)",
		})
	}

	existingEmails := loadCustomerEmails(app)
	seenEmails := make(map[string]int)

	for i, raw := range dataRows {
		rowNum := i + 2 // 1-based plus header row

		data := make(map[string]string, len(fields))
		for colIdx, key := range mapped {
			if key == "" || colIdx >= len(raw) {
				continue
			}
			data[key] = strings.TrimSpace(raw[colIdx])
		}

		// Skip fully empty rows.
		empty := true
		for _, v := range data {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		result.TotalRows++
		rowErrs := validateCustomerRow(rowNum, data, existingEmails, seenEmails)
		if len(rowErrs) > 0 {
			result.ErrorRows++
			result.Errors = append(result.Errors, rowErrs...)
		} else {
			result.ValidRows++
		}
		result.ParsedRows = append(result.ParsedRows, data)
	}

	return result, nil
}

func validateCustomerRow(rowNum int, data map[string]string, existingEmails map[string]bool, seenEmails map[string]int) []ValidationError {
	var errs []ValidationError

	if data["first_name"] == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "First Name", Message: "First name is required"})
	}
	if data["last_name"] == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Last Name", Message: "Last name is required"})
	}
	if v := data["email"]; v != "" {
		if !ValidateEmail(v) {
			errs = append(errs, ValidationError{Row: rowNum, Field: "Email", Message: "Invalid email format"})
		} else {
			key := strings.ToLower(v)
			if existingEmails[key] {
				errs = append(errs, ValidationError{Row: rowNum, Field: "Email", Message: "A customer with this email already exists"})
			} else if first, dup := seenEmails[key]; dup {
				errs = append(errs, ValidationError{Row: rowNum, Field: "Email", Message: fmt.Sprintf("Duplicate of row %d in this file", first)})
			} else {
				seenEmails[key] = rowNum
			}
		}
	}

	return errs
}

// loadCustomerEmails fetches all existing customer emails, lowercased.
func loadCustomerEmails(app *pocketbase.PocketBase) map[string]bool {
	emails := make(map[string]bool)
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return emails
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return emails
	}
	for _, r := range records {
		if e := r.GetString("email"); e != "" {
			emails[strings.ToLower(e)] = true
		}
	}
	return emails
}

// ImportResult holds the outcome of a commit.
type ImportResult struct {
	TotalRows int               `json:"total_rows"`
	Imported  int               `json:"imported"`
	Failed    int               `json:"failed"`
	Errors    []ValidationError `json:"errors,omitempty"`
}

// CommitCustomerImport inserts previously validated rows. Each row is an
// independent insert; a failed row is recorded and the rest continue.
func CommitCustomerImport(app *pocketbase.PocketBase, parsedRows []map[string]string) (*ImportResult, error) {
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil, fmt.Errorf("customers collection not found: %w", err)
	}

	result := &ImportResult{TotalRows: len(parsedRows)}
	for i, data := range parsedRows {
		record := core.NewRecord(col)
		for _, f := range CustomerTemplateFields() {
			record.Set(f.Key, data[f.Key])
		}
		if err := app.Save(record); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ValidationError{
				Row: i + 2, Field: "", Message: err.Error(),
			})
			continue
		}
		result.Imported++
	}
	return result, nil
}

// GenerateCustomerTemplate creates a downloadable .xlsx import template with
// a header row and one example row.
func GenerateCustomerTemplate() ([]byte, error) {
	fields := CustomerTemplateFields()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Customers"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F442C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	for i, field := range fields {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		label := field.Label
		if field.Required {
			label += " *"
		}
		f.SetCellValue(sheetName, colName+"1", label)
		f.SetCellValue(sheetName, colName+"2", field.ExampleValue)
		f.SetColWidth(sheetName, colName, colName, 24)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(fields))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation
// errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
