package services_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"landscapedesk/services"
	"landscapedesk/testhelpers"
)

// memFile adapts a byte slice to multipart.File for upload tests.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func uploadFile(b []byte) multipart.File {
	return memFile{bytes.NewReader(b)}
}

func TestValidateCustomerFile_CSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	csv := []byte("First Name,Last Name,Email,Phone,Address,Notes\n" +
		"Elena,Garcia,elena@example.com,555-0101,1 Oak St,\n" +
		"Tom,Whitfield,tom@example.com,555-0102,2 Elm St,prefers mornings\n")

	result, err := services.ValidateCustomerFile(app, uploadFile(csv), "customers.csv")
	if err != nil {
		t.Fatalf("ValidateCustomerFile: %v", err)
	}

	if result.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", result.TotalRows)
	}
	if result.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.ValidRows)
	}
	if result.ErrorRows != 0 {
		t.Errorf("ErrorRows = %d, want 0: %v", result.ErrorRows, result.Errors)
	}
	if len(result.ParsedRows) != 2 {
		t.Fatalf("ParsedRows = %d, want 2", len(result.ParsedRows))
	}
	if result.ParsedRows[0]["first_name"] != "Elena" {
		t.Errorf("first row first_name = %q, want Elena", result.ParsedRows[0]["first_name"])
	}
}

func TestValidateCustomerFile_MissingRequired(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	csv := []byte("First Name,Last Name,Email\n" +
		",Garcia,elena@example.com\n" +
		"Tom,,not-an-email\n")

	result, err := services.ValidateCustomerFile(app, uploadFile(csv), "customers.csv")
	if err != nil {
		t.Fatalf("ValidateCustomerFile: %v", err)
	}

	if result.ErrorRows != 2 {
		t.Errorf("ErrorRows = %d, want 2", result.ErrorRows)
	}
	// Row 2 missing first_name; row 3 missing last_name and bad email.
	if len(result.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(result.Errors), result.Errors)
	}
}

func TestValidateCustomerFile_DuplicateEmails(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Existing", "Customer", "taken@example.com")

	csv := []byte("First Name,Last Name,Email\n" +
		"Elena,Garcia,taken@example.com\n" +
		"Tom,Whitfield,dup@example.com\n" +
		"Priya,Raman,dup@example.com\n")

	result, err := services.ValidateCustomerFile(app, uploadFile(csv), "customers.csv")
	if err != nil {
		t.Fatalf("ValidateCustomerFile: %v", err)
	}

	// One clash with the database, one clash inside the file.
	if result.ErrorRows != 2 {
		t.Errorf("ErrorRows = %d, want 2: %v", result.ErrorRows, result.Errors)
	}
}

func TestCommitCustomerImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rows := []map[string]string{
		{"first_name": "Elena", "last_name": "Garcia", "email": "elena@example.com"},
		{"first_name": "Tom", "last_name": "Whitfield", "email": "tom@example.com"},
	}

	result, err := services.CommitCustomerImport(app, rows)
	if err != nil {
		t.Fatalf("CommitCustomerImport: %v", err)
	}
	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("Imported/Failed = %d/%d, want 2/0", result.Imported, result.Failed)
	}

	saved, err := app.FindRecordsByFilter(
		"customers",
		"email = {:email}",
		"", 0, 0,
		map[string]any{"email": "elena@example.com"},
	)
	if err != nil || len(saved) != 1 {
		t.Fatalf("imported customer not found: %v", err)
	}
	if saved[0].GetString("first_name") != "Elena" {
		t.Errorf("first_name = %q, want Elena", saved[0].GetString("first_name"))
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"first.last@sub.domain.com", true},
		{"no-at-sign", false},
		{"two@@ats.com", false},
		{"spaces in@mail.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := services.ValidateEmail(tt.input); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
