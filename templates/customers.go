package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// CustomerListItem is one row of the customer table.
type CustomerListItem struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	LeadCount   int
	CreatedDate string
}

// CustomerListData feeds the customer list view.
type CustomerListData struct {
	Items      []CustomerListItem
	TotalCount int
	Query      string
}

func CustomerListPage(data CustomerListData, sidebar SidebarData) templ.Component {
	return shell("Customers", sidebar, CustomerListContent(data))
}

func CustomerListContent(data CustomerListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Customers <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<div class=\"flex gap-2\">")
		b.WriteString("<a href=\"/customers/import\" class=\"btn btn-sm\">Import</a>")
		b.WriteString("<a href=\"/customers/export\" class=\"btn btn-sm\">Export</a>")
		b.WriteString("<a href=\"/customers/create\" class=\"btn btn-sm btn-primary\">New Customer</a>")
		b.WriteString("</div></div>")

		b.WriteString("<form method=\"get\" action=\"/customers\" class=\"mb-4\" hx-get=\"/customers\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search customers...\" class=\"input input-bordered input-sm w-72\">", esc(data.Query))
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No customers found.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Name</th><th>Email</th><th>Phone</th><th>Address</th><th>Leads</th><th>Created</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-medium\">%s</td>", esc(item.Name))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Email))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Phone))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Address))
			fmt.Fprintf(b, "<td>%d</td>", item.LeadCount)
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CreatedDate))
			fmt.Fprintf(b, "<td><a href=\"/customers/%s/edit\" class=\"btn btn-ghost btn-xs\">Edit</a></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// CustomerFormData feeds both the create and edit forms.
type CustomerFormData struct {
	ID        string // empty on create
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	Errors    map[string]string
}

func CustomerFormPage(data CustomerFormData, sidebar SidebarData) templ.Component {
	title := "New Customer"
	if data.ID != "" {
		title = "Edit Customer"
	}
	return shell(title, sidebar, CustomerFormContent(data))
}

func CustomerFormContent(data CustomerFormData) templ.Component {
	return component(func(b *strings.Builder) {
		action := "/customers"
		heading := "New Customer"
		if data.ID != "" {
			action = fmt.Sprintf("/customers/%s/save", data.ID)
			heading = "Edit Customer"
		}
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold mb-4\">%s</h1>", heading)
		fmt.Fprintf(b, "<form method=\"post\" action=\"%s\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">", action)
		writeTextInput(b, "first_name", "First name", data.FirstName, data.Errors["first_name"])
		writeTextInput(b, "last_name", "Last name", data.LastName, data.Errors["last_name"])
		writeTextInput(b, "email", "Email", data.Email, data.Errors["email"])
		writeTextInput(b, "phone", "Phone", data.Phone, data.Errors["phone"])
		writeTextInput(b, "address", "Address", data.Address, data.Errors["address"])
		writeTextInput(b, "notes", "Notes", data.Notes, data.Errors["notes"])
		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Save</button>")
		b.WriteString("<a href=\"/customers\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}

// CustomerImportData feeds the import page, before and after validation.
// ParsedRowsJSON and ErrorsJSON ride along in hidden form fields so the
// commit / error-report posts can replay them without server-side sessions.
type CustomerImportData struct {
	Result         *ImportValidation
	ParsedRowsJSON string
	ErrorsJSON     string
	CommitErrors   []string
}

// ImportValidation mirrors services.ValidationResult for rendering.
type ImportValidation struct {
	FileName  string
	TotalRows int
	ValidRows int
	ErrorRows int
	Errors    []ImportError
}

type ImportError struct {
	Row     int
	Field   string
	Message string
}

func CustomerImportPage(data CustomerImportData, sidebar SidebarData) templ.Component {
	return shell("Import Customers", sidebar, CustomerImportContent(data))
}

func CustomerImportContent(data CustomerImportData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<h1 class=\"text-2xl font-bold mb-4\">Import Customers</h1>")
		b.WriteString("<div class=\"bg-base-100 p-6 rounded-box max-w-2xl\">")
		b.WriteString("<p class=\"mb-3\">Upload a .csv or .xlsx file. <a href=\"/customers/import/template\" class=\"link\">Download the template</a>.</p>")
		b.WriteString("<form method=\"post\" action=\"/customers/import\" enctype=\"multipart/form-data\" class=\"flex gap-2 items-center\">")
		b.WriteString("<input type=\"file\" name=\"file\" accept=\".csv,.xlsx\" class=\"file-input file-input-bordered file-input-sm\" required>")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Validate</button>")
		b.WriteString("</form>")

		if data.Result != nil {
			r := data.Result
			fmt.Fprintf(b, "<div class=\"stats mt-6\"><div class=\"stat\"><div class=\"stat-title\">Rows</div><div class=\"stat-value text-lg\">%d</div></div>", r.TotalRows)
			fmt.Fprintf(b, "<div class=\"stat\"><div class=\"stat-title\">Valid</div><div class=\"stat-value text-lg text-success\">%d</div></div>", r.ValidRows)
			fmt.Fprintf(b, "<div class=\"stat\"><div class=\"stat-title\">Errors</div><div class=\"stat-value text-lg text-error\">%d</div></div></div>", r.ErrorRows)

			if len(r.Errors) > 0 {
				b.WriteString("<table class=\"table table-sm mt-4\"><thead><tr><th>Row</th><th>Field</th><th>Error</th></tr></thead><tbody>")
				for _, e := range r.Errors {
					fmt.Fprintf(b, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>", e.Row, esc(e.Field), esc(e.Message))
				}
				b.WriteString("</tbody></table>")
				b.WriteString("<form method=\"post\" action=\"/customers/import/errors\" class=\"mt-2\">")
				fmt.Fprintf(b, "<input type=\"hidden\" name=\"errors_json\" value=\"%s\">", esc(data.ErrorsJSON))
				b.WriteString("<button type=\"submit\" class=\"btn btn-sm\">Download error report</button></form>")
			}
			if r.ErrorRows == 0 && r.ValidRows > 0 {
				b.WriteString("<form method=\"post\" action=\"/customers/import/commit\" class=\"mt-4\">")
				fmt.Fprintf(b, "<input type=\"hidden\" name=\"parsed_rows_json\" value=\"%s\">", esc(data.ParsedRowsJSON))
				fmt.Fprintf(b, "<button type=\"submit\" class=\"btn btn-primary btn-sm\">Import %d customers</button></form>", r.ValidRows)
			}
		}
		for _, msg := range data.CommitErrors {
			fmt.Fprintf(b, "<div class=\"alert alert-error mt-4\">%s</div>", esc(msg))
		}
		b.WriteString("</div>")
	})
}
