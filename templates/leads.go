package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// LeadListItem is one row of the lead table.
type LeadListItem struct {
	ID               string
	CustomerName     string
	Source           string
	Status           string
	StatusBadgeClass string
	Priority         string
	Services         []string
	AssignedTo       string
	Description      string
	Stale            bool
	CreatedDate      string
}

// LeadListData feeds the lead list view.
type LeadListData struct {
	Items          []LeadListItem
	TotalCount     int
	Query          string
	Tabs           []TabLink
	SourceFilter   []Option
	PriorityFilter []Option
	StatusOptions  []string
}

func LeadListPage(data LeadListData, sidebar SidebarData) templ.Component {
	return shell("Leads", sidebar, LeadListContent(data))
}

func LeadListContent(data LeadListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Leads <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<a href=\"/leads/create\" class=\"btn btn-sm btn-primary\">New Lead</a>")
		b.WriteString("</div>")

		writeTabs(b, data.Tabs)

		b.WriteString("<form method=\"get\" action=\"/leads\" class=\"flex gap-2 items-end mb-4\" hx-get=\"/leads\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search leads...\" class=\"input input-bordered input-sm w-64\">", esc(data.Query))
		writeSelect(b, "source", "Source", data.SourceFilter)
		writeSelect(b, "priority", "Priority", data.PriorityFilter)
		b.WriteString("<button type=\"submit\" class=\"btn btn-sm\">Filter</button>")
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No leads match the current filters.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Customer</th><th>Source</th><th>Status</th><th>Priority</th><th>Services</th><th>Assigned</th><th>Created</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-medium\">%s", esc(item.CustomerName))
			if item.Stale {
				b.WriteString(" <span class=\"badge badge-warning badge-sm\" title=\"No contact in 14 days\">stale</span>")
			}
			b.WriteString("</td>")
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Source))
			writeStatusCell(b, "/leads/"+item.ID+"/status", item.Status, item.StatusBadgeClass, data.StatusOptions)
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Priority))
			fmt.Fprintf(b, "<td>%s</td>", esc(strings.Join(item.Services, ", ")))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.AssignedTo))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CreatedDate))
			fmt.Fprintf(b, "<td class=\"flex gap-1\"><a href=\"/leads/%s/edit\" class=\"btn btn-ghost btn-xs\">Edit</a>", esc(item.ID))
			fmt.Fprintf(b, "<button class=\"btn btn-ghost btn-xs\" hx-post=\"/leads/%s/convert\" hx-target=\"#main-content\" hx-confirm=\"Convert this lead to a design project?\">Convert</button></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// writeStatusCell renders a status badge plus an inline HTMX select that
// posts a transition to the given URL.
func writeStatusCell(b *strings.Builder, postURL, current, badgeClass string, options []string) {
	fmt.Fprintf(b, "<td><span class=\"badge %s\">%s</span>", esc(badgeClass), esc(strings.ReplaceAll(current, "_", " ")))
	fmt.Fprintf(b, "<select name=\"status\" class=\"select select-ghost select-xs ml-1\" hx-post=\"%s\" hx-target=\"#main-content\">", esc(postURL))
	b.WriteString("<option value=\"\" disabled selected>move…</option>")
	for _, o := range options {
		if o == current {
			continue
		}
		fmt.Fprintf(b, "<option value=\"%s\">%s</option>", esc(o), esc(strings.ReplaceAll(o, "_", " ")))
	}
	b.WriteString("</select></td>")
}

// LeadFormData feeds both the create and edit forms.
type LeadFormData struct {
	ID              string
	CustomerID      string
	Source          string
	Status          string
	Priority        string
	Services        []string
	Description     string
	AssignedTo      string
	CustomerOptions []Option
	SourceOptions   []Option
	StatusOptions   []Option
	PriorityOptions []Option
	ServiceOptions  []string
	StaffOptions    []Option
	Errors          map[string]string
}

func LeadFormPage(data LeadFormData, sidebar SidebarData) templ.Component {
	title := "New Lead"
	if data.ID != "" {
		title = "Edit Lead"
	}
	return shell(title, sidebar, LeadFormContent(data))
}

func LeadFormContent(data LeadFormData) templ.Component {
	return component(func(b *strings.Builder) {
		action := "/leads"
		heading := "New Lead"
		if data.ID != "" {
			action = fmt.Sprintf("/leads/%s/save", data.ID)
			heading = "Edit Lead"
		}
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold mb-4\">%s</h1>", heading)
		fmt.Fprintf(b, "<form method=\"post\" action=\"%s\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">", action)

		writeSelect(b, "customer", "Customer", data.CustomerOptions)
		if msg := data.Errors["customer"]; msg != "" {
			fmt.Fprintf(b, "<span class=\"text-error text-sm\">%s</span>", esc(msg))
		}
		writeSelect(b, "source", "Source", data.SourceOptions)
		writeSelect(b, "status", "Status", data.StatusOptions)
		writeSelect(b, "priority", "Priority", data.PriorityOptions)

		b.WriteString("<fieldset class=\"form-control\"><span class=\"label-text\">Requested services</span><div class=\"flex flex-wrap gap-3\">")
		for _, svc := range data.ServiceOptions {
			checked := ""
			for _, s := range data.Services {
				if s == svc {
					checked = " checked"
					break
				}
			}
			fmt.Fprintf(b, "<label class=\"label cursor-pointer gap-1\"><input type=\"checkbox\" name=\"services\" value=\"%s\" class=\"checkbox checkbox-sm\"%s>%s</label>",
				esc(svc), checked, esc(strings.ReplaceAll(svc, "_", " ")))
		}
		b.WriteString("</div></fieldset>")

		writeTextInput(b, "description", "Description", data.Description, data.Errors["description"])
		writeSelect(b, "assigned_to", "Assigned to", data.StaffOptions)

		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Save</button>")
		b.WriteString("<a href=\"/leads\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}
