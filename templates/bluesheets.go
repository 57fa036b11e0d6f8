package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// BlueSheetListItem is one row of the blue sheet table.
type BlueSheetListItem struct {
	ID                string
	CustomerName      string
	DesignerName      string
	Status            string
	StatusBadgeClass  string
	Priority          string
	ProjectType       string
	Services          []string
	CompletionPercent int
	CreatedDate       string
}

// BlueSheetListData feeds the blue sheet list view.
type BlueSheetListData struct {
	Items         []BlueSheetListItem
	TotalCount    int
	Query         string
	Tabs          []TabLink
	StatusOptions []string
}

func BlueSheetListPage(data BlueSheetListData, sidebar SidebarData) templ.Component {
	return shell("Blue Sheets", sidebar, BlueSheetListContent(data))
}

func BlueSheetListContent(data BlueSheetListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Blue Sheets <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<a href=\"/bluesheets/create\" class=\"btn btn-sm btn-primary\">New Blue Sheet</a>")
		b.WriteString("</div>")

		writeTabs(b, data.Tabs)

		b.WriteString("<form method=\"get\" action=\"/bluesheets\" class=\"mb-4\" hx-get=\"/bluesheets\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search blue sheets...\" class=\"input input-bordered input-sm w-64\">", esc(data.Query))
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No blue sheets match the current filters.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Customer</th><th>Designer</th><th>Status</th><th>Priority</th><th>Type</th><th>Services</th><th>Progress</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-medium\">%s</td>", esc(item.CustomerName))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.DesignerName))
			writeStatusCell(b, "/bluesheets/"+item.ID+"/status", item.Status, item.StatusBadgeClass, data.StatusOptions)
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Priority))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.ProjectType))
			fmt.Fprintf(b, "<td>%s</td>", esc(strings.Join(item.Services, ", ")))
			fmt.Fprintf(b, "<td><progress class=\"progress progress-primary w-24\" value=\"%d\" max=\"100\"></progress> <span class=\"text-sm\">%d%%</span></td>",
				item.CompletionPercent, item.CompletionPercent)
			fmt.Fprintf(b, "<td><a href=\"/bluesheets/%s/edit\" class=\"btn btn-ghost btn-xs\">Edit</a></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// BlueSheetFormData feeds both the create and edit forms.
type BlueSheetFormData struct {
	ID                string
	CustomerID        string
	DesignerID        string
	Status            string
	Priority          string
	ProjectType       string
	Services          []string
	CompletionPercent string
	CustomerOptions   []Option
	DesignerOptions   []Option
	StatusOptions     []Option
	PriorityOptions   []Option
	TypeOptions       []Option
	ServiceOptions    []string
	Errors            map[string]string
}

func BlueSheetFormPage(data BlueSheetFormData, sidebar SidebarData) templ.Component {
	title := "New Blue Sheet"
	if data.ID != "" {
		title = "Edit Blue Sheet"
	}
	return shell(title, sidebar, BlueSheetFormContent(data))
}

func BlueSheetFormContent(data BlueSheetFormData) templ.Component {
	return component(func(b *strings.Builder) {
		action := "/bluesheets"
		heading := "New Blue Sheet"
		if data.ID != "" {
			action = fmt.Sprintf("/bluesheets/%s/save", data.ID)
			heading = "Edit Blue Sheet"
		}
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold mb-4\">%s</h1>", heading)
		fmt.Fprintf(b, "<form method=\"post\" action=\"%s\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">", action)

		writeSelect(b, "customer", "Customer", data.CustomerOptions)
		if msg := data.Errors["customer"]; msg != "" {
			fmt.Fprintf(b, "<span class=\"text-error text-sm\">%s</span>", esc(msg))
		}
		writeSelect(b, "designer", "Designer", data.DesignerOptions)
		if msg := data.Errors["designer"]; msg != "" {
			fmt.Fprintf(b, "<span class=\"text-error text-sm\">%s</span>", esc(msg))
		}
		writeSelect(b, "status", "Status", data.StatusOptions)
		writeSelect(b, "priority", "Priority", data.PriorityOptions)
		writeSelect(b, "project_type", "Project type", data.TypeOptions)

		b.WriteString("<fieldset class=\"form-control\"><span class=\"label-text\">Services</span><div class=\"flex flex-wrap gap-3\">")
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

		writeTextInput(b, "completion_percent", "Completion %", data.CompletionPercent, data.Errors["completion_percent"])

		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Save</button>")
		b.WriteString("<a href=\"/bluesheets\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}
