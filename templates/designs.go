package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// DesignListItem is one row of the design project table.
type DesignListItem struct {
	ID               string
	Title            string
	CustomerName     string
	Status           string
	StatusBadgeClass string
	ProjectType      string
	BudgetRange      string
	Timeline         string
	EstimateCount    int
	CreatedDate      string
}

// DesignListData feeds the design project list view.
type DesignListData struct {
	Items         []DesignListItem
	TotalCount    int
	Query         string
	Tabs          []TabLink
	TypeFilter    []Option
	StatusOptions []string
}

func DesignListPage(data DesignListData, sidebar SidebarData) templ.Component {
	return shell("Design Projects", sidebar, DesignListContent(data))
}

func DesignListContent(data DesignListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Design Projects <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<a href=\"/designs/create\" class=\"btn btn-sm btn-primary\">New Project</a>")
		b.WriteString("</div>")

		writeTabs(b, data.Tabs)

		b.WriteString("<form method=\"get\" action=\"/designs\" class=\"flex gap-2 items-end mb-4\" hx-get=\"/designs\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search projects...\" class=\"input input-bordered input-sm w-64\">", esc(data.Query))
		writeSelect(b, "project_type", "Type", data.TypeFilter)
		b.WriteString("<button type=\"submit\" class=\"btn btn-sm\">Filter</button>")
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No design projects match the current filters.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Title</th><th>Customer</th><th>Status</th><th>Type</th><th>Budget</th><th>Timeline</th><th>Estimates</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-medium\">%s</td>", esc(item.Title))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CustomerName))
			writeStatusCell(b, "/designs/"+item.ID+"/status", item.Status, item.StatusBadgeClass, data.StatusOptions)
			fmt.Fprintf(b, "<td>%s</td>", esc(item.ProjectType))
			fmt.Fprintf(b, "<td>%s</td>", esc(strings.ReplaceAll(item.BudgetRange, "_", " ")))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Timeline))
			fmt.Fprintf(b, "<td>%d</td>", item.EstimateCount)
			fmt.Fprintf(b, "<td><a href=\"/designs/%s/edit\" class=\"btn btn-ghost btn-xs\">Edit</a></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// DesignFormData feeds both the create and edit forms.
type DesignFormData struct {
	ID                 string
	CustomerID         string
	Title              string
	Status             string
	ProjectType        string
	Area               string
	BudgetRange        string
	Timeline           string
	Style              string
	MaintenanceLevel   string
	PlantPreferences   string
	CustomerOptions    []Option
	StatusOptions      []Option
	TypeOptions        []Option
	BudgetOptions      []Option
	StyleOptions       []Option
	MaintenanceOptions []Option
	Errors             map[string]string
}

func DesignFormPage(data DesignFormData, sidebar SidebarData) templ.Component {
	title := "New Design Project"
	if data.ID != "" {
		title = "Edit Design Project"
	}
	return shell(title, sidebar, DesignFormContent(data))
}

func DesignFormContent(data DesignFormData) templ.Component {
	return component(func(b *strings.Builder) {
		action := "/designs"
		heading := "New Design Project"
		if data.ID != "" {
			action = fmt.Sprintf("/designs/%s/save", data.ID)
			heading = "Edit Design Project"
		}
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold mb-4\">%s</h1>", heading)
		fmt.Fprintf(b, "<form method=\"post\" action=\"%s\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">", action)

		writeSelect(b, "customer", "Customer", data.CustomerOptions)
		writeTextInput(b, "title", "Title", data.Title, data.Errors["title"])
		writeSelect(b, "status", "Status", data.StatusOptions)
		writeSelect(b, "project_type", "Project type", data.TypeOptions)
		writeTextInput(b, "area", "Area", data.Area, "")
		writeSelect(b, "budget_range", "Budget range", data.BudgetOptions)
		writeTextInput(b, "timeline", "Timeline", data.Timeline, "")
		writeSelect(b, "style", "Design style", data.StyleOptions)
		writeSelect(b, "maintenance_level", "Maintenance level", data.MaintenanceOptions)
		writeTextInput(b, "plant_preferences", "Plant preferences", data.PlantPreferences, "")

		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Save</button>")
		b.WriteString("<a href=\"/designs\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}
