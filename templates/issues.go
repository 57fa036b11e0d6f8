package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// IssueListItem is one row of the nursery issue table.
type IssueListItem struct {
	ID               string
	Title            string
	Type             string
	Priority         string
	PriorityClass    string
	Status           string
	StatusBadgeClass string
	Location         string
	AssignedTo       string
	Tags             string
	CommentCount     int
	PhotoCount       int
	CreatedDate      string
}

// IssueListData feeds the nursery issue list view.
type IssueListData struct {
	Items          []IssueListItem
	TotalCount     int
	Query          string
	Tabs           []TabLink
	TypeFilter     []Option
	PriorityFilter []Option
	StatusOptions  []string
}

func IssueListPage(data IssueListData, sidebar SidebarData) templ.Component {
	return shell("Nursery Issues", sidebar, IssueListContent(data))
}

func IssueListContent(data IssueListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Nursery Issues <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<a href=\"/issues/create\" class=\"btn btn-sm btn-primary\">New Issue</a>")
		b.WriteString("</div>")

		writeTabs(b, data.Tabs)

		b.WriteString("<form method=\"get\" action=\"/issues\" class=\"flex gap-2 items-end mb-4\" hx-get=\"/issues\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search issues...\" class=\"input input-bordered input-sm w-64\">", esc(data.Query))
		writeSelect(b, "type", "Type", data.TypeFilter)
		writeSelect(b, "priority", "Priority", data.PriorityFilter)
		b.WriteString("<button type=\"submit\" class=\"btn btn-sm\">Filter</button>")
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No issues match the current filters.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Title</th><th>Type</th><th>Priority</th><th>Status</th><th>Location</th><th>Assigned</th><th>Tags</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-medium\"><a class=\"link\" href=\"/issues/%s\">%s</a>", esc(item.ID), esc(item.Title))
			if item.CommentCount > 0 {
				fmt.Fprintf(b, " <span class=\"badge badge-ghost badge-sm\">%d 💬</span>", item.CommentCount)
			}
			if item.PhotoCount > 0 {
				fmt.Fprintf(b, " <span class=\"badge badge-ghost badge-sm\">%d 📷</span>", item.PhotoCount)
			}
			b.WriteString("</td>")
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Type))
			fmt.Fprintf(b, "<td><span class=\"badge %s\">%s</span></td>", esc(item.PriorityClass), esc(item.Priority))
			writeStatusCell(b, "/issues/"+item.ID+"/status", item.Status, item.StatusBadgeClass, data.StatusOptions)
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Location))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.AssignedTo))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.Tags))
			fmt.Fprintf(b, "<td><a href=\"/issues/%s\" class=\"btn btn-ghost btn-xs\">Open</a></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// IssueFormData feeds both the create and edit forms.
type IssueFormData struct {
	ID              string
	Title           string
	Description     string
	Type            string
	Priority        string
	Status          string
	Location        string
	AssignedTo      string
	Tags            string
	TypeOptions     []Option
	PriorityOptions []Option
	StatusOptions   []Option
	Errors          map[string]string
}

func IssueFormPage(data IssueFormData, sidebar SidebarData) templ.Component {
	title := "New Issue"
	if data.ID != "" {
		title = "Edit Issue"
	}
	return shell(title, sidebar, IssueFormContent(data))
}

func IssueFormContent(data IssueFormData) templ.Component {
	return component(func(b *strings.Builder) {
		action := "/issues"
		heading := "New Issue"
		if data.ID != "" {
			action = fmt.Sprintf("/issues/%s/save", data.ID)
			heading = "Edit Issue"
		}
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold mb-4\">%s</h1>", heading)
		fmt.Fprintf(b, "<form method=\"post\" action=\"%s\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">", action)
		writeTextInput(b, "title", "Title", data.Title, data.Errors["title"])
		writeTextInput(b, "description", "Description", data.Description, "")
		writeSelect(b, "type", "Type", data.TypeOptions)
		writeSelect(b, "priority", "Priority", data.PriorityOptions)
		writeSelect(b, "status", "Status", data.StatusOptions)
		writeTextInput(b, "location", "Location", data.Location, "")
		writeTextInput(b, "assigned_to", "Assigned to", data.AssignedTo, "")
		writeTextInput(b, "tags", "Tags (comma separated)", data.Tags, "")
		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Save</button>")
		b.WriteString("<a href=\"/issues\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}

// IssueComment is one rendered comment on the detail page.
type IssueComment struct {
	Author      string
	Body        string
	CreatedDate string
}

// IssueViewData feeds the issue detail page.
type IssueViewData struct {
	ID               string
	Title            string
	Description      string
	Type             string
	Priority         string
	PriorityClass    string
	Status           string
	StatusBadgeClass string
	StatusOptions    []string
	Location         string
	AssignedTo       string
	Tags             string
	PhotoURLs        []string
	Comments         []IssueComment
	CreatedDate      string
}

func IssueViewPage(data IssueViewData, sidebar SidebarData) templ.Component {
	return shell(data.Title, sidebar, IssueViewContent(data))
}

func IssueViewContent(data IssueViewData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-2\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">%s</h1>", esc(data.Title))
		fmt.Fprintf(b, "<a href=\"/issues/%s/edit\" class=\"btn btn-sm\">Edit</a>", esc(data.ID))
		b.WriteString("</div>")

		fmt.Fprintf(b, "<p class=\"mb-1\"><span class=\"badge %s\">%s</span> <span class=\"badge %s\">%s</span> <span class=\"badge badge-ghost\">%s</span></p>",
			esc(data.StatusBadgeClass), esc(strings.ReplaceAll(data.Status, "_", " ")),
			esc(data.PriorityClass), esc(data.Priority), esc(data.Type))
		if data.Description != "" {
			fmt.Fprintf(b, "<p class=\"mb-2\">%s</p>", esc(data.Description))
		}
		fmt.Fprintf(b, "<p class=\"text-sm text-base-content/60 mb-4\">%s · %s · %s · opened %s</p>",
			esc(data.Location), esc(data.AssignedTo), esc(data.Tags), esc(data.CreatedDate))

		b.WriteString("<div class=\"mb-4\">")
		writeStatusButtons(b, "/issues/"+data.ID+"/status", data.Status, data.StatusOptions)
		b.WriteString("</div>")

		if len(data.PhotoURLs) > 0 {
			b.WriteString("<div class=\"flex gap-2 mb-4\">")
			for _, u := range data.PhotoURLs {
				fmt.Fprintf(b, "<a href=\"%s\"><img src=\"%s\" class=\"w-28 h-28 object-cover rounded\"></a>", esc(u), esc(u))
			}
			b.WriteString("</div>")
		}

		fmt.Fprintf(b, "<form method=\"post\" action=\"/issues/%s/photos\" enctype=\"multipart/form-data\" class=\"flex gap-2 items-center mb-6\">", esc(data.ID))
		b.WriteString("<input type=\"file\" name=\"photo\" accept=\"image/*\" class=\"file-input file-input-bordered file-input-sm\" required>")
		b.WriteString("<button type=\"submit\" class=\"btn btn-sm\">Upload photo</button></form>")

		b.WriteString("<div class=\"bg-base-100 p-6 rounded-box max-w-2xl\"><h2 class=\"text-lg font-bold mb-2\">Comments</h2>")
		for _, c := range data.Comments {
			b.WriteString("<div class=\"chat chat-start\"><div class=\"chat-header\">")
			fmt.Fprintf(b, "%s <time class=\"text-xs opacity-50\">%s</time></div>", esc(c.Author), esc(c.CreatedDate))
			fmt.Fprintf(b, "<div class=\"chat-bubble\">%s</div></div>", esc(c.Body))
		}
		fmt.Fprintf(b, "<form method=\"post\" action=\"/issues/%s/comments\" class=\"flex gap-2 mt-3\">", esc(data.ID))
		b.WriteString("<input type=\"text\" name=\"author\" placeholder=\"Name\" class=\"input input-bordered input-sm w-32\">")
		b.WriteString("<input type=\"text\" name=\"body\" placeholder=\"Add a comment...\" class=\"input input-bordered input-sm flex-1\" required>")
		b.WriteString("<button type=\"submit\" class=\"btn btn-sm btn-primary\">Post</button></form>")
		b.WriteString("</div>")
	})
}
