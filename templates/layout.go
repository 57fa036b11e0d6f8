// Package templates renders the dashboard's HTML. Components are expressed
// directly against the templ runtime API and return templ.Component values
// so handlers can render full pages or HTMX partials interchangeably.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// SidebarData feeds the navigation rail, including the work-queue counts the
// middleware computes per request.
type SidebarData struct {
	Active        string // nav key: customers, leads, designs, estimates, issues, bluesheets
	OpenLeads     int
	ActiveDesigns int
	OpenIssues    int
}

// TabLink is one status tab above a list view.
type TabLink struct {
	Label  string
	URL    string
	Active bool
	Count  int
}

// Option is one entry of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func esc(s string) string { return templ.EscapeString(s) }

// component wraps a string-building render function into a templ.Component.
func component(render func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		render(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

type navItem struct {
	key   string
	label string
	href  string
}

var navItems = []navItem{
	{"leads", "Leads", "/leads"},
	{"customers", "Customers", "/customers"},
	{"designs", "Design Projects", "/designs"},
	{"estimates", "Estimates", "/estimates"},
	{"issues", "Nursery Issues", "/issues"},
	{"bluesheets", "Blue Sheets", "/bluesheets"},
}

// shell renders the full page chrome around a body component.
func shell(title string, sidebar SidebarData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\" data-theme=\"emerald\"><head>")
		b.WriteString("<meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s · Verdant Desk</title>", esc(title))
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>")
		b.WriteString("<link href=\"https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css\" rel=\"stylesheet\" type=\"text/css\">")
		b.WriteString("<script src=\"https://cdn.tailwindcss.com\"></script>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">")
		b.WriteString("</head><body class=\"min-h-screen bg-base-200\">")

		b.WriteString("<div class=\"drawer lg:drawer-open\"><input id=\"nav-drawer\" type=\"checkbox\" class=\"drawer-toggle\">")
		b.WriteString("<div class=\"drawer-content p-6\" id=\"main-content\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</div>")
		writeSidebar(&b, sidebar)
		b.WriteString("</div>")
		writeToastScaffold(&b)
		b.WriteString("</body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSidebar(b *strings.Builder, data SidebarData) {
	b.WriteString("<div class=\"drawer-side\"><label for=\"nav-drawer\" class=\"drawer-overlay\"></label>")
	b.WriteString("<aside class=\"w-64 min-h-full bg-base-100\">")
	b.WriteString("<div class=\"p-4 text-xl font-bold\">Verdant Desk</div>")
	b.WriteString("<ul class=\"menu\">")
	for _, item := range navItems {
		active := ""
		if item.key == data.Active {
			active = " class=\"active\""
		}
		count := sidebarCount(item.key, data)
		badge := ""
		if count > 0 {
			badge = fmt.Sprintf("<span class=\"badge badge-sm badge-primary\">%d</span>", count)
		}
		fmt.Fprintf(b, "<li><a href=\"%s\"%s>%s %s</a></li>", item.href, active, esc(item.label), badge)
	}
	b.WriteString("</ul></aside></div>")
}

func sidebarCount(key string, data SidebarData) int {
	switch key {
	case "leads":
		return data.OpenLeads
	case "designs":
		return data.ActiveDesigns
	case "issues":
		return data.OpenIssues
	}
	return 0
}

// writeToastScaffold emits the toast container plus the listeners for the
// HX-Trigger "showToast" event and the flash cookie set on redirects.
func writeToastScaffold(b *strings.Builder) {
	b.WriteString("<div id=\"toast-container\" class=\"toast toast-end z-50\"></div>")
	b.WriteString(`<script>
function showToast(message, type) {
  var el = document.createElement('div');
  el.className = 'alert alert-' + (type || 'info');
  el.textContent = message;
  document.getElementById('toast-container').appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}
document.body.addEventListener('showToast', function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = 'flash_toast=; Max-Age=0; path=/';
  try {
    var t = JSON.parse(decodeURIComponent(m[1]));
    showToast(t.message, t.type);
  } catch (e) {}
})();
</script>`)
}

// writeTabs renders the status tab row above a list view.
func writeTabs(b *strings.Builder, tabs []TabLink) {
	if len(tabs) == 0 {
		return
	}
	b.WriteString("<div role=\"tablist\" class=\"tabs tabs-bordered mb-4\">")
	for _, t := range tabs {
		cls := "tab"
		if t.Active {
			cls = "tab tab-active"
		}
		count := ""
		if t.Count > 0 {
			count = fmt.Sprintf(" <span class=\"badge badge-sm ml-1\">%d</span>", t.Count)
		}
		fmt.Fprintf(b, "<a role=\"tab\" class=\"%s\" href=\"%s\">%s%s</a>", cls, t.URL, esc(t.Label), count)
	}
	b.WriteString("</div>")
}

// writeSelect renders a select input with its options.
func writeSelect(b *strings.Builder, name, label string, options []Option) {
	b.WriteString("<label class=\"form-control\">")
	if label != "" {
		fmt.Fprintf(b, "<span class=\"label-text\">%s</span>", esc(label))
	}
	fmt.Fprintf(b, "<select name=\"%s\" class=\"select select-bordered select-sm\">", esc(name))
	for _, o := range options {
		sel := ""
		if o.Selected {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", esc(o.Value), sel, esc(o.Label))
	}
	b.WriteString("</select></label>")
}

// writeTextInput renders a labelled text input, with an optional field error.
func writeTextInput(b *strings.Builder, name, label, value, errMsg string) {
	b.WriteString("<label class=\"form-control\">")
	fmt.Fprintf(b, "<span class=\"label-text\">%s</span>", esc(label))
	fmt.Fprintf(b, "<input type=\"text\" name=\"%s\" value=\"%s\" class=\"input input-bordered input-sm\">", esc(name), esc(value))
	if errMsg != "" {
		fmt.Fprintf(b, "<span class=\"label-text-alt text-error\">%s</span>", esc(errMsg))
	}
	b.WriteString("</label>")
}

// SelectOptions builds an Option list from raw values, labelling each value
// by replacing underscores with spaces.
func SelectOptions(values []string, selected string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{
			Value:    v,
			Label:    strings.ReplaceAll(v, "_", " "),
			Selected: v == selected,
		})
	}
	return opts
}

// FilterOptions is SelectOptions with a leading "all" sentinel entry.
func FilterOptions(values []string, selected, allLabel string) []Option {
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: "all", Label: allLabel, Selected: selected == "" || selected == "all"})
	return append(opts, SelectOptions(values, selected)...)
}
