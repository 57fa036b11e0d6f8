package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// EstimateListItem is one row of the estimate table.
type EstimateListItem struct {
	ID               string
	Number           string
	ProjectTitle     string
	CustomerName     string
	Status           string
	StatusBadgeClass string
	Total            string
	Expired          bool
	ExpiresDate      string
	CreatedDate      string
}

// EstimateListData feeds the estimate list view.
type EstimateListData struct {
	Items         []EstimateListItem
	TotalCount    int
	Query         string
	Tabs          []TabLink
	StatusOptions []string
}

func EstimateListPage(data EstimateListData, sidebar SidebarData) templ.Component {
	return shell("Estimates", sidebar, EstimateListContent(data))
}

func EstimateListContent(data EstimateListData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold\">Estimates <span class=\"text-base-content/50 text-base\">(%d)</span></h1>", data.TotalCount)
		b.WriteString("<a href=\"/estimates/create\" class=\"btn btn-sm btn-primary\">New Estimate</a>")
		b.WriteString("</div>")

		writeTabs(b, data.Tabs)

		b.WriteString("<form method=\"get\" action=\"/estimates\" class=\"mb-4\" hx-get=\"/estimates\" hx-target=\"#main-content\" hx-push-url=\"true\">")
		fmt.Fprintf(b, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search by number...\" class=\"input input-bordered input-sm w-64\">", esc(data.Query))
		b.WriteString("</form>")

		if len(data.Items) == 0 {
			b.WriteString("<p class=\"text-base-content/60\">No estimates match the current filters.</p>")
			return
		}

		b.WriteString("<table class=\"table table-zebra bg-base-100\"><thead><tr>")
		b.WriteString("<th>Number</th><th>Project</th><th>Customer</th><th>Status</th><th>Total</th><th>Expires</th><th>Created</th><th></th>")
		b.WriteString("</tr></thead><tbody>")
		for _, item := range data.Items {
			b.WriteString("<tr>")
			fmt.Fprintf(b, "<td class=\"font-mono\"><a class=\"link\" href=\"/estimates/%s\">%s</a></td>", esc(item.ID), esc(item.Number))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.ProjectTitle))
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CustomerName))
			writeStatusCell(b, "/estimates/"+item.ID+"/status", item.Status, item.StatusBadgeClass, data.StatusOptions)
			fmt.Fprintf(b, "<td class=\"text-right\">%s</td>", esc(item.Total))
			fmt.Fprintf(b, "<td>%s", esc(item.ExpiresDate))
			if item.Expired {
				b.WriteString(" <span class=\"badge badge-error badge-sm\">expired</span>")
			}
			b.WriteString("</td>")
			fmt.Fprintf(b, "<td>%s</td>", esc(item.CreatedDate))
			fmt.Fprintf(b, "<td><a href=\"/estimates/%s\" class=\"btn btn-ghost btn-xs\">Open</a></td>", esc(item.ID))
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// EstimateCreateData feeds the new-estimate form.
type EstimateCreateData struct {
	ProjectOptions []Option
	MarkupPercent  string
	TaxPercent     string
	Errors         map[string]string
}

func EstimateCreatePage(data EstimateCreateData, sidebar SidebarData) templ.Component {
	return shell("New Estimate", sidebar, EstimateCreateContent(data))
}

func EstimateCreateContent(data EstimateCreateData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<h1 class=\"text-2xl font-bold mb-4\">New Estimate</h1>")
		b.WriteString("<form method=\"post\" action=\"/estimates\" class=\"grid gap-3 max-w-xl bg-base-100 p-6 rounded-box\">")
		writeSelect(b, "design_project", "Design project", data.ProjectOptions)
		if msg := data.Errors["design_project"]; msg != "" {
			fmt.Fprintf(b, "<span class=\"text-error text-sm\">%s</span>", esc(msg))
		}
		writeTextInput(b, "markup_percent", "Markup %", data.MarkupPercent, data.Errors["markup_percent"])
		writeTextInput(b, "tax_percent", "Tax %", data.TaxPercent, data.Errors["tax_percent"])
		b.WriteString("<div class=\"flex gap-2 mt-2\">")
		b.WriteString("<button type=\"submit\" class=\"btn btn-primary btn-sm\">Create</button>")
		b.WriteString("<a href=\"/estimates\" class=\"btn btn-ghost btn-sm\">Cancel</a>")
		b.WriteString("</div></form>")
	})
}

// LineItemRow is one estimate line item in the detail view.
type LineItemRow struct {
	ID          string
	Category    string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Total       string
}

// EstimateViewData feeds the estimate detail page.
type EstimateViewData struct {
	ID               string
	Number           string
	ProjectTitle     string
	CustomerName     string
	Status           string
	StatusBadgeClass string
	StatusOptions    []string
	Items            []LineItemRow
	Subtotal         string
	MarkupPercent    string
	MarkupAmount     string
	TaxPercent       string
	TaxAmount        string
	GrandTotal       string
	ExpiresDate      string
	Expired          bool
	DocumentURL      string
	CategoryOptions  []Option
	UnitOptions      []Option
	Errors           map[string]string
}

func EstimateViewPage(data EstimateViewData, sidebar SidebarData) templ.Component {
	return shell("Estimate "+data.Number, sidebar, EstimateViewContent(data))
}

func EstimateViewContent(data EstimateViewData) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div class=\"flex items-center justify-between mb-4\">")
		fmt.Fprintf(b, "<h1 class=\"text-2xl font-bold font-mono\">%s</h1>", esc(data.Number))
		b.WriteString("<div class=\"flex gap-2\">")
		fmt.Fprintf(b, "<a href=\"/estimates/%s/export/pdf\" class=\"btn btn-sm\">Download PDF</a>", esc(data.ID))
		fmt.Fprintf(b, "<button class=\"btn btn-sm\" hx-post=\"/estimates/%s/attach-pdf\" hx-target=\"#main-content\">Attach PDF</button>", esc(data.ID))
		b.WriteString("</div></div>")

		fmt.Fprintf(b, "<p class=\"mb-1\">%s — %s</p>", esc(data.ProjectTitle), esc(data.CustomerName))
		fmt.Fprintf(b, "<p class=\"mb-4\"><span class=\"badge %s\">%s</span>", esc(data.StatusBadgeClass), esc(strings.ReplaceAll(data.Status, "_", " ")))
		if data.ExpiresDate != "" {
			fmt.Fprintf(b, " <span class=\"text-sm text-base-content/60\">valid until %s</span>", esc(data.ExpiresDate))
		}
		if data.Expired {
			b.WriteString(" <span class=\"badge badge-error badge-sm\">expired</span>")
		}
		if data.DocumentURL != "" {
			fmt.Fprintf(b, " <a class=\"link text-sm\" href=\"%s\">attached document</a>", esc(data.DocumentURL))
		}
		b.WriteString("</p>")

		b.WriteString("<div class=\"mb-4\">")
		writeStatusButtons(b, "/estimates/"+data.ID+"/status", data.Status, data.StatusOptions)
		b.WriteString("</div>")

		writeLineItemsSection(b, data)
	})
}

// writeStatusButtons renders one transition button per non-current status.
func writeStatusButtons(b *strings.Builder, postURL, current string, options []string) {
	for _, o := range options {
		if o == current {
			continue
		}
		fmt.Fprintf(b, "<button class=\"btn btn-xs mr-1\" hx-post=\"%s\" hx-vals='{\"status\":\"%s\"}' hx-target=\"#main-content\">%s</button>",
			esc(postURL), esc(o), esc(strings.ReplaceAll(o, "_", " ")))
	}
}

// EstimateLineItemsSection is rendered standalone for HTMX swaps after line
// item mutations.
func EstimateLineItemsSection(data EstimateViewData) templ.Component {
	return component(func(b *strings.Builder) {
		writeLineItemsSection(b, data)
	})
}

func writeLineItemsSection(b *strings.Builder, data EstimateViewData) {
	b.WriteString("<div id=\"line-items\" class=\"bg-base-100 p-6 rounded-box\">")
	b.WriteString("<h2 class=\"text-lg font-bold mb-2\">Line items</h2>")

	b.WriteString("<table class=\"table table-sm\"><thead><tr>")
	b.WriteString("<th>Category</th><th>Description</th><th class=\"text-right\">Qty</th><th>Unit</th><th class=\"text-right\">Unit Price</th><th class=\"text-right\">Total</th><th></th>")
	b.WriteString("</tr></thead><tbody>")
	for _, item := range data.Items {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<td>%s</td>", esc(item.Category))
		fmt.Fprintf(b, "<td>%s</td>", esc(item.Description))
		fmt.Fprintf(b, "<td class=\"text-right\">%s</td>", esc(item.Quantity))
		fmt.Fprintf(b, "<td>%s</td>", esc(strings.ReplaceAll(item.Unit, "_", " ")))
		fmt.Fprintf(b, "<td class=\"text-right\">%s</td>", esc(item.UnitPrice))
		fmt.Fprintf(b, "<td class=\"text-right\">%s</td>", esc(item.Total))
		fmt.Fprintf(b, "<td><button class=\"btn btn-ghost btn-xs\" hx-delete=\"/estimates/%s/line-items/%s\" hx-target=\"#line-items\" hx-swap=\"outerHTML\" hx-confirm=\"Remove this line item?\">✕</button></td>",
			esc(data.ID), esc(item.ID))
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	// Add-item form
	fmt.Fprintf(b, "<form hx-post=\"/estimates/%s/line-items\" hx-target=\"#line-items\" hx-swap=\"outerHTML\" class=\"flex gap-2 items-end mt-3\">", esc(data.ID))
	writeSelect(b, "category", "Category", data.CategoryOptions)
	writeTextInput(b, "description", "Description", "", data.Errors["description"])
	writeTextInput(b, "quantity", "Qty", "", data.Errors["quantity"])
	writeSelect(b, "unit", "Unit", data.UnitOptions)
	writeTextInput(b, "unit_price", "Unit price", "", data.Errors["unit_price"])
	b.WriteString("<button type=\"submit\" class=\"btn btn-sm btn-primary\">Add</button>")
	b.WriteString("</form>")

	// Totals
	b.WriteString("<div class=\"mt-4 ml-auto w-72 text-right\">")
	fmt.Fprintf(b, "<div class=\"flex justify-between\"><span>Subtotal</span><span>%s</span></div>", esc(data.Subtotal))
	fmt.Fprintf(b, "<div class=\"flex justify-between\"><span>Markup (%s%%)</span><span>%s</span></div>", esc(data.MarkupPercent), esc(data.MarkupAmount))
	fmt.Fprintf(b, "<div class=\"flex justify-between\"><span>Tax (%s%%)</span><span>%s</span></div>", esc(data.TaxPercent), esc(data.TaxAmount))
	fmt.Fprintf(b, "<div class=\"flex justify-between font-bold border-t mt-1 pt-1\"><span>Total</span><span>%s</span></div>", esc(data.GrandTotal))
	b.WriteString("</div></div>")
}
