package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/templates"
)

// Badge colour per status value, shared by list and detail views.
var statusBadges = map[string]string{
	// leads
	"new":       "badge-info",
	"assigned":  "badge-primary",
	"contacted": "badge-accent",
	"qualified": "badge-success",
	"closed":    "badge-ghost",
	// design projects
	"needs_estimate":   "badge-warning",
	"pending_approval": "badge-info",
	"approved":         "badge-success",
	"on_hold":          "badge-ghost",
	"completed":        "badge-neutral",
	// estimates
	"draft":             "badge-ghost",
	"internal_review":   "badge-info",
	"sent_to_customer":  "badge-primary",
	"under_negotiation": "badge-warning",
	"rejected":          "badge-error",
	"expired":           "badge-error",
	// issues / blue sheets
	"open":        "badge-error",
	"in_progress": "badge-warning",
	"resolved":    "badge-success",
	"review":      "badge-info",
}

func statusBadgeClass(status string) string {
	if cls, ok := statusBadges[status]; ok {
		return cls
	}
	return "badge-ghost"
}

var priorityBadges = map[string]string{
	"low":      "badge-ghost",
	"medium":   "badge-info",
	"high":     "badge-warning",
	"critical": "badge-error",
}

func priorityBadgeClass(priority string) string {
	if cls, ok := priorityBadges[priority]; ok {
		return cls
	}
	return "badge-ghost"
}

// createdDate formats a record's created timestamp for list views.
func createdDate(rec *core.Record) string {
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		return dt.Time().Format("02 Jan 2006")
	}
	return ""
}

// customerName resolves a customer relation to "First Last".
func customerName(app *pocketbase.PocketBase, customerID string) string {
	if customerID == "" {
		return ""
	}
	customer, err := app.FindRecordById("customers", customerID)
	if err != nil {
		return "Unknown"
	}
	return customer.GetString("first_name") + " " + customer.GetString("last_name")
}

// staffName resolves a staff relation to its display name.
func staffName(app *pocketbase.PocketBase, staffID string) string {
	if staffID == "" {
		return ""
	}
	staff, err := app.FindRecordById("staff", staffID)
	if err != nil {
		return "Unknown"
	}
	return staff.GetString("name")
}

// customerOptions builds the customer select for intake forms.
func customerOptions(app *pocketbase.PocketBase, selected string) []templates.Option {
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil
	}

	opts := make([]templates.Option, 0, len(records))
	for _, rec := range records {
		opts = append(opts, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("first_name") + " " + rec.GetString("last_name"),
			Selected: rec.Id == selected,
		})
	}
	return opts
}

// staffOptions builds the staff select, with a leading unassigned entry.
func staffOptions(app *pocketbase.PocketBase, selected string) []templates.Option {
	opts := []templates.Option{{Value: "", Label: "Unassigned", Selected: selected == ""}}

	col, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		return opts
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return opts
	}

	for _, rec := range records {
		opts = append(opts, templates.Option{
			Value:    rec.Id,
			Label:    rec.GetString("name"),
			Selected: rec.Id == selected,
		})
	}
	return opts
}

// statusTabs builds the tab row for a list view: "All" plus one tab per
// status, with per-tab counts taken from the unfiltered record set.
func statusTabs(baseURL string, statuses []string, active string, records []*core.Record) []templates.TabLink {
	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.GetString("status")]++
	}

	tabs := []templates.TabLink{{
		Label:  "All",
		URL:    baseURL,
		Active: active == "" || active == "all",
		Count:  len(records),
	}}
	for _, s := range statuses {
		tabs = append(tabs, templates.TabLink{
			Label:  humanize(s),
			URL:    baseURL + "?tab=" + s,
			Active: active == s,
			Count:  counts[s],
		})
	}
	return tabs
}

func humanize(s string) string {
	out := make([]rune, 0, len(s))
	up := true
	for _, r := range s {
		if r == '_' {
			out = append(out, ' ')
			up = false
			continue
		}
		if up {
			if r >= 'a' && r <= 'z' {
				r = r - 'a' + 'A'
			}
			up = false
		}
		out = append(out, r)
	}
	return string(out)
}
