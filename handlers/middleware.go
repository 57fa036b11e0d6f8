// Package handlers wires HTTP routes to the service layer and renders the
// templates package. One file per page action.
package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
	"landscapedesk/templates"
)

type contextKey string

const SidebarDataKey contextKey = "sidebarData"

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// SidebarMiddleware computes the work-queue counts shown next to the nav
// items and stores them in the request context so every handler can render
// the page shell without repeating the queries.
func SidebarMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SidebarData{
			OpenLeads:     countNonTerminal(app, "leads"),
			ActiveDesigns: countNonTerminal(app, "design_projects"),
			OpenIssues:    countNonTerminal(app, "nursery_issues"),
		}

		ctx := context.WithValue(e.Request.Context(), SidebarDataKey, data)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// countNonTerminal counts records whose status has not ended the workflow.
func countNonTerminal(app *pocketbase.PocketBase, collection string) int {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return 0
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return 0
	}

	n := 0
	for _, rec := range records {
		if !services.IsTerminalStatus(collection, rec.GetString("status")) {
			n++
		}
	}
	return n
}

// sidebarFor returns the context sidebar data with the active nav key set.
func sidebarFor(e *core.RequestEvent, active string) templates.SidebarData {
	data := GetSidebarData(e.Request)
	data.Active = active
	return data
}

// isHTMX reports whether the request came from an HTMX swap rather than a
// full page load.
func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}
