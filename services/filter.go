package services

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "all"

// FilterParams describes one list-view filter pass.
type FilterParams struct {
	// Query is the free-text search box value. Empty means no text filter.
	Query string
	// Tab constrains the status field. Empty or FilterAll means every status.
	Tab string
	// Attrs are exact-match constraints on single-value fields, keyed by
	// field name. A value of FilterAll or "" is skipped.
	Attrs map[string]string
	// ExtraText optionally contributes search text a record doesn't carry
	// itself, such as a resolved relation's display name.
	ExtraText func(*core.Record) string
}

// SearchFields lists the fields the free-text query matches per collection.
var SearchFields = map[string][]string{
	"customers":       {"first_name", "last_name", "email", "phone", "address"},
	"leads":           {"description", "source", "services"},
	"design_projects": {"title", "area", "plant_preferences", "timeline"},
	"estimates":       {"number"},
	"nursery_issues":  {"title", "description", "location", "assigned_to", "tags"},
	"blue_sheets":     {"project_type", "services"},
}

// FilterRecords applies the filter to records and returns the matching
// subset in the original order. Matching is case-insensitive substring on
// the search fields (plus ExtraText), AND all Attrs constraints, AND the
// status tab.
func FilterRecords(records []*core.Record, params FilterParams, searchFields []string) []*core.Record {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	out := make([]*core.Record, 0, len(records))
	for _, record := range records {
		if params.Tab != "" && params.Tab != FilterAll && record.GetString("status") != params.Tab {
			continue
		}
		if !attrsMatch(record, params.Attrs) {
			continue
		}
		if query != "" && !textMatches(record, query, searchFields, params.ExtraText) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func attrsMatch(record *core.Record, attrs map[string]string) bool {
	for field, want := range attrs {
		if want == "" || want == FilterAll {
			continue
		}
		if record.GetString(field) != want {
			return false
		}
	}
	return true
}

func textMatches(record *core.Record, query string, fields []string, extra func(*core.Record) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(fieldText(record, field)), query) {
			return true
		}
	}
	if extra != nil {
		return strings.Contains(strings.ToLower(extra(record)), query)
	}
	return false
}

// fieldText flattens a field to searchable text. Multi-select fields come
// back as slices (even with a single selection, where GetString would cast
// to ""), so any non-empty slice is joined before matching.
func fieldText(record *core.Record, field string) string {
	if values := record.GetStringSlice(field); len(values) > 0 {
		return strings.Join(values, " ")
	}
	return record.GetString(field)
}
