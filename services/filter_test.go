package services

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

// newFilterTestRecord builds an in-memory lead-shaped record. No database
// is needed; filtering only reads field values.
func newFilterTestRecord(t *testing.T, values map[string]any) *core.Record {
	t.Helper()

	col := core.NewBaseCollection("leads")
	col.Fields.Add(&core.TextField{Name: "status"})
	col.Fields.Add(&core.TextField{Name: "source"})
	col.Fields.Add(&core.TextField{Name: "priority"})
	col.Fields.Add(&core.TextField{Name: "description"})
	col.Fields.Add(&core.SelectField{
		Name:      "services",
		Values:    ServiceTagOptions,
		MaxSelect: len(ServiceTagOptions),
	})

	rec := core.NewRecord(col)
	for k, v := range values {
		rec.Set(k, v)
	}
	return rec
}

func TestFilterRecordsQuery(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"status": "new", "description": "Backyard patio and fire pit"}),
		newFilterTestRecord(t, map[string]any{"status": "new", "description": "Front lawn renovation"}),
		newFilterTestRecord(t, map[string]any{"status": "closed", "description": "Patio repair"}),
	}

	got := FilterRecords(records, FilterParams{Query: "patio"}, SearchFields["leads"])
	if len(got) != 2 {
		t.Fatalf("query 'patio' matched %d records, want 2", len(got))
	}
	// Original order is preserved.
	if got[0] != records[0] || got[1] != records[2] {
		t.Error("filtered records are not in original order")
	}
}

func TestFilterRecordsQueryCaseInsensitive(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"description": "POOL deck"}),
	}

	if got := FilterRecords(records, FilterParams{Query: "pool"}, SearchFields["leads"]); len(got) != 1 {
		t.Errorf("lowercase query should match uppercase field, got %d records", len(got))
	}
	if got := FilterRecords(records, FilterParams{Query: "  POOL  "}, SearchFields["leads"]); len(got) != 1 {
		t.Errorf("query should be trimmed before matching, got %d records", len(got))
	}
}

func TestFilterRecordsTab(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"status": "new"}),
		newFilterTestRecord(t, map[string]any{"status": "contacted"}),
		newFilterTestRecord(t, map[string]any{"status": "new"}),
	}

	if got := FilterRecords(records, FilterParams{Tab: "new"}, nil); len(got) != 2 {
		t.Errorf("tab 'new' matched %d records, want 2", len(got))
	}
	if got := FilterRecords(records, FilterParams{Tab: FilterAll}, nil); len(got) != 3 {
		t.Errorf("tab 'all' matched %d records, want 3", len(got))
	}
	if got := FilterRecords(records, FilterParams{}, nil); len(got) != 3 {
		t.Errorf("empty tab matched %d records, want 3", len(got))
	}
}

func TestFilterRecordsAttrs(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"source": "website", "priority": "high"}),
		newFilterTestRecord(t, map[string]any{"source": "referral", "priority": "high"}),
		newFilterTestRecord(t, map[string]any{"source": "website", "priority": "low"}),
	}

	// Attrs AND together.
	got := FilterRecords(records, FilterParams{
		Attrs: map[string]string{"source": "website", "priority": "high"},
	}, nil)
	if len(got) != 1 {
		t.Fatalf("combined attrs matched %d records, want 1", len(got))
	}

	// FilterAll and empty values are skipped.
	got = FilterRecords(records, FilterParams{
		Attrs: map[string]string{"source": FilterAll, "priority": ""},
	}, nil)
	if len(got) != 3 {
		t.Errorf("all/empty attrs matched %d records, want 3", len(got))
	}
}

func TestFilterRecordsMultiSelectSearch(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"services": []string{"irrigation", "lighting"}}),
		newFilterTestRecord(t, map[string]any{"services": []string{"design"}}),
	}

	got := FilterRecords(records, FilterParams{Query: "lighting"}, SearchFields["leads"])
	if len(got) != 1 {
		t.Errorf("multi-select search matched %d records, want 1", len(got))
	}

	// A single selected value still comes back as a slice.
	got = FilterRecords(records, FilterParams{Query: "design"}, SearchFields["leads"])
	if len(got) != 1 || got[0] != records[1] {
		t.Errorf("single-value multi-select search matched %d records, want the design lead only", len(got))
	}
}

func TestFilterRecordsExtraText(t *testing.T) {
	records := []*core.Record{
		newFilterTestRecord(t, map[string]any{"description": "shade garden"}),
		newFilterTestRecord(t, map[string]any{"description": "rock garden"}),
	}
	names := map[*core.Record]string{
		records[0]: "Elena Garcia",
		records[1]: "Tom Whitfield",
	}

	got := FilterRecords(records, FilterParams{
		Query:     "garcia",
		ExtraText: func(r *core.Record) string { return names[r] },
	}, SearchFields["leads"])

	if len(got) != 1 || got[0] != records[0] {
		t.Errorf("ExtraText search matched %d records, want the Garcia lead only", len(got))
	}
}

func TestFilterRecordsEmptyInput(t *testing.T) {
	if got := FilterRecords(nil, FilterParams{Query: "x"}, nil); len(got) != 0 {
		t.Errorf("nil input should filter to empty, got %d", len(got))
	}
}
