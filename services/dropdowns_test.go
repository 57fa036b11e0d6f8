package services

import "testing"

func TestOptionListsHaveNoDuplicates(t *testing.T) {
	lists := map[string][]string{
		"LeadSourceOptions":       LeadSourceOptions,
		"LeadPriorityOptions":     LeadPriorityOptions,
		"IssuePriorityOptions":    IssuePriorityOptions,
		"IssueTypeOptions":        IssueTypeOptions,
		"ServiceTagOptions":       ServiceTagOptions,
		"ProjectTypeOptions":      ProjectTypeOptions,
		"MaintenanceLevelOptions": MaintenanceLevelOptions,
		"DesignStyleOptions":      DesignStyleOptions,
		"BudgetRangeOptions":      BudgetRangeOptions,
		"LineItemCategoryOptions": LineItemCategoryOptions,
		"UnitOptions":             UnitOptions,
		"StaffRoleOptions":        StaffRoleOptions,
	}

	for name, list := range lists {
		if len(list) == 0 {
			t.Errorf("%s is empty", name)
		}
		seen := map[string]bool{}
		for _, v := range list {
			if v == "" {
				t.Errorf("%s contains an empty value", name)
			}
			if seen[v] {
				t.Errorf("%s contains duplicate %q", name, v)
			}
			seen[v] = true
		}
	}
}

func TestIssuePrioritiesExtendLeadPriorities(t *testing.T) {
	// The issue scale is the lead scale plus "critical".
	for i, v := range LeadPriorityOptions {
		if IssuePriorityOptions[i] != v {
			t.Fatalf("IssuePriorityOptions[%d] = %q, want %q", i, IssuePriorityOptions[i], v)
		}
	}
	last := IssuePriorityOptions[len(IssuePriorityOptions)-1]
	if last != "critical" {
		t.Errorf("last issue priority = %q, want critical", last)
	}
}
