package services

// Fixed option lists backing the dashboard's select inputs. The status
// enumerations live in status.go; everything else is here.

// LeadSourceOptions lists where a lead came from.
var LeadSourceOptions = []string{
	"website",
	"referral",
	"phone",
	"walk_in",
	"home_show",
	"other",
}

// LeadPriorityOptions is the lead/blue-sheet priority scale.
var LeadPriorityOptions = []string{"low", "medium", "high"}

// IssuePriorityOptions adds "critical" for nursery issues.
var IssuePriorityOptions = []string{"low", "medium", "high", "critical"}

// IssueTypeOptions categorizes nursery issues.
var IssueTypeOptions = []string{
	"pest",
	"disease",
	"irrigation",
	"equipment",
	"inventory",
	"other",
}

// ServiceTagOptions are the services a customer can request.
var ServiceTagOptions = []string{
	"design",
	"installation",
	"maintenance",
	"irrigation",
	"hardscape",
	"lighting",
	"tree_care",
	"lawn_care",
}

// ProjectTypeOptions classifies design projects and blue sheets.
var ProjectTypeOptions = []string{"residential", "commercial", "municipal"}

// MaintenanceLevelOptions describes how much upkeep a design implies.
var MaintenanceLevelOptions = []string{"low", "moderate", "intensive"}

// DesignStyleOptions are the styles offered on the design intake form.
var DesignStyleOptions = []string{
	"modern",
	"cottage",
	"xeriscape",
	"woodland",
	"formal",
	"native",
}

// BudgetRangeOptions bucket a project's stated budget.
var BudgetRangeOptions = []string{
	"under_10k",
	"10k_25k",
	"25k_50k",
	"50k_100k",
	"over_100k",
}

// LineItemCategoryOptions classify estimate line items.
var LineItemCategoryOptions = []string{"plants", "materials", "labor", "equipment"}

// UnitOptions returns the unit-of-measure options for estimate line items.
var UnitOptions = []string{
	"each",
	"flat",
	"sq_ft",
	"cu_yd",
	"linear_ft",
	"hour",
	"day",
	"ton",
	"bag",
	"pallet",
	"gallon",
}

// StaffRoleOptions are the roles staff records can hold.
var StaffRoleOptions = []string{"designer", "estimator", "crew_lead", "manager"}
