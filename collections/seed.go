package collections

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type customerDef struct {
	firstName string
	lastName  string
	email     string
	phone     string
	address   string
	notes     string
}

type staffDef struct {
	name string
	role string
}

type leadDef struct {
	customerLast string
	source       string
	status       string
	priority     string
	services     []string
	description  string
	assignedTo   string
	lastContact  time.Time
}

type lineItemDef struct {
	category    string
	description string
	quantity    float64
	unit        string
	unitPrice   float64
}

type issueDef struct {
	title       string
	description string
	issueType   string
	priority    string
	status      string
	location    string
	assignedTo  string
	tags        string
}

// Seed inserts demo data on first boot. Returns early without touching
// anything if customers already exist.
func Seed(app *pocketbase.PocketBase) error {
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: customers collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(customersCol)
	if err != nil {
		return fmt.Errorf("seed: could not query customers: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	customers := []customerDef{
		{"Maria", "Garcia", "maria.garcia@example.com", "555-0142", "48 Cedar Hollow Ln", "Referred by the Hendersons"},
		{"Tom", "Whitfield", "tom.whitfield@example.com", "555-0179", "210 Birchwood Dr", ""},
		{"Priya", "Raman", "priya.raman@example.com", "555-0163", "7 Stonegate Ct", "Commercial property manager"},
		{"Evan", "Kowalski", "", "555-0115", "1330 Maple Ridge Rd", "Walk-in, interested in xeriscaping"},
	}

	// keyed by last name for later cross-references
	customerIDs := make(map[string]string, len(customers))
	for _, def := range customers {
		rec := core.NewRecord(customersCol)
		rec.Set("first_name", def.firstName)
		rec.Set("last_name", def.lastName)
		rec.Set("email", def.email)
		rec.Set("phone", def.phone)
		rec.Set("address", def.address)
		rec.Set("notes", def.notes)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save customer %s %s: %w", def.firstName, def.lastName, err)
		}
		customerIDs[def.lastName] = rec.Id
	}

	staffCol, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		return fmt.Errorf("seed: staff collection not found: %w", err)
	}
	staffIDs := make(map[string]string)
	for _, def := range []staffDef{
		{"Dana Brooks", "designer"},
		{"Luis Ortega", "estimator"},
		{"Sam Tate", "crew_lead"},
	} {
		rec := core.NewRecord(staffCol)
		rec.Set("name", def.name)
		rec.Set("role", def.role)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save staff %s: %w", def.name, err)
		}
		staffIDs[def.name] = rec.Id
	}

	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		return fmt.Errorf("seed: leads collection not found: %w", err)
	}
	now := time.Now()
	leads := []leadDef{
		{
			customerLast: "Garcia",
			source:       "referral",
			status:       "contacted",
			priority:     "high",
			services:     []string{"design", "installation"},
			description:  "Full backyard redesign with patio and native planting beds",
			assignedTo:   "Dana Brooks",
			lastContact:  now.AddDate(0, 0, -3),
		},
		{
			customerLast: "Whitfield",
			source:       "website",
			status:       "new",
			priority:     "medium",
			services:     []string{"lawn_care", "irrigation"},
			description:  "Front lawn renovation, sprinkler system quote requested",
		},
		{
			customerLast: "Raman",
			source:       "phone",
			status:       "qualified",
			priority:     "high",
			services:     []string{"design", "hardscape", "lighting"},
			description:  "Office park entrance refresh, three planting islands",
			assignedTo:   "Dana Brooks",
			lastContact:  now.AddDate(0, 0, -1),
		},
		{
			customerLast: "Kowalski",
			source:       "walk_in",
			status:       "new",
			priority:     "low",
			services:     []string{"maintenance"},
			description:  "Monthly maintenance for small front yard",
		},
	}
	var qualifiedLeadID string
	for _, def := range leads {
		rec := core.NewRecord(leadsCol)
		rec.Set("customer", customerIDs[def.customerLast])
		rec.Set("source", def.source)
		rec.Set("status", def.status)
		rec.Set("priority", def.priority)
		rec.Set("services", def.services)
		rec.Set("description", def.description)
		if def.assignedTo != "" {
			rec.Set("assigned_to", staffIDs[def.assignedTo])
		}
		if !def.lastContact.IsZero() {
			rec.Set("last_contact", def.lastContact)
		}
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save lead %q: %w", def.description, err)
		}
		if def.status == "qualified" {
			qualifiedLeadID = rec.Id
		}
	}

	projectsCol, err := app.FindCollectionByNameOrId("design_projects")
	if err != nil {
		return fmt.Errorf("seed: design_projects collection not found: %w", err)
	}
	project := core.NewRecord(projectsCol)
	project.Set("customer", customerIDs["Raman"])
	project.Set("title", "Office park entrance refresh")
	project.Set("status", "needs_estimate")
	project.Set("project_type", "commercial")
	project.Set("area", "Entrance + three islands, ~2400 sq ft")
	project.Set("budget_range", "25k_50k")
	project.Set("timeline", "Spring next year")
	project.Set("style", "modern")
	project.Set("maintenance_level", "low")
	project.Set("plant_preferences", "Drought tolerant grasses, no annuals")
	project.Set("source_lead", qualifiedLeadID)
	if err := app.Save(project); err != nil {
		return fmt.Errorf("seed: save design project: %w", err)
	}

	estimatesCol, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		return fmt.Errorf("seed: estimates collection not found: %w", err)
	}
	number, err := services.GenerateEstimateNumber(app, now)
	if err != nil {
		return fmt.Errorf("seed: estimate number: %w", err)
	}
	estimate := core.NewRecord(estimatesCol)
	estimate.Set("design_project", project.Id)
	estimate.Set("number", number)
	estimate.Set("status", "draft")
	estimate.Set("markup_percent", services.DefaultMarkupPercent)
	estimate.Set("tax_percent", services.DefaultTaxPercent)
	estimate.Set("expires", now.AddDate(0, 1, 0))
	if err := app.Save(estimate); err != nil {
		return fmt.Errorf("seed: save estimate: %w", err)
	}

	itemsCol, err := app.FindCollectionByNameOrId("estimate_line_items")
	if err != nil {
		return fmt.Errorf("seed: estimate_line_items collection not found: %w", err)
	}
	items := []lineItemDef{
		{"plants", "Feather reed grass, 3 gal", 36, "each", 24.50},
		{"materials", "Decomposed granite topdress", 8, "cu_yd", 112.00},
		{"labor", "Install crew", 32, "hour", 58.00},
	}
	for _, def := range items {
		rec := core.NewRecord(itemsCol)
		rec.Set("estimate", estimate.Id)
		rec.Set("category", def.category)
		rec.Set("description", def.description)
		rec.Set("quantity", def.quantity)
		rec.Set("unit", def.unit)
		rec.Set("unit_price", def.unitPrice)
		rec.Set("total", services.LineItemTotalFloat(def.quantity, def.unitPrice))
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save line item %q: %w", def.description, err)
		}
	}
	if _, err := services.RecalcEstimateTotals(app, estimate.Id); err != nil {
		return fmt.Errorf("seed: recalc estimate totals: %w", err)
	}

	issuesCol, err := app.FindCollectionByNameOrId("nursery_issues")
	if err != nil {
		return fmt.Errorf("seed: nursery_issues collection not found: %w", err)
	}
	issues := []issueDef{
		{
			title:       "Aphid infestation in greenhouse 2",
			description: "Heavy aphid pressure on the rose stock, east benches",
			issueType:   "pest",
			priority:    "high",
			status:      "open",
			location:    "Greenhouse 2",
			assignedTo:  "Sam Tate",
			tags:        "aphids, roses, greenhouse",
		},
		{
			title:       "Drip line leak at holding beds",
			description: "Main drip line split near the maple holding bed",
			issueType:   "irrigation",
			priority:    "medium",
			status:      "in_progress",
			location:    "Holding beds",
			assignedTo:  "Sam Tate",
			tags:        "drip, maples",
		},
	}
	for _, def := range issues {
		rec := core.NewRecord(issuesCol)
		rec.Set("title", def.title)
		rec.Set("description", def.description)
		rec.Set("type", def.issueType)
		rec.Set("priority", def.priority)
		rec.Set("status", def.status)
		rec.Set("location", def.location)
		rec.Set("assigned_to", def.assignedTo)
		rec.Set("tags", def.tags)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: save issue %q: %w", def.title, err)
		}
	}

	sheetsCol, err := app.FindCollectionByNameOrId("blue_sheets")
	if err != nil {
		return fmt.Errorf("seed: blue_sheets collection not found: %w", err)
	}
	sheet := core.NewRecord(sheetsCol)
	sheet.Set("customer", customerIDs["Garcia"])
	sheet.Set("designer", staffIDs["Dana Brooks"])
	sheet.Set("status", "in_progress")
	sheet.Set("priority", "high")
	sheet.Set("services", []string{"design", "installation"})
	sheet.Set("project_type", "residential")
	sheet.Set("completion_percent", 40)
	if err := app.Save(sheet); err != nil {
		return fmt.Errorf("seed: save blue sheet: %w", err)
	}

	return nil
}
