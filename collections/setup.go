// Package collections creates and maintains the PocketBase schema for the
// dashboard: customers, staff, leads, design projects, estimates with their
// line items, nursery issues with comments, and blue sheets.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/services"
)

// Setup programmatically creates/ensures all collections exist. Safe to call
// on every startup.
func Setup(app *pocketbase.PocketBase) {
	staff := ensureCollection(app, "staff", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Values:    services.StaffRoleOptions,
			MaxSelect: 1,
		})
		addTimestamps(c)
	})

	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "first_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		addTimestamps(c)
	})

	leads := ensureCollection(app, "leads", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "source",
			Required:  true,
			Values:    services.LeadSourceOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.LeadStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "priority",
			Values:    services.LeadPriorityOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "services",
			Values:    services.ServiceTagOptions,
			MaxSelect: len(services.ServiceTagOptions),
		})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.RelationField{
			Name:         "assigned_to",
			CollectionId: staff.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "last_contact"})
		addTimestamps(c)
	})

	designProjects := ensureCollection(app, "design_projects", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.DesignStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "project_type",
			Values:    services.ProjectTypeOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "area"})
		c.Fields.Add(&core.SelectField{
			Name:      "budget_range",
			Values:    services.BudgetRangeOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "timeline"})
		c.Fields.Add(&core.SelectField{
			Name:      "style",
			Values:    services.DesignStyleOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "maintenance_level",
			Values:    services.MaintenanceLevelOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "plant_preferences"})
		c.Fields.Add(&core.RelationField{
			Name:         "source_lead",
			CollectionId: leads.Id,
			MaxSelect:    1,
		})
		addTimestamps(c)
	})

	estimates := ensureCollection(app, "estimates", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "design_project",
			Required:     true,
			CollectionId: designProjects.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.EstimateStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "markup_percent"})
		c.Fields.Add(&core.NumberField{Name: "tax_percent"})
		c.Fields.Add(&core.NumberField{Name: "subtotal"})
		c.Fields.Add(&core.NumberField{Name: "markup_amount"})
		c.Fields.Add(&core.NumberField{Name: "tax_amount"})
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.DateField{Name: "expires"})
		c.Fields.Add(&core.FileField{Name: "document", MaxSelect: 1, MaxSize: 10 << 20})
		addTimestamps(c)
		// The count-based number sequence assumes numbers are never reused;
		// the unique index turns a reissue into a save error instead of a
		// silent duplicate.
		c.AddIndex("idx_estimates_number", true, "number", "")
	})

	ensureCollection(app, "estimate_line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    services.LineItemCategoryOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "unit",
			Values:    services.UnitOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
		c.Fields.Add(&core.NumberField{Name: "total"})
		addTimestamps(c)
	})

	issues := ensureCollection(app, "nursery_issues", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    services.IssueTypeOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "priority",
			Required:  true,
			Values:    services.IssuePriorityOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.IssueStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "location"})
		c.Fields.Add(&core.TextField{Name: "assigned_to"})
		c.Fields.Add(&core.TextField{Name: "tags"})
		c.Fields.Add(&core.FileField{Name: "photos", MaxSelect: 5, MaxSize: 5 << 20})
		addTimestamps(c)
	})

	ensureCollection(app, "issue_comments", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "issue",
			Required:      true,
			CollectionId:  issues.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "author"})
		c.Fields.Add(&core.TextField{Name: "body", Required: true})
		addTimestamps(c)
	})

	ensureCollection(app, "blue_sheets", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "designer",
			Required:     true,
			CollectionId: staff.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.BlueSheetStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "priority",
			Values:    services.LeadPriorityOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "services",
			Values:    services.ServiceTagOptions,
			MaxSelect: len(services.ServiceTagOptions),
		})
		c.Fields.Add(&core.SelectField{
			Name:      "project_type",
			Values:    services.ProjectTypeOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "completion_percent"})
		addTimestamps(c)
	})
}

func addTimestamps(c *core.Collection) {
	c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback populates its fields, and the collection is
// saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
