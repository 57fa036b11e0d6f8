package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"landscapedesk/collections"
	"landscapedesk/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyLeadStatuses(app); err != nil {
			log.Printf("Warning: lead status migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Sidebar work-queue counts on every page
		se.Router.BindFunc(handlers.SidebarMiddleware(app))

		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/create", handlers.HandleCustomerCreateForm(app))
		se.Router.POST("/customers", handlers.HandleCustomerCreate(app))
		se.Router.GET("/customers/export", handlers.HandleCustomerExport(app))
		se.Router.GET("/customers/import", handlers.HandleCustomerImportPage(app))
		se.Router.POST("/customers/import", handlers.HandleCustomerValidate(app))
		se.Router.POST("/customers/import/commit", handlers.HandleCustomerImportCommit(app))
		se.Router.POST("/customers/import/errors", handlers.HandleCustomerErrorReport(app))
		se.Router.GET("/customers/import/template", handlers.HandleCustomerTemplate(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEditForm(app))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerSave(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Leads ────────────────────────────────────────────────
		se.Router.GET("/leads", handlers.HandleLeadList(app))
		se.Router.GET("/leads/create", handlers.HandleLeadCreateForm(app))
		se.Router.POST("/leads", handlers.HandleLeadCreate(app))
		se.Router.GET("/leads/{id}/edit", handlers.HandleLeadEditForm(app))
		se.Router.POST("/leads/{id}/save", handlers.HandleLeadSave(app))
		se.Router.POST("/leads/{id}/status", handlers.HandleLeadStatus(app))
		se.Router.POST("/leads/{id}/convert", handlers.HandleLeadConvert(app))
		se.Router.DELETE("/leads/{id}", handlers.HandleLeadDelete(app))

		// ── Design projects ──────────────────────────────────────
		se.Router.GET("/designs", handlers.HandleDesignList(app))
		se.Router.GET("/designs/create", handlers.HandleDesignCreateForm(app))
		se.Router.POST("/designs", handlers.HandleDesignCreate(app))
		se.Router.GET("/designs/{id}/edit", handlers.HandleDesignEditForm(app))
		se.Router.POST("/designs/{id}/save", handlers.HandleDesignSave(app))
		se.Router.POST("/designs/{id}/status", handlers.HandleDesignStatus(app))
		se.Router.DELETE("/designs/{id}", handlers.HandleDesignDelete(app))

		// ── Estimates ────────────────────────────────────────────
		se.Router.GET("/estimates", handlers.HandleEstimateList(app))
		se.Router.GET("/estimates/create", handlers.HandleEstimateCreateForm(app))
		se.Router.POST("/estimates", handlers.HandleEstimateCreate(app))
		se.Router.POST("/estimates/{id}/status", handlers.HandleEstimateStatus(app))
		se.Router.POST("/estimates/{id}/line-items", handlers.HandleLineItemAdd(app))
		se.Router.DELETE("/estimates/{id}/line-items/{itemId}", handlers.HandleLineItemDelete(app))
		se.Router.GET("/estimates/{id}/export/pdf", handlers.HandleEstimatePDF(app))
		se.Router.POST("/estimates/{id}/attach-pdf", handlers.HandleEstimateAttachPDF(app))
		se.Router.GET("/estimates/{id}", handlers.HandleEstimateView(app))

		// ── Nursery issues ───────────────────────────────────────
		se.Router.GET("/issues", handlers.HandleIssueList(app))
		se.Router.GET("/issues/create", handlers.HandleIssueCreateForm(app))
		se.Router.POST("/issues", handlers.HandleIssueCreate(app))
		se.Router.GET("/issues/{id}/edit", handlers.HandleIssueEditForm(app))
		se.Router.POST("/issues/{id}/save", handlers.HandleIssueSave(app))
		se.Router.POST("/issues/{id}/status", handlers.HandleIssueStatus(app))
		se.Router.POST("/issues/{id}/comments", handlers.HandleIssueCommentAdd(app))
		se.Router.POST("/issues/{id}/photos", handlers.HandleIssuePhotoUpload(app))
		se.Router.DELETE("/issues/{id}", handlers.HandleIssueDelete(app))
		se.Router.GET("/issues/{id}", handlers.HandleIssueView(app))

		// ── Blue sheets ──────────────────────────────────────────
		se.Router.GET("/bluesheets", handlers.HandleBlueSheetList(app))
		se.Router.GET("/bluesheets/create", handlers.HandleBlueSheetCreateForm(app))
		se.Router.POST("/bluesheets", handlers.HandleBlueSheetCreate(app))
		se.Router.GET("/bluesheets/{id}/edit", handlers.HandleBlueSheetEditForm(app))
		se.Router.POST("/bluesheets/{id}/save", handlers.HandleBlueSheetSave(app))
		se.Router.POST("/bluesheets/{id}/status", handlers.HandleBlueSheetStatus(app))
		se.Router.DELETE("/bluesheets/{id}", handlers.HandleBlueSheetDelete(app))

		// Home is the lead queue
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/leads")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
