package services

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Sentinel errors for status transitions. Handlers match on these to pick
// the right HTTP status and toast message.
var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("record not found")
	ErrPersistence   = errors.New("could not persist record")
)

// Status enumerations, one per workflow. These back both the schema select
// fields and the transition validation, so a value not listed here can never
// be stored.
var (
	LeadStatuses      = []string{"new", "assigned", "contacted", "qualified", "closed"}
	DesignStatuses    = []string{"needs_estimate", "pending_approval", "approved", "on_hold", "completed"}
	EstimateStatuses  = []string{"draft", "internal_review", "sent_to_customer", "under_negotiation", "approved", "rejected", "expired"}
	IssueStatuses     = []string{"open", "in_progress", "resolved", "closed"}
	BlueSheetStatuses = []string{"draft", "in_progress", "review", "approved", "completed"}
)

var statusSets = map[string][]string{
	"leads":           LeadStatuses,
	"design_projects": DesignStatuses,
	"estimates":       EstimateStatuses,
	"nursery_issues":  IssueStatuses,
	"blue_sheets":     BlueSheetStatuses,
}

// ValidStatuses returns the status enumeration for a collection, or nil if
// the collection has no status workflow.
func ValidStatuses(collection string) []string {
	return statusSets[collection]
}

// IsValidStatus reports whether status is a member of the collection's
// enumeration.
func IsValidStatus(collection, status string) bool {
	for _, s := range statusSets[collection] {
		if s == status {
			return true
		}
	}
	return false
}

// terminal statuses end a workflow; records in them are excluded from the
// sidebar work-queue counts.
var terminalStatuses = map[string]map[string]bool{
	"leads":           {"closed": true},
	"design_projects": {"completed": true},
	"estimates":       {"approved": true, "rejected": true, "expired": true},
	"nursery_issues":  {"resolved": true, "closed": true},
	"blue_sheets":     {"completed": true},
}

// IsTerminalStatus reports whether status ends the collection's workflow.
func IsTerminalStatus(collection, status string) bool {
	return terminalStatuses[collection][status]
}

// TransitionStatus validates the target status against the collection's
// enumeration, then loads the record and writes the new status. The
// membership check runs first so an invalid target never touches the record.
// Optional mutators run on the loaded record before the save, so side fields
// (such as a contact timestamp) land in the same write as the status.
func TransitionStatus(app *pocketbase.PocketBase, collection, recordID, status string, mutate ...func(*core.Record)) (*core.Record, error) {
	if !IsValidStatus(collection, status) {
		return nil, fmt.Errorf("%w: %q is not a %s status", ErrInvalidStatus, status, collection)
	}

	record, err := app.FindRecordById(collection, recordID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, collection, recordID)
	}

	record.Set("status", status)
	for _, m := range mutate {
		m(record)
	}
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrPersistence, collection, recordID, err)
	}
	return record, nil
}
