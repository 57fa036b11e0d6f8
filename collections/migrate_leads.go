package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// legacyLeadStatuses maps status values from the old lead intake variant to
// the canonical enumeration.
var legacyLeadStatuses = map[string]string{
	"consultation_needed": "contacted",
	"consultation-needed": "contacted",
}

// MigrateLegacyLeadStatuses rewrites leads still carrying a status from the
// old intake variant. Safe to call on every startup -- returns early when
// there is nothing to migrate.
func MigrateLegacyLeadStatuses(app *pocketbase.PocketBase) error {
	leadsCol, err := app.FindCollectionByNameOrId("leads")
	if err != nil {
		return fmt.Errorf("migrate: could not find leads collection: %w", err)
	}

	records, err := app.FindAllRecords(leadsCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query leads: %w", err)
	}

	migrated := 0
	for _, lead := range records {
		target, ok := legacyLeadStatuses[lead.GetString("status")]
		if !ok {
			continue
		}
		lead.Set("status", target)
		if err := app.Save(lead); err != nil {
			log.Printf("migrate: failed to update lead %s: %v\n", lead.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: normalized %d legacy lead status value(s)\n", migrated)
	}
	return nil
}
