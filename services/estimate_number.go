package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatEstimateNumber constructs the estimate number string.
// Format: EST-{2-digit year}-{4-digit sequence}, e.g. EST-26-0007.
func formatEstimateNumber(year, sequence int) string {
	return fmt.Sprintf("EST-%02d-%04d", year%100, sequence)
}

// GenerateEstimateNumber creates the next estimate number. The sequence is
// per calendar year and restarts at 1 each January.
func GenerateEstimateNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	prefix := fmt.Sprintf("EST-%02d-", now.Year()%100)

	existing, err := app.FindRecordsByFilter(
		"estimates",
		"number ~ {:prefix}",
		"", 0, 0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty -- start at 1.
		existing = nil
	}

	return formatEstimateNumber(now.Year(), len(existing)+1), nil
}
