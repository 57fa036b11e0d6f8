package services

import "time"

// StaleLeadAfter is how long a lead may sit without contact before the list
// view flags it.
const StaleLeadAfter = 14 * 24 * time.Hour

// IsLeadStale reports whether a lead is overdue for contact. The reference
// point is the last contact if one was recorded, otherwise the lead's
// creation time. Closed leads are never stale.
func IsLeadStale(status string, lastContact, created, now time.Time) bool {
	if IsTerminalStatus("leads", status) {
		return false
	}
	ref := lastContact
	if ref.IsZero() {
		ref = created
	}
	if ref.IsZero() {
		return false
	}
	return now.Sub(ref) > StaleLeadAfter
}

// IsEstimateExpired reports whether an estimate's expiry date has passed.
// Estimates without an expiry date never expire.
func IsEstimateExpired(expires, now time.Time) bool {
	if expires.IsZero() {
		return false
	}
	return now.After(expires)
}

// DaysSince returns whole days between t and now, for "N days ago" labels.
// Returns 0 for zero or future times.
func DaysSince(t, now time.Time) int {
	if t.IsZero() || now.Before(t) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
