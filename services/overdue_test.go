package services

import (
	"testing"
	"time"
)

func TestIsLeadStale(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      string
		lastContact time.Time
		created     time.Time
		want        bool
	}{
		{"recent contact", "new", now.Add(-24 * time.Hour), now.Add(-60 * 24 * time.Hour), false},
		{"old contact", "new", now.Add(-15 * 24 * time.Hour), now.Add(-60 * 24 * time.Hour), true},
		{"no contact old lead", "contacted", time.Time{}, now.Add(-20 * 24 * time.Hour), true},
		{"no contact fresh lead", "contacted", time.Time{}, now.Add(-2 * 24 * time.Hour), false},
		{"closed never stale", "closed", time.Time{}, now.Add(-90 * 24 * time.Hour), false},
		{"exactly at threshold", "new", now.Add(-StaleLeadAfter), time.Time{}, false},
		{"no dates at all", "new", time.Time{}, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLeadStale(tt.status, tt.lastContact, tt.created, now)
			if got != tt.want {
				t.Errorf("IsLeadStale(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsEstimateExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	if IsEstimateExpired(time.Time{}, now) {
		t.Error("estimate without expiry should never expire")
	}
	if IsEstimateExpired(now.Add(time.Hour), now) {
		t.Error("future expiry should not be expired")
	}
	if !IsEstimateExpired(now.Add(-time.Hour), now) {
		t.Error("past expiry should be expired")
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"zero time", time.Time{}, 0},
		{"future", now.Add(time.Hour), 0},
		{"same day", now.Add(-6 * time.Hour), 0},
		{"three days", now.Add(-3*24*time.Hour - time.Hour), 3},
	}
	for _, tt := range tests {
		if got := DaysSince(tt.t, now); got != tt.want {
			t.Errorf("DaysSince(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
