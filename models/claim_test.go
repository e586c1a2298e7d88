package models

import "testing"

func TestSortTimelineUsesStoredOrderNotDates(t *testing.T) {
	// Dates deliberately non-monotonic: the follow-up documentation event
	// carries an earlier date than the field inspection it precedes.
	claim := Claim{
		ID: "cl-9",
		Timeline: []ClaimEvent{
			{Date: "2025-10-22", Event: "Field rep inspected.", SortOrder: 2},
			{Date: "2025-10-01", Event: "Claim filed.", SortOrder: 0},
			{Date: "2025-11-18", Event: "Repair completed.", SortOrder: 4},
			{Date: "2025-10-15", Event: "Supplemental documentation submitted.", SortOrder: 3},
			{Date: "2025-10-08", Event: "Receipt acknowledged.", SortOrder: 1},
		},
	}

	claim.SortTimeline()

	for i, ev := range claim.Timeline {
		if ev.SortOrder != i {
			t.Fatalf("position %d holds sortOrder %d; timeline must follow stored order", i, ev.SortOrder)
		}
	}
	if claim.Timeline[3].Date != "2025-10-15" {
		t.Errorf("position 3 date = %s, expected the out-of-date-order event to stay at its stored slot", claim.Timeline[3].Date)
	}
}

func TestSortTimelineStableForDuplicateOrder(t *testing.T) {
	claim := Claim{
		Timeline: []ClaimEvent{
			{ID: 1, Event: "first inserted", SortOrder: 1},
			{ID: 2, Event: "second inserted", SortOrder: 1},
			{ID: 3, Event: "opener", SortOrder: 0},
		},
	}

	claim.SortTimeline()

	if claim.Timeline[0].ID != 3 {
		t.Fatalf("position 0 = event %d, expected sortOrder 0 first", claim.Timeline[0].ID)
	}
	if claim.Timeline[1].ID != 1 || claim.Timeline[2].ID != 2 {
		t.Errorf("duplicate sortOrder events reordered: got %d then %d", claim.Timeline[1].ID, claim.Timeline[2].ID)
	}
}
