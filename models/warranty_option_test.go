package models

import "testing"

func TestSortWarrantyOptionsRatingThenName(t *testing.T) {
	opts := []WarrantyOption{
		{ID: "WT-115", Name: "GAF TPO Diamond Pledge 15-Year NDL", Rating: 4.8},
		{ID: "WT-167", Name: "Sika Sarnafil PVC 20-Year NDL", Rating: 4.9},
		{ID: "WT-004", Name: "GACO Silicone L&M NDL 20-Year", Rating: 4.8},
		{ID: "WT-051", Name: "Henry Pro-Grade 988 Gold Seal 20-Year", Rating: 4.5},
	}

	SortWarrantyOptions(opts)

	// 4.9 first, then the two 4.8s by name: "GACO..." < "GAF..." because
	// 'C' < 'F' at the fourth byte.
	want := []string{"WT-167", "WT-004", "WT-115", "WT-051"}
	for i, id := range want {
		if opts[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, opts[i].ID, id)
		}
	}
}

func TestSortWarrantyOptionsStable(t *testing.T) {
	opts := []WarrantyOption{
		{ID: "a", Name: "Same Name", Rating: 4.0},
		{ID: "b", Name: "Same Name", Rating: 4.0},
		{ID: "c", Name: "Same Name", Rating: 4.0},
	}
	SortWarrantyOptions(opts)
	for i, id := range []string{"a", "b", "c"} {
		if opts[i].ID != id {
			t.Errorf("position %d = %s, want %s (stable order)", i, opts[i].ID, id)
		}
	}
}

func TestFilterWarrantyOptions(t *testing.T) {
	opts := []WarrantyOption{
		{ID: "WT-115", Category: "single-ply", Membranes: StringList{"TPO"}},
		{ID: "WT-004", Category: "coatings", Membranes: StringList{"Silicone"}},
		{ID: "WT-167", Category: "single-ply", Membranes: StringList{"PVC"}},
	}

	got := FilterWarrantyOptions(opts, "single-ply", "")
	if len(got) != 2 || got[0].ID != "WT-115" || got[1].ID != "WT-167" {
		t.Fatalf("category filter = %v, want WT-115 then WT-167 in input order", ids(got))
	}

	got = FilterWarrantyOptions(opts, "single-ply", "PVC")
	if len(got) != 1 || got[0].ID != "WT-167" {
		t.Fatalf("combined filter = %v, want only WT-167", ids(got))
	}

	if got = FilterWarrantyOptions(opts, "", ""); len(got) != 3 {
		t.Fatalf("no filters returned %d entries, want all 3", len(got))
	}
}

func ids(opts []WarrantyOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.ID
	}
	return out
}

func TestMatchesFilter(t *testing.T) {
	opt := WarrantyOption{
		Category:  "single-ply",
		Membranes: StringList{"TPO", "EPDM"},
	}

	tests := []struct {
		name     string
		category string
		membrane string
		want     bool
	}{
		{"no filters", "", "", true},
		{"category match", "single-ply", "", true},
		{"category mismatch", "coatings", "", false},
		{"membrane match", "", "TPO", true},
		{"membrane mismatch", "", "PVC", false},
		{"both match", "single-ply", "EPDM", true},
		{"category match membrane mismatch", "single-ply", "PVC", false},
		{"case sensitive category", "Single-Ply", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := opt.MatchesFilter(tt.category, tt.membrane); got != tt.want {
				t.Errorf("MatchesFilter(%q, %q) = %v, want %v", tt.category, tt.membrane, got, tt.want)
			}
		})
	}
}
