package models

import (
	"encoding/json"
	"testing"
)

func TestStringListValueScanRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   StringList
	}{
		{"nil list", nil},
		{"empty list", StringList{}},
		{"single", StringList{"TPO"}},
		{"multiple", StringList{"TPO", "EPDM", "PVC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.in.Value()
			if err != nil {
				t.Fatalf("Value() error: %v", err)
			}

			var out StringList
			if err := out.Scan(v); err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if len(out) != len(tt.in) {
				t.Fatalf("round trip length = %d, want %d", len(out), len(tt.in))
			}
			for i := range tt.in {
				if out[i] != tt.in[i] {
					t.Errorf("round trip[%d] = %q, want %q", i, out[i], tt.in[i])
				}
			}
		})
	}
}

func TestStringListScanNull(t *testing.T) {
	var out StringList
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("Scan(nil) = %v, want empty non-nil list", out)
	}
}

func TestStringListMarshalNilAsEmptyArray(t *testing.T) {
	var list StringList
	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(nil) = %s, want []", data)
	}
}

func TestStringListContains(t *testing.T) {
	list := StringList{"TPO", "EPDM"}
	if !list.Contains("TPO") {
		t.Error("Contains(TPO) = false, want true")
	}
	if list.Contains("PVC") {
		t.Error("Contains(PVC) = true, want false")
	}
	if (StringList{}).Contains("TPO") {
		t.Error("empty list Contains(TPO) = true, want false")
	}
}
