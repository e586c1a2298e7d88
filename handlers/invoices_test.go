package handlers

import (
	"testing"

	"redry.com/roofmri/models"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"review to paid", models.InvoiceStatusReview, models.InvoiceStatusPaid, true},
		{"review to warranty", models.InvoiceStatusReview, models.InvoiceStatusWarranty, true},
		{"review to review", models.InvoiceStatusReview, models.InvoiceStatusReview, false},
		{"paid is terminal", models.InvoiceStatusPaid, models.InvoiceStatusWarranty, false},
		{"warranty is terminal", models.InvoiceStatusWarranty, models.InvoiceStatusPaid, false},
		{"no reopening", models.InvoiceStatusPaid, models.InvoiceStatusReview, false},
		{"unknown from", "draft", models.InvoiceStatusPaid, false},
		{"unknown to", models.InvoiceStatusReview, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("validTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
