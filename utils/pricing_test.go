package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"redry.com/roofmri/models"
)

func sub(warrantyID, feeType, amount, status, submittedAt string) models.PricingSubmission {
	t, err := time.Parse(time.RFC3339, submittedAt)
	if err != nil {
		panic(err)
	}
	return models.PricingSubmission{
		WarrantyID:  warrantyID,
		FeeType:     feeType,
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
		SubmittedAt: models.JSONTime(t),
	}
}

func TestSummarizeBaseFees(t *testing.T) {
	// GAF TPO Diamond Pledge base fee history
	subs := []models.PricingSubmission{
		sub("WT-115", models.FeeTypeBase, "2500", "active", "2025-11-01T00:00:00Z"),
		sub("WT-115", models.FeeTypeBase, "2800", "active", "2025-12-15T00:00:00Z"),
		sub("WT-115", models.FeeTypeBase, "2650", "active", "2026-01-20T00:00:00Z"),
	}

	summary := NewPricingEngine().Summarize(subs)
	base, ok := summary[models.FeeTypeBase]
	if !ok {
		t.Fatal("expected base fee summary")
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"min", base.Min, "2500"},
		{"max", base.Max, "2800"},
		{"mean", base.Mean, "2650.00"},
		{"current", base.Current, "2650"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s = %s, expected %s", c.name, c.got, c.want)
		}
	}
	if base.Count != 3 {
		t.Errorf("count = %d, expected 3", base.Count)
	}
}

func TestSummarizePSFPrecision(t *testing.T) {
	subs := []models.PricingSubmission{
		sub("WT-115", models.FeeTypePSF, "0.08", "active", "2025-11-01T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.09", "active", "2025-12-15T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.085", "active", "2026-01-20T00:00:00Z"),
	}

	psf := NewPricingEngine().Summarize(subs)[models.FeeTypePSF]
	if !psf.Mean.Equal(decimal.RequireFromString("0.085")) {
		t.Errorf("psf mean = %s, expected 0.085", psf.Mean)
	}
	if !psf.Current.Equal(decimal.RequireFromString("0.085")) {
		t.Errorf("psf current = %s, expected 0.085", psf.Current)
	}
}

func TestSummarizeUnsortedInput(t *testing.T) {
	// Engine must sort by submitted_at itself.
	subs := []models.PricingSubmission{
		sub("WT-004", models.FeeTypeBase, "1950", "active", "2026-01-05T00:00:00Z"),
		sub("WT-004", models.FeeTypeBase, "1800", "active", "2025-10-10T00:00:00Z"),
		sub("WT-004", models.FeeTypeBase, "2100", "active", "2025-11-22T00:00:00Z"),
	}

	base := NewPricingEngine().Summarize(subs)[models.FeeTypeBase]
	if !base.Current.Equal(decimal.RequireFromString("1950")) {
		t.Errorf("current = %s, expected 1950 (latest submitted_at)", base.Current)
	}
	if !base.Min.Equal(decimal.RequireFromString("1800")) || !base.Max.Equal(decimal.RequireFromString("2100")) {
		t.Errorf("min/max = %s/%s, expected 1800/2100", base.Min, base.Max)
	}
}

func TestSummarizeTimestampTie(t *testing.T) {
	// Two submissions sharing the latest timestamp: the later-inserted
	// row wins the "current" slot.
	subs := []models.PricingSubmission{
		sub("WT-051", models.FeeTypeBase, "2200", "active", "2025-12-01T00:00:00Z"),
		sub("WT-051", models.FeeTypeBase, "2400", "active", "2026-01-10T00:00:00Z"),
		sub("WT-051", models.FeeTypeBase, "2300", "active", "2026-01-10T00:00:00Z"),
	}

	base := NewPricingEngine().Summarize(subs)[models.FeeTypeBase]
	if !base.Current.Equal(decimal.RequireFromString("2300")) {
		t.Errorf("current = %s, expected 2300 (insertion order breaks the tie)", base.Current)
	}
}

func TestSummarizeExcludesWithdrawn(t *testing.T) {
	subs := []models.PricingSubmission{
		sub("WT-115", models.FeeTypeBase, "2500", "withdrawn", "2025-11-01T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.08", "active", "2025-11-01T00:00:00Z"),
	}

	summary := NewPricingEngine().Summarize(subs)
	if _, ok := summary[models.FeeTypeBase]; ok {
		t.Error("base summary present although its only submission is withdrawn")
	}
	if _, ok := summary[models.FeeTypePSF]; !ok {
		t.Error("psf summary missing")
	}
}

func TestSummarizeZeroAmountIsData(t *testing.T) {
	// A zero amount is a real quote, not "no data".
	subs := []models.PricingSubmission{
		sub("WT-167", models.FeeTypeBase, "0", "active", "2025-09-15T00:00:00Z"),
	}

	summary := NewPricingEngine().Summarize(subs)
	base, ok := summary[models.FeeTypeBase]
	if !ok {
		t.Fatal("expected summary for zero-amount submission")
	}
	if base.Count != 1 || !base.Current.Equal(decimal.Zero) {
		t.Errorf("count/current = %d/%s, expected 1/0", base.Count, base.Current)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := NewPricingEngine().Summarize(nil); len(got) != 0 {
		t.Errorf("expected empty summary, got %v", got)
	}
}

func TestSummarizeOrderingInvariant(t *testing.T) {
	subs := []models.PricingSubmission{
		sub("WT-167", models.FeeTypeBase, "4500", "active", "2025-09-15T00:00:00Z"),
		sub("WT-167", models.FeeTypeBase, "5000", "active", "2025-11-10T00:00:00Z"),
		sub("WT-167", models.FeeTypeBase, "4800", "active", "2026-02-01T00:00:00Z"),
		sub("WT-167", models.FeeTypePSF, "0.14", "active", "2025-09-15T00:00:00Z"),
		sub("WT-167", models.FeeTypePSF, "0.15", "active", "2025-11-10T00:00:00Z"),
		sub("WT-167", models.FeeTypePSF, "0.145", "active", "2026-02-01T00:00:00Z"),
	}

	for feeType, s := range NewPricingEngine().Summarize(subs) {
		if s.Min.Cmp(s.Mean) > 0 || s.Mean.Cmp(s.Max) > 0 {
			t.Errorf("%s: expected min <= mean <= max, got %s/%s/%s", feeType, s.Min, s.Mean, s.Max)
		}
		if s.Current.Cmp(s.Min) < 0 || s.Current.Cmp(s.Max) > 0 {
			t.Errorf("%s: current %s outside [%s, %s]", feeType, s.Current, s.Min, s.Max)
		}
	}
}

func TestSummarizeByWarranty(t *testing.T) {
	subs := []models.PricingSubmission{
		sub("WT-115", models.FeeTypeBase, "2500", "active", "2025-11-01T00:00:00Z"),
		sub("WT-004", models.FeeTypeBase, "1800", "active", "2025-10-10T00:00:00Z"),
		sub("WT-051", models.FeeTypeBase, "2200", "withdrawn", "2025-12-01T00:00:00Z"),
	}

	out := NewPricingEngine().SummarizeByWarranty(subs)
	if len(out) != 2 {
		t.Fatalf("expected 2 warranties with summaries, got %d", len(out))
	}
	if _, ok := out["WT-051"]; ok {
		t.Error("WT-051 has only withdrawn submissions and must be absent")
	}
}

func BenchmarkSummarize(b *testing.B) {
	subs := []models.PricingSubmission{
		sub("WT-115", models.FeeTypeBase, "2500", "active", "2025-11-01T00:00:00Z"),
		sub("WT-115", models.FeeTypeBase, "2800", "active", "2025-12-15T00:00:00Z"),
		sub("WT-115", models.FeeTypeBase, "2650", "active", "2026-01-20T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.08", "active", "2025-11-01T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.09", "active", "2025-12-15T00:00:00Z"),
		sub("WT-115", models.FeeTypePSF, "0.085", "active", "2026-01-20T00:00:00Z"),
	}
	engine := NewPricingEngine()
	for i := 0; i < b.N; i++ {
		engine.Summarize(subs)
	}
}
