package utils

import (
	"sort"

	"github.com/shopspring/decimal"
	"redry.com/roofmri/models"
)

// PricingEngine turns accumulated fee submissions into decision-ready
// per-warranty summaries.
type PricingEngine struct{}

// NewPricingEngine creates a new pricing engine.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// FeeSummary describes the active submissions for one fee type of one
// warranty. Current is the amount of the chronologically last active
// submission; ties on submitted_at resolve to the later-inserted row.
type FeeSummary struct {
	Count   int             `json:"count"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
	Mean    decimal.Decimal `json:"mean"`
	Current decimal.Decimal `json:"current"`
}

// WarrantySummary maps fee type -> summary. A fee type with no active
// submissions is absent from the map entirely: zero is a valid amount and
// must never stand in for "no data".
type WarrantySummary map[string]FeeSummary

// meanPlaces returns the mean's decimal precision per fee type: dollar-like
// base fees keep 2 places, per-square-foot rates keep 3.
func meanPlaces(feeType string) int32 {
	if feeType == models.FeeTypePSF {
		return 3
	}
	return 2
}

// Summarize aggregates the submissions of a single warranty. Input order is
// arbitrary; the engine sorts by submitted_at itself, stably, so rows with
// identical timestamps keep their insertion order.
func (pe *PricingEngine) Summarize(subs []models.PricingSubmission) WarrantySummary {
	byType := make(map[string][]models.PricingSubmission)
	for _, s := range subs {
		if s.Status != models.SubmissionStatusActive {
			continue
		}
		byType[s.FeeType] = append(byType[s.FeeType], s)
	}

	summary := make(WarrantySummary, len(byType))
	for feeType, rows := range byType {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].SubmittedAt.Time().Before(rows[j].SubmittedAt.Time())
		})

		min := rows[0].Amount
		max := rows[0].Amount
		sum := decimal.Zero
		for _, r := range rows {
			// Exact comparison on the stored decimal; these are quoted
			// currency values, not computed floats.
			if r.Amount.Cmp(min) < 0 {
				min = r.Amount
			}
			if r.Amount.Cmp(max) > 0 {
				max = r.Amount
			}
			sum = sum.Add(r.Amount)
		}

		summary[feeType] = FeeSummary{
			Count:   len(rows),
			Min:     min,
			Max:     max,
			Mean:    sum.DivRound(decimal.NewFromInt(int64(len(rows))), meanPlaces(feeType)),
			Current: rows[len(rows)-1].Amount,
		}
	}
	return summary
}

// SummarizeByWarranty groups a mixed submission set by warranty id and
// summarizes each group. Warranties with no active submissions yield no key.
func (pe *PricingEngine) SummarizeByWarranty(subs []models.PricingSubmission) map[string]WarrantySummary {
	byWarranty := make(map[string][]models.PricingSubmission)
	for _, s := range subs {
		byWarranty[s.WarrantyID] = append(byWarranty[s.WarrantyID], s)
	}

	out := make(map[string]WarrantySummary, len(byWarranty))
	for id, rows := range byWarranty {
		if summary := pe.Summarize(rows); len(summary) > 0 {
			out[id] = summary
		}
	}
	return out
}
