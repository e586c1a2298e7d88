// models/pricing.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fee types for pricing submissions.
const (
	FeeTypeBase = "base" // flat warranty fee in dollars
	FeeTypePSF  = "psf"  // fee per square foot
)

// Submission statuses. Submissions are append-only; withdrawal is the only
// permitted transition.
const (
	SubmissionStatusActive    = "active"
	SubmissionStatusWithdrawn = "withdrawn"
)

// PricingSubmission is one contractor quote for a catalog warranty's fee.
// Rows accumulate over time per warranty and fee type; they are never
// updated or deleted, only withdrawn.
type PricingSubmission struct {
	ID string `gorm:"primaryKey;size:40" json:"id"`

	// Seq preserves insertion order. Two submissions sharing a
	// submitted_at timestamp resolve "current" by the higher Seq.
	Seq        int64           `gorm:"autoIncrement;uniqueIndex" json:"-"`
	WarrantyID string          `gorm:"size:20;index;not null" json:"warrantyId"`
	FeeType    string          `gorm:"size:10;not null" json:"feeType"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"amount"`
	Status     string          `gorm:"size:15;not null;default:active" json:"status"`

	// RegionState and SubmittedBy come from the spreadsheet source when a
	// row originated there; empty for rows created through the API.
	RegionState string `gorm:"size:40" json:"regionState,omitempty"`
	SubmittedBy string `gorm:"size:120" json:"submittedBy,omitempty"`

	SubmittedAt JSONTime  `gorm:"not null" json:"submittedAt"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ps *PricingSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if ps.ID == "" {
		ps.ID = "sub-" + uuid.NewString()
	}
	return
}
