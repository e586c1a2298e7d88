// models/invoice.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses. "review" invoices carry a reviewer's hypothesis that the
// cost belongs under warranty; resolution moves them to "paid" or "warranty".
const (
	InvoiceStatusReview   = "review"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusWarranty = "warranty"
)

// Invoice is a vendor repair invoice against one roof.
type Invoice struct {
	ID          string  `gorm:"primaryKey;size:40" json:"id"`
	RoofID      string  `gorm:"size:40;index;not null" json:"roofId"`
	Vendor      string  `gorm:"size:120;not null" json:"vendor"`
	Date        string  `gorm:"size:10;not null" json:"date"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"type:text" json:"description"`
	Flagged     bool    `json:"flagged"`
	FlagReason  *string `gorm:"column:flag_reason;type:text" json:"flagReason"`
	Status      string  `gorm:"size:15;not null;default:review" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (inv *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if inv.ID == "" {
		inv.ID = "inv-" + uuid.NewString()
	}
	return
}
