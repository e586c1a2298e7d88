// models/claim.go
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claim statuses.
const (
	ClaimStatusApproved   = "approved"
	ClaimStatusInProgress = "in-progress"
	ClaimStatusDenied     = "denied"
)

// Claim is a warranty claim filed with a manufacturer for one roof.
// Its timeline is the ordered list of ClaimEvents.
type Claim struct {
	ID           string  `gorm:"primaryKey;size:40" json:"id"`
	RoofID       string  `gorm:"size:40;index;not null" json:"roofId"`
	Manufacturer string  `gorm:"size:120;not null" json:"manufacturer"`
	Filed        string  `gorm:"size:10;not null" json:"filed"`
	Amount       float64 `json:"amount"`
	Status       string  `gorm:"size:15;not null" json:"status"`
	Description  string  `gorm:"type:text" json:"description"`

	// Timeline is strictly ordered by SortOrder. Event dates are
	// informational and may not be monotonic.
	Timeline []ClaimEvent `gorm:"foreignKey:ClaimID" json:"timeline"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Claim) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = "cl-" + uuid.NewString()
	}
	return
}

// SortTimeline orders the claim's events by their stored sequence. Event
// dates are informational and may run out of order; date never drives the
// timeline.
func (c *Claim) SortTimeline() {
	sort.SliceStable(c.Timeline, func(i, j int) bool {
		return c.Timeline[i].SortOrder < c.Timeline[j].SortOrder
	})
}

// ClaimEvent is one step in a claim's timeline. Append-only.
type ClaimEvent struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ClaimID   string `gorm:"size:40;index;not null" json:"-"`
	Date      string `gorm:"size:10;not null" json:"date"`
	Event     string `gorm:"type:text;not null" json:"event"`
	SortOrder int    `gorm:"column:sort_order;not null" json:"sortOrder"`
}
