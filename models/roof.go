// models/roof.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roof is one roof section on a property. A roof carries exactly one
// warranty and any number of access logs, invoices, inspections and claims.
type Roof struct {
	ID         string  `gorm:"primaryKey;size:40" json:"id"`
	PropertyID string  `gorm:"size:40;index;not null" json:"propertyId"`
	Section    string  `gorm:"size:120;not null" json:"section"`
	SqFt       float64 `gorm:"column:sq_ft;not null" json:"sqFt"`
	Membrane   string  `gorm:"column:membrane;size:60;not null" json:"membrane"`
	Installed  string  `gorm:"size:10;not null" json:"installed"`

	Warranty *RoofWarranty `gorm:"foreignKey:RoofID" json:"warranty,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Roof) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = "r-" + uuid.NewString()
	}
	return
}

// Roof warranty status values.
const (
	WarrantyStatusActive  = "active"
	WarrantyStatusExpired = "expired"
	WarrantyStatusVoided  = "voided"
)

// Compliance is derived operationally from inspection recency against the
// warranty's inspection-frequency requirement; storage does not enforce it.
const (
	ComplianceCurrent     = "current"
	ComplianceAtRisk      = "at-risk"
	ComplianceExpiredInsp = "expired-inspection"
)

// RoofWarranty is the in-force manufacturer warranty on one roof.
// RoofID is unique: a second warranty for the same roof is a conflict.
type RoofWarranty struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	RoofID       string     `gorm:"size:40;uniqueIndex;not null" json:"roofId"`
	Manufacturer string     `gorm:"size:120;not null" json:"manufacturer"`
	WarrantyType string     `gorm:"column:w_type;size:120;not null" json:"warrantyType"`
	StartDate    string     `gorm:"size:10;not null" json:"startDate"`
	EndDate      string     `gorm:"size:10;not null" json:"endDate"`
	Status       string     `gorm:"size:20;not null;default:active" json:"status"`
	Compliance   string     `gorm:"size:30;not null;default:current" json:"compliance"`
	NextInsp     string     `gorm:"column:next_insp;size:10" json:"nextInsp"`
	LastInsp     string     `gorm:"column:last_insp;size:10" json:"lastInsp"`
	Coverage     StringList `gorm:"type:jsonb;not null" json:"coverage"`
	Exclusions   StringList `gorm:"type:jsonb;not null" json:"exclusions"`
	Requirements StringList `gorm:"type:jsonb;not null" json:"requirements"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
