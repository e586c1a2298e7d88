// models/inspection.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Inspection statuses.
const (
	InspectionStatusCompleted = "completed"
	InspectionStatusScheduled = "scheduled"
	InspectionStatusOverdue   = "overdue"
)

// Inspection is one roof inspection, scheduled or completed. Score is nil
// until the inspection has actually happened.
type Inspection struct {
	ID           string         `gorm:"primaryKey;size:40" json:"id"`
	RoofID       string         `gorm:"size:40;index;not null" json:"roofId"`
	Date         string         `gorm:"size:10;not null" json:"date"`
	Inspector    string         `gorm:"size:120" json:"inspector"`
	Company      string         `gorm:"size:120" json:"company"`
	Type         string         `gorm:"size:80;not null" json:"type"`
	Status       string         `gorm:"size:15;not null" json:"status"`
	Score        *int           `json:"score"`
	PhotoCount   int            `gorm:"column:photo_count" json:"photoCount"`
	Photos       pq.StringArray `gorm:"type:text[]" json:"photos"`
	MoistureData bool           `gorm:"column:moisture_data" json:"moistureData"`

	// ScanData holds the raw moisture scan readings when MoistureData is
	// true. Opaque to the API; stored and returned as-is.
	ScanData datatypes.JSON `gorm:"column:scan_data" json:"scanData,omitempty"`
	Notes    string         `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *Inspection) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = "insp-" + uuid.NewString()
	}
	return
}
