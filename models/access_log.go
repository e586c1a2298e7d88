// models/access_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessLog records one person's time on a roof. Append-only audit trail;
// "Unknown" entries capture unauthorized access spotted on camera.
type AccessLog struct {
	ID       string   `gorm:"primaryKey;size:40" json:"id"`
	RoofID   string   `gorm:"size:40;index;not null" json:"roofId"`
	Person   string   `gorm:"size:120;not null" json:"person"`
	Company  string   `gorm:"size:120" json:"company"`
	Purpose  string   `gorm:"size:200;not null" json:"purpose"`
	Date     JSONTime `gorm:"not null" json:"date"`
	Duration string   `gorm:"size:40" json:"duration"`
	Notes    string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *AccessLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = "al-" + uuid.NewString()
	}
	return
}
