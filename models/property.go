// models/property.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyManager is a management company serving exactly one owner.
type PropertyManager struct {
	ID      string `gorm:"primaryKey;size:40" json:"id"`
	OwnerID string `gorm:"size:40;index;not null" json:"ownerId"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Contact string `gorm:"size:120" json:"contact"`
	Email   string `gorm:"size:120" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (pm *PropertyManager) BeforeCreate(tx *gorm.DB) (err error) {
	if pm.ID == "" {
		pm.ID = "pm-" + uuid.NewString()
	}
	return
}

// Property is a building. ManagedBy is nil for self-managed properties.
type Property struct {
	ID        string  `gorm:"primaryKey;size:40" json:"id"`
	OwnerID   string  `gorm:"size:40;index;not null" json:"ownerId"`
	ManagedBy *string `gorm:"size:40" json:"managedBy"`
	Name      string  `gorm:"size:200;not null" json:"name"`
	Address   string  `gorm:"size:300" json:"address"`

	Manager *PropertyManager `gorm:"foreignKey:ManagedBy" json:"manager,omitempty"`
	Roofs   []Roof           `gorm:"foreignKey:PropertyID" json:"roofs,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = "prop-" + uuid.NewString()
	}
	return
}
