// models/owner.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is a building owner. Owners sit at the root of the account tree:
// an owner has properties, a property has roofs, a roof has one warranty.
type Owner struct {
	ID      string `gorm:"primaryKey;size:40" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Contact string `gorm:"size:120" json:"contact"`
	Email   string `gorm:"size:120" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Notes   string `gorm:"type:text" json:"notes"`

	Managers   []PropertyManager `gorm:"foreignKey:OwnerID" json:"managers,omitempty"`
	Properties []Property        `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = "own-" + uuid.NewString()
	}
	return
}
