package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250612_create_account_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Owner{}, &models.PropertyManager{},
					&models.Property{}, &models.Roof{}, &models.RoofWarranty{})
			},
		},
		{
			ID: "20250619_create_catalog_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.WarrantyOption{}, &models.PricingSubmission{})
			},
		},
		{
			ID: "20250701_create_roof_record_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AccessLog{}, &models.Invoice{},
					&models.Inspection{}, &models.Claim{}, &models.ClaimEvent{})
			},
		},
	})
	return m.Migrate()
}
