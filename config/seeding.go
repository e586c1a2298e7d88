package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

// Reseed truncates and reloads the demo dataset inside one transaction.
// Either the full dataset loads or the previous contents survive intact.
func Reseed(db *gorm.DB) error {
	logrus.Info("reseeding database")
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`TRUNCATE claim_events, claims, inspections, invoices, access_logs,
			pricing_submissions, warranty_db, roof_warranties, roofs,
			properties, property_managers, owners CASCADE`).Error; err != nil {
			return err
		}
		if err := seedAccounts(tx); err != nil {
			return err
		}
		if err := seedCatalog(tx); err != nil {
			return err
		}
		if err := seedPricing(tx); err != nil {
			return err
		}
		if err := seedRoofRecords(tx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := SeedDefaultUser(db); err != nil {
		return err
	}
	logrus.Info("seed complete")
	return nil
}

// SeedDefaultUser creates the admin login when no user exists yet. Separate
// from Reseed so user accounts survive dataset reloads.
func SeedDefaultUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme-now"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin",
		Email:        "admin@re-dry.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("email", admin.Email).Info("created default admin user")
	return nil
}

func seedAccounts(tx *gorm.DB) error {
	owners := []models.Owner{
		{ID: "own-1", Name: "Vanderbilt Capital Partners", Contact: "Richard Vanderbilt III", Email: "rvanderbilt@vcpartners.com", Phone: "(615) 555-0100", Notes: "Owns 12 commercial properties across Middle TN. Long-term hold strategy."},
		{ID: "own-2", Name: "Greenway Health Systems", Contact: "Dr. Marcia Langford", Email: "mlangford@greenwayhealthsys.com", Phone: "(615) 555-0300", Notes: "Healthcare REIT. Extremely sensitive to leaks - medical equipment and patient safety."},
		{ID: "own-3", Name: "Summit Retail Holdings", Contact: "James Thornton", Email: "jthornton@summitretail.com", Phone: "(615) 555-0400", Notes: "Strip mall portfolio. Price-sensitive, but understands warranty value after losing coverage on Cool Springs location."},
	}
	if err := tx.Create(&owners).Error; err != nil {
		return err
	}

	managers := []models.PropertyManager{
		{ID: "pm-1", OwnerID: "own-1", Name: "Cornerstone Property Management", Contact: "Sarah Mitchell", Email: "smitchell@cornerstonepm.com", Phone: "(615) 555-0150", Notes: "Manages 6 of VCP's Nashville properties"},
		{ID: "pm-2", OwnerID: "own-3", Name: "Alliance Facility Services", Contact: "Mike Rodriguez", Email: "mrodriguez@alliancefs.com", Phone: "(615) 555-0450", Notes: "Handles all maintenance for Summit's retail portfolio"},
	}
	if err := tx.Create(&managers).Error; err != nil {
		return err
	}

	pm1 := "pm-1"
	pm2 := "pm-2"
	properties := []models.Property{
		{ID: "prop-1", OwnerID: "own-1", ManagedBy: &pm1, Name: "Riverside Office Complex", Address: "1420 Commerce Blvd, Nashville, TN"},
		{ID: "prop-2", OwnerID: "own-1", ManagedBy: &pm1, Name: "Commerce Park Building A", Address: "2200 West End Ave, Nashville, TN"},
		{ID: "prop-3", OwnerID: "own-2", ManagedBy: nil, Name: "Greenway Medical Center", Address: "800 Medical Center Dr, Franklin, TN"},
		{ID: "prop-4", OwnerID: "own-3", ManagedBy: &pm2, Name: "Harding Pike Shopping Center", Address: "4500 Harding Pike, Nashville, TN"},
		{ID: "prop-5", OwnerID: "own-3", ManagedBy: &pm2, Name: "Nolensville Road Plaza", Address: "3200 Nolensville Rd, Nashville, TN"},
	}
	if err := tx.Create(&properties).Error; err != nil {
		return err
	}

	roofs := []models.Roof{
		{ID: "r-1a", PropertyID: "prop-1", Section: "Main Building - Flat", SqFt: 22000, Membrane: "TPO", Installed: "2019-06-15"},
		{ID: "r-1b", PropertyID: "prop-1", Section: "Warehouse Wing", SqFt: 35000, Membrane: "EPDM", Installed: "2017-03-20"},
		{ID: "r-2a", PropertyID: "prop-2", Section: "Full Roof", SqFt: 18000, Membrane: "TPO", Installed: "2021-04-10"},
		{ID: "r-3a", PropertyID: "prop-3", Section: "East Wing", SqFt: 45000, Membrane: "PVC", Installed: "2020-09-01"},
		{ID: "r-3b", PropertyID: "prop-3", Section: "West Wing", SqFt: 38000, Membrane: "TPO", Installed: "2018-11-15"},
		{ID: "r-4a", PropertyID: "prop-4", Section: "Main Retail Strip", SqFt: 52000, Membrane: "Modified Bitumen", Installed: "2015-08-10"},
		{ID: "r-5a", PropertyID: "prop-5", Section: "Full Roof", SqFt: 28000, Membrane: "TPO", Installed: "2022-03-15"},
	}
	if err := tx.Create(&roofs).Error; err != nil {
		return err
	}

	warranties := []models.RoofWarranty{
		{RoofID: "r-1a", Manufacturer: "GAF", WarrantyType: "NDL (No Dollar Limit)", StartDate: "2019-06-15", EndDate: "2039-06-15", Status: models.WarrantyStatusActive, Compliance: models.ComplianceCurrent, NextInsp: "2026-06-15", LastInsp: "2025-12-10",
			Coverage:     models.StringList{"Membrane material defects", "Manufacturing flaws", "Seam failure", "Flashing defects"},
			Exclusions:   models.StringList{"Foot traffic damage", "Acts of God (wind >74mph)", "Unauthorized modifications", "Ponding water >48hrs"},
			Requirements: models.StringList{"Biannual inspection by certified contractor", "Maintain drainage systems", "Report damage within 30 days", "No unauthorized penetrations"}},
		{RoofID: "r-1b", Manufacturer: "Carlisle", WarrantyType: "Material Only", StartDate: "2017-03-20", EndDate: "2032-03-20", Status: models.WarrantyStatusActive, Compliance: models.ComplianceAtRisk, NextInsp: "2026-03-20", LastInsp: "2024-09-15",
			Coverage:     models.StringList{"Membrane material defects", "Adhesive failure"},
			Exclusions:   models.StringList{"Workmanship", "Foot traffic damage", "Chemical exposure", "Ponding water"},
			Requirements: models.StringList{"Annual inspection", "Maintain all flashings", "Professional repairs only"}},
		{RoofID: "r-2a", Manufacturer: "GAF", WarrantyType: "NDL (No Dollar Limit)", StartDate: "2021-04-10", EndDate: "2041-04-10", Status: models.WarrantyStatusActive, Compliance: models.ComplianceCurrent, NextInsp: "2026-10-10", LastInsp: "2025-10-08",
			Coverage:     models.StringList{"Material defects", "Manufacturing flaws", "Membrane failure"},
			Exclusions:   models.StringList{"Foot traffic", "Acts of God", "Unauthorized modifications"},
			Requirements: models.StringList{"Biannual inspection", "Maintain drainage", "30-day damage reporting"}},
		{RoofID: "r-3a", Manufacturer: "Sika Sarnafil", WarrantyType: "Full System", StartDate: "2020-09-01", EndDate: "2040-09-01", Status: models.WarrantyStatusActive, Compliance: models.ComplianceCurrent, NextInsp: "2026-09-01", LastInsp: "2025-08-20",
			Coverage:     models.StringList{"Full system warranty", "Material and labor", "Consequential damages up to $500K"},
			Exclusions:   models.StringList{"Acts of God", "Third-party damage", "Unauthorized modifications"},
			Requirements: models.StringList{"Annual manufacturer inspection", "Maintain rooftop equipment pads", "Quarterly drain cleaning"}},
		{RoofID: "r-3b", Manufacturer: "Versico", WarrantyType: "Material + Labor", StartDate: "2018-11-15", EndDate: "2033-11-15", Status: models.WarrantyStatusActive, Compliance: models.ComplianceAtRisk, NextInsp: "2026-05-15", LastInsp: "2024-11-20",
			Coverage:     models.StringList{"Membrane defects", "Seam failure", "Labor for warranty repairs"},
			Exclusions:   models.StringList{"Ponding water", "Foot traffic", "HVAC damage"},
			Requirements: models.StringList{"Biannual inspection", "No rooftop storage", "Report leaks within 14 days"}},
		{RoofID: "r-4a", Manufacturer: "Firestone", WarrantyType: "Material Only", StartDate: "2015-08-10", EndDate: "2030-08-10", Status: models.WarrantyStatusActive, Compliance: models.ComplianceExpiredInsp, NextInsp: "2025-08-10", LastInsp: "2023-08-15",
			Coverage:     models.StringList{"Membrane material defects only"},
			Exclusions:   models.StringList{"All workmanship", "Ponding", "Foot traffic", "HVAC discharge"},
			Requirements: models.StringList{"Annual certified inspection", "Professional repairs within 30 days of discovery"}},
		{RoofID: "r-5a", Manufacturer: "GAF", WarrantyType: "NDL", StartDate: "2022-03-15", EndDate: "2042-03-15", Status: models.WarrantyStatusActive, Compliance: models.ComplianceCurrent, NextInsp: "2026-09-15", LastInsp: "2025-09-10",
			Coverage:     models.StringList{"Full membrane coverage", "Manufacturing defects", "Seam integrity"},
			Exclusions:   models.StringList{"Foot traffic", "Unauthorized penetrations", "Wind >74mph"},
			Requirements: models.StringList{"Biannual inspection", "Maintain drainage", "30-day reporting"}},
	}
	return tx.Create(&warranties).Error
}

// seedCatalog loads the full warranty catalog from warranty_data.json when
// present, falling back to a built-in subset that covers every warranty the
// pricing seed references.
func seedCatalog(tx *gorm.DB) error {
	path := os.Getenv("WARRANTY_DATA_PATH")
	if path == "" {
		path = "warranty_data.json"
	}

	if data, err := os.ReadFile(path); err == nil {
		var options []models.WarrantyOption
		if err := json.Unmarshal(data, &options); err != nil {
			return err
		}
		logrus.WithField("count", len(options)).Info("loading warranty catalog from file")
		return tx.CreateInBatches(&options, 100).Error
	}

	logrus.Info("warranty_data.json not found, loading built-in catalog subset")
	return tx.Create(builtinCatalog()).Error
}

func builtinCatalog() *[]models.WarrantyOption {
	gafWind := "74 mph peak gust"
	sikaWind := "72 mph"
	options := []models.WarrantyOption{
		{
			ID: "WT-004", Category: "coatings", Manufacturer: "GACO",
			Name: "GACO Silicone L&M NDL 20-Year", Membranes: models.StringList{"Silicone"},
			Term: 20, LaborCovered: true, MaterialCovered: true, Consequential: false,
			InspFreq: "Annual", InspBy: "Approved applicator", Transferable: true,
			PondingExcluded: false, NDL: true,
			Strengths:  models.StringList{"Ponding water covered", "Labor and material"},
			Weaknesses: models.StringList{"Applicator network smaller than major single-ply brands"},
			BestFor:    "Coating restorations over metal and single-ply",
			Rating:     4.8,
		},
		{
			ID: "WT-051", Category: "coatings", Manufacturer: "Henry",
			Name: "Henry Pro-Grade 988 Gold Seal 20-Year", Membranes: models.StringList{"Silicone"},
			Term: 20, LaborCovered: true, MaterialCovered: true, Consequential: false,
			InspFreq: "Annual", InspBy: "Certified contractor", Transferable: true,
			PondingExcluded: false, NDL: false,
			Strengths:  models.StringList{"Strong material coverage", "Established brand"},
			Weaknesses: models.StringList{"Gold Seal tier requires certified applicator"},
			BestFor:    "Budget-conscious silicone restorations",
			Rating:     4.5,
		},
		{
			ID: "WT-115", Category: "single-ply", Manufacturer: "GAF",
			Name: "GAF TPO Diamond Pledge 15-Year NDL", Membranes: models.StringList{"TPO"},
			Term: 15, LaborCovered: true, MaterialCovered: true, Consequential: false,
			InspFreq: "Biannual", InspBy: "GAF certified contractor", Transferable: true,
			PondingExcluded: true, WindLimit: &gafWind, NDL: true,
			Strengths:  models.StringList{"No dollar limit", "Large contractor network", "Edge-to-edge coverage"},
			Weaknesses: models.StringList{"Ponding water excluded", "Biannual inspection burden"},
			BestFor:    "Commercial TPO installs needing full repair cost coverage",
			Rating:     4.8,
		},
		{
			ID: "WT-167", Category: "single-ply", Manufacturer: "Sika Sarnafil",
			Name: "Sika Sarnafil PVC 20-Year NDL", Membranes: models.StringList{"PVC"},
			Term: 20, LaborCovered: true, MaterialCovered: true, Consequential: true,
			InspFreq: "Annual", InspBy: "Manufacturer rep", Transferable: true,
			PondingExcluded: false, WindLimit: &sikaWind, NDL: true,
			Strengths:  models.StringList{"Consequential damage coverage", "Manufacturer-performed inspections", "Premium membrane"},
			Weaknesses: models.StringList{"Highest fee tier", "Smaller applicator base"},
			BestFor:    "Critical facilities where leak consequences are severe",
			Rating:     4.9,
		},
	}
	return &options
}

func seedPricing(tx *gorm.DB) error {
	type row struct {
		warrantyID string
		feeType    string
		amount     string
		at         string
	}
	rows := []row{
		{"WT-115", models.FeeTypeBase, "2500", "2025-11-01T00:00:00Z"},
		{"WT-115", models.FeeTypeBase, "2800", "2025-12-15T00:00:00Z"},
		{"WT-115", models.FeeTypeBase, "2650", "2026-01-20T00:00:00Z"},
		{"WT-115", models.FeeTypePSF, "0.08", "2025-11-01T00:00:00Z"},
		{"WT-115", models.FeeTypePSF, "0.09", "2025-12-15T00:00:00Z"},
		{"WT-115", models.FeeTypePSF, "0.085", "2026-01-20T00:00:00Z"},
		{"WT-004", models.FeeTypeBase, "1800", "2025-10-10T00:00:00Z"},
		{"WT-004", models.FeeTypeBase, "2100", "2025-11-22T00:00:00Z"},
		{"WT-004", models.FeeTypeBase, "1950", "2026-01-05T00:00:00Z"},
		{"WT-004", models.FeeTypePSF, "0.06", "2025-10-10T00:00:00Z"},
		{"WT-004", models.FeeTypePSF, "0.07", "2025-11-22T00:00:00Z"},
		{"WT-004", models.FeeTypePSF, "0.065", "2026-01-05T00:00:00Z"},
		{"WT-051", models.FeeTypeBase, "2200", "2025-12-01T00:00:00Z"},
		{"WT-051", models.FeeTypeBase, "2400", "2026-01-10T00:00:00Z"},
		{"WT-051", models.FeeTypePSF, "0.07", "2025-12-01T00:00:00Z"},
		{"WT-051", models.FeeTypePSF, "0.075", "2026-01-10T00:00:00Z"},
		{"WT-167", models.FeeTypeBase, "4500", "2025-09-15T00:00:00Z"},
		{"WT-167", models.FeeTypeBase, "5000", "2025-11-10T00:00:00Z"},
		{"WT-167", models.FeeTypeBase, "4800", "2026-02-01T00:00:00Z"},
		{"WT-167", models.FeeTypePSF, "0.14", "2025-09-15T00:00:00Z"},
		{"WT-167", models.FeeTypePSF, "0.15", "2025-11-10T00:00:00Z"},
		{"WT-167", models.FeeTypePSF, "0.145", "2026-02-01T00:00:00Z"},
	}
	for _, r := range rows {
		sub := models.PricingSubmission{
			WarrantyID:  r.warrantyID,
			FeeType:     r.feeType,
			Amount:      decimal.RequireFromString(r.amount),
			Status:      models.SubmissionStatusActive,
			SubmittedAt: seedTime(r.at),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRoofRecords(tx *gorm.DB) error {
	accessLogs := []models.AccessLog{
		{ID: "al-1", RoofID: "r-1a", Person: "Mike Torres", Company: "Nashville HVAC Pro", Purpose: "HVAC unit service", Date: seedTime("2025-12-08T09:30:00Z"), Duration: "2.5 hrs", Notes: "Routine condenser service. Used ladder at NE access."},
		{ID: "al-2", RoofID: "r-1a", Person: "Unknown", Company: "Unknown", Purpose: "Unauthorized access", Date: seedTime("2025-12-12T14:15:00Z"), Duration: "Unknown", Notes: "QR not scanned. Camera showed individual on roof near HVAC unit."},
		{ID: "al-3", RoofID: "r-1a", Person: "Billy Hargrove", Company: "Riverland Roofing", Purpose: "MRI moisture scan", Date: seedTime("2025-12-18T08:00:00Z"), Duration: "3 hrs", Notes: "Full scan completed. Puncture found near NE HVAC unit."},
		{ID: "al-4", RoofID: "r-3a", Person: "David Kim", Company: "Greenway Facilities", Purpose: "Drain inspection", Date: seedTime("2026-01-05T10:00:00Z"), Duration: "45 min", Notes: "Quarterly drain cleaning per warranty requirements."},
		{ID: "al-5", RoofID: "r-4a", Person: "Jeff Simmons", Company: "Pinnacle Signs", Purpose: "Sign installation", Date: seedTime("2025-11-20T13:00:00Z"), Duration: "4 hrs", Notes: "New tenant signage. Penetrations made without contractor notification."},
		{ID: "al-6", RoofID: "r-1b", Person: "Sarah Mitchell", Company: "Cornerstone PM", Purpose: "Annual walkthrough", Date: seedTime("2026-01-15T11:00:00Z"), Duration: "1 hr", Notes: "PM inspection. Noted ponding near drain #3."},
	}
	if err := tx.Create(&accessLogs).Error; err != nil {
		return err
	}

	gafReason := "Seam separation may be covered under GAF NDL warranty"
	versicoReason := "Membrane defect may fall under Versico Material + Labor coverage"
	signReason := "Leak may be linked to unauthorized sign penetration - third-party liability, not warranty"
	invoices := []models.Invoice{
		{ID: "inv-1", RoofID: "r-1a", Vendor: "Riverland Roofing", Date: "2025-12-20", Amount: 4200, Description: "Seam repair - NE section near HVAC", Flagged: true, FlagReason: &gafReason, Status: models.InvoiceStatusReview},
		{ID: "inv-2", RoofID: "r-1b", Vendor: "Acme Roofing", Date: "2025-10-15", Amount: 1800, Description: "Flashing repair - west parapet", Status: models.InvoiceStatusPaid},
		{ID: "inv-3", RoofID: "r-3b", Vendor: "Quality Roof Repair", Date: "2025-09-22", Amount: 6500, Description: "Membrane patch - 200 sqft area", Flagged: true, FlagReason: &versicoReason, Status: models.InvoiceStatusReview},
		{ID: "inv-4", RoofID: "r-4a", Vendor: "Pinnacle Roofing", Date: "2025-11-30", Amount: 3200, Description: "Emergency leak repair - tenant space", Flagged: true, FlagReason: &signReason, Status: models.InvoiceStatusReview},
		{ID: "inv-5", RoofID: "r-5a", Vendor: "Riverland Roofing", Date: "2026-01-10", Amount: 950, Description: "Drain basket replacement x3", Status: models.InvoiceStatusPaid},
		{ID: "inv-6", RoofID: "r-3a", Vendor: "Sika Sarnafil Direct", Date: "2025-07-18", Amount: 0, Description: "Warranty repair - manufacturer dispatched crew", Status: models.InvoiceStatusWarranty},
	}
	if err := tx.Create(&invoices).Error; err != nil {
		return err
	}

	score1 := 87
	score2 := 94
	inspections := []models.Inspection{
		{ID: "insp-1", RoofID: "r-1a", Date: "2025-12-10", Inspector: "Billy Hargrove", Company: "Riverland Roofing", Type: "Biannual + MRI Scan", Status: models.InspectionStatusCompleted, Score: &score1, PhotoCount: 24, MoistureData: true, Notes: "Puncture found near NE HVAC. Seam wear on south section. Drains clear."},
		{ID: "insp-2", RoofID: "r-3a", Date: "2025-08-20", Inspector: "Adam G.", Company: "Roof MRI", Type: "Annual + MRI Scan", Status: models.InspectionStatusCompleted, Score: &score2, PhotoCount: 18, MoistureData: true, Notes: "Excellent condition. All drains clear. No moisture detected."},
		{ID: "insp-3", RoofID: "r-1a", Date: "2026-06-15", Inspector: "TBD", Company: "TBD", Type: "Biannual", Status: models.InspectionStatusScheduled, Notes: "Due per GAF NDL requirements."},
		{ID: "insp-4", RoofID: "r-4a", Date: "2025-08-10", Inspector: "-", Company: "-", Type: "Annual", Status: models.InspectionStatusOverdue, Notes: "OVERDUE. Last inspection Aug 2023. Warranty compliance at risk."},
		{ID: "insp-5", RoofID: "r-1b", Date: "2026-03-20", Inspector: "TBD", Company: "TBD", Type: "Annual", Status: models.InspectionStatusScheduled, Notes: "Carlisle requires annual inspection."},
	}
	if err := tx.Create(&inspections).Error; err != nil {
		return err
	}

	claims := []models.Claim{
		{ID: "cl-1", RoofID: "r-3b", Manufacturer: "Versico", Filed: "2025-10-01", Amount: 3200, Status: models.ClaimStatusApproved, Description: "Membrane delamination - 200 sqft area, west section",
			Timeline: []models.ClaimEvent{
				{Date: "2025-10-01", Event: "Claim filed with Versico. Included MRI scan data, photos, and inspection report.", SortOrder: 0},
				{Date: "2025-10-08", Event: "Versico acknowledged receipt. Assigned claim #VER-2025-4412.", SortOrder: 1},
				{Date: "2025-10-22", Event: "Versico field rep inspected. Confirmed manufacturing defect in membrane batch.", SortOrder: 2},
				{Date: "2025-11-05", Event: "Claim approved. $3,200 repair authorized under Material + Labor warranty.", SortOrder: 3},
				{Date: "2025-11-18", Event: "Repair completed by Versico-authorized contractor.", SortOrder: 4},
			}},
		{ID: "cl-2", RoofID: "r-1a", Manufacturer: "GAF", Filed: "2026-01-10", Amount: 4200, Status: models.ClaimStatusInProgress, Description: "Seam separation near HVAC unit - potential third-party cause",
			Timeline: []models.ClaimEvent{
				{Date: "2026-01-10", Event: "Claim filed with GAF. Included MRI scan showing moisture at seam, QR access log showing unauthorized roof access 12/12.", SortOrder: 0},
				{Date: "2026-01-15", Event: "GAF acknowledged. Requested additional documentation on HVAC contractor visits.", SortOrder: 1},
				{Date: "2026-01-28", Event: "Submitted HVAC service records and QR access log timeline. Awaiting field inspection.", SortOrder: 2},
			}},
	}
	return tx.Create(&claims).Error
}

func seedTime(s string) models.JSONTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		logrus.WithField("value", s).Fatal("bad seed timestamp")
	}
	return models.JSONTime(t)
}
