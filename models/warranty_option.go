// models/warranty_option.go
package models

import "sort"

// WarrantyOption is one entry in the manufacturer warranty catalog
// (~223 products across coatings and single-ply). Reference data only:
// business routes read it, never mutate it.
type WarrantyOption struct {
	ID              string     `gorm:"primaryKey;size:20" json:"id"`
	Category        string     `gorm:"size:60;index;not null" json:"category"`
	Manufacturer    string     `gorm:"size:120;not null" json:"manufacturer"`
	Name            string     `gorm:"size:200;not null" json:"name"`
	Membranes       StringList `gorm:"type:jsonb;not null" json:"membranes"`
	Term            int        `gorm:"not null" json:"term"`
	LaborCovered    bool       `gorm:"column:labor_covered" json:"laborCovered"`
	MaterialCovered bool       `gorm:"column:material_covered" json:"materialCovered"`
	Consequential   bool       `json:"consequential"`
	DollarCap       *float64   `gorm:"column:dollar_cap" json:"dollarCap"`
	InspFreq        string     `gorm:"column:insp_freq;size:60" json:"inspFreq"`
	InspBy          string     `gorm:"column:insp_by;size:120" json:"inspBy"`
	Transferable    bool       `json:"transferable"`
	PondingExcluded bool       `gorm:"column:ponding_excluded" json:"pondingExcluded"`
	WindLimit       *string    `gorm:"column:wind_limit;size:60" json:"windLimit"`
	Strengths       StringList `gorm:"type:jsonb;not null" json:"strengths"`
	Weaknesses      StringList `gorm:"type:jsonb;not null" json:"weaknesses"`
	BestFor         string     `gorm:"column:best_for;type:text" json:"bestFor"`
	Rating          float64    `gorm:"not null" json:"rating"`

	// Optional product-sheet detail; absent for many catalog rows.
	ProductLines        *string  `gorm:"column:product_lines;size:200" json:"productLines"`
	WarrantyName        *string  `gorm:"column:warranty_name;size:200" json:"warrantyName"`
	Thickness           *string  `gorm:"size:60" json:"thickness"`
	InstallationMethod  *string  `gorm:"column:installation_method;size:120" json:"installationMethod"`
	NDL                 bool     `gorm:"column:ndl" json:"ndl"`
	HailCoverage        *string  `gorm:"column:hail_coverage;size:120" json:"hailCoverage"`
	MinRoofSize         *float64 `gorm:"column:min_roof_size" json:"minRoofSize"`
	RecoverEligible     *bool    `gorm:"column:recover_eligible" json:"recoverEligible"`
	RecoverMaxYears     *int     `gorm:"column:recover_max_years" json:"recoverMaxYears"`
	WarrantyFeePerSq    *float64 `gorm:"column:warranty_fee_per_sq" json:"warrantyFeePerSq"`
	MinWarrantyFee      *float64 `gorm:"column:min_warranty_fee" json:"minWarrantyFee"`
	ReferenceURL        *string  `gorm:"column:reference_url;size:300" json:"referenceUrl"`
	Notes               *string  `gorm:"type:text" json:"notes"`
	MaintenanceRequired *string  `gorm:"column:maintenance_required;type:text" json:"maintenanceRequired"`
	TransferPolicy      *string  `gorm:"column:transfer_policy;type:text" json:"transferPolicy"`
}

// TableName keeps the catalog under its historical table name.
func (WarrantyOption) TableName() string {
	return "warranty_db"
}

// MatchesFilter applies the catalog list filters: exact category match and
// membrane set membership, ANDed. Empty filter values impose no constraint.
func (w WarrantyOption) MatchesFilter(category, membrane string) bool {
	if category != "" && w.Category != category {
		return false
	}
	if membrane != "" && !w.Membranes.Contains(membrane) {
		return false
	}
	return true
}

// FilterWarrantyOptions returns the entries matching the catalog list
// filters, preserving input order.
func FilterWarrantyOptions(opts []WarrantyOption, category, membrane string) []WarrantyOption {
	out := make([]WarrantyOption, 0, len(opts))
	for _, o := range opts {
		if o.MatchesFilter(category, membrane) {
			out = append(out, o)
		}
	}
	return out
}

// SortWarrantyOptions orders catalog entries by rating descending, then name
// ascending. The stable secondary key keeps equal-rating ordering
// deterministic.
func SortWarrantyOptions(opts []WarrantyOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].Rating != opts[j].Rating {
			return opts[i].Rating > opts[j].Rating
		}
		return opts[i].Name < opts[j].Name
	})
}
