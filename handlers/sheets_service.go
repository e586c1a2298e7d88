// handlers/sheets_service.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SheetsService talks to the Apps Script web app deployed from the
// warranty comparison spreadsheet. It is an optional supplementary pricing
// source: the rest of the system works with it entirely absent, and its
// row shape stays behind this adapter.
type SheetsService struct {
	baseURL string
	client  *http.Client
}

// NewSheetsService builds the service from SHEETS_API_URL, or returns nil
// when the integration is not configured.
func NewSheetsService() *SheetsService {
	u := os.Getenv("SHEETS_API_URL")
	if u == "" {
		return nil
	}
	return &SheetsService{
		baseURL: u,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SheetPricingRow is one raw row of the Pricing_Submissions tab. Field
// names mirror the sheet's column headers exactly.
type SheetPricingRow struct {
	SubmissionID     string `json:"Submission_ID"`
	Date             string `json:"Date"`
	Manufacturer     string `json:"Manufacturer"`
	Product          string `json:"Product"`
	WarrantyTerm     string `json:"Warranty_Term"`
	RegionState      string `json:"Region_State"`
	SqFtCost         string `json:"Sq_Ft_Cost"`
	TotalProjectCost string `json:"Total_Project_Cost"`
	ProjectSizeSqFt  string `json:"Project_Size_SqFt"`
	SubmittedBy      string `json:"Submitted_By"`
	Verified         string `json:"Verified"`
	Notes            string `json:"Notes"`
}

type sheetResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Pricing []SheetPricingRow `json:"pricing"`
}

// SheetSubmission is the normalized form of one sheet row, and the one-way
// push payload for new rows.
type SheetSubmission struct {
	ID               string          `json:"id,omitempty"`
	Date             string          `json:"date,omitempty"`
	Manufacturer     string          `json:"manufacturer"`
	Product          string          `json:"product"`
	WarrantyTerm     string          `json:"warranty_term"`
	RegionState      string          `json:"region_state"`
	SqFtCost         decimal.Decimal `json:"sq_ft_cost"`
	TotalProjectCost decimal.Decimal `json:"total_project_cost"`
	ProjectSizeSqFt  decimal.Decimal `json:"project_size_sqft"`
	SubmittedBy      string          `json:"submitted_by"`
	Verified         bool            `json:"verified,omitempty"`
	Notes            string          `json:"notes"`
}

// SheetPricingGroup collects the sheet submissions for one warranty
// product, keyed by manufacturer|product|term.
type SheetPricingGroup struct {
	Manufacturer string            `json:"manufacturer"`
	Product      string            `json:"product"`
	WarrantyTerm string            `json:"warrantyTerm"`
	Submissions  []SheetSubmission `json:"submissions"`
}

// GroupKey builds the lowercase manufacturer|product|term key used to match
// sheet rows against catalog entries.
func GroupKey(manufacturer, product, term string) string {
	return strings.ToLower(manufacturer + "|" + product + "|" + term)
}

// GroupPricingRows normalizes raw sheet rows and groups them by warranty
// product key. Unparsable numeric cells fall back to zero, matching the
// sheet's own loose typing.
func GroupPricingRows(rows []SheetPricingRow) map[string]*SheetPricingGroup {
	groups := make(map[string]*SheetPricingGroup)
	for _, row := range rows {
		key := GroupKey(row.Manufacturer, row.Product, row.WarrantyTerm)
		g, ok := groups[key]
		if !ok {
			g = &SheetPricingGroup{
				Manufacturer: row.Manufacturer,
				Product:      row.Product,
				WarrantyTerm: row.WarrantyTerm,
			}
			groups[key] = g
		}
		g.Submissions = append(g.Submissions, SheetSubmission{
			ID:               row.SubmissionID,
			Date:             row.Date,
			Manufacturer:     row.Manufacturer,
			Product:          row.Product,
			WarrantyTerm:     row.WarrantyTerm,
			RegionState:      row.RegionState,
			SqFtCost:         parseSheetDecimal(row.SqFtCost),
			TotalProjectCost: parseSheetDecimal(row.TotalProjectCost),
			ProjectSizeSqFt:  parseSheetDecimal(row.ProjectSizeSqFt),
			SubmittedBy:      row.SubmittedBy,
			Verified:         strings.EqualFold(row.Verified, "TRUE"),
			Notes:            row.Notes,
		})
	}
	return groups
}

func parseSheetDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FetchPricing reads the Pricing_Submissions tab, optionally narrowed by a
// category keyword, and returns normalized groups.
func (s *SheetsService) FetchPricing(ctx context.Context, category string) (map[string]*SheetPricingGroup, error) {
	q := url.Values{"action": {"pricing"}}
	if category != "" {
		q.Set("category", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets fetch: HTTP %d", resp.StatusCode)
	}

	var body sheetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("sheets fetch: decode: %w", err)
	}
	if !body.Success {
		if body.Error == "" {
			body.Error = "unknown error"
		}
		return nil, fmt.Errorf("sheets fetch: %s", body.Error)
	}

	return GroupPricingRows(body.Pricing), nil
}

// SubmitPricing pushes one new pricing row to the sheet. One-way: the
// caller does not wait for the row to come back.
func (s *SheetsService) SubmitPricing(ctx context.Context, sub SheetSubmission) error {
	if sub.SubmittedBy == "" {
		sub.SubmittedBy = "App User"
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheets submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets submit: HTTP %d", resp.StatusCode)
	}
	return nil
}
