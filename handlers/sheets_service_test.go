package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testSheetsService(url string) *SheetsService {
	return &SheetsService{
		baseURL: url,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestFetchPricingGroupsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "pricing" {
			t.Errorf("action = %q, want pricing", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"pricing":[
			{"Submission_ID":"s-1","Manufacturer":"GAF","Product":"TPO Diamond Pledge","Warranty_Term":"15 Years","Sq_Ft_Cost":"0.08","Verified":"TRUE"},
			{"Submission_ID":"s-2","Manufacturer":"gaf","Product":"tpo diamond pledge","Warranty_Term":"15 YEARS","Sq_Ft_Cost":"0.09","Verified":"FALSE"},
			{"Submission_ID":"s-3","Manufacturer":"Sika Sarnafil","Product":"PVC","Warranty_Term":"20 Years","Total_Project_Cost":"1,250.50"}
		]}`))
	}))
	defer srv.Close()

	groups, err := testSheetsService(srv.URL).FetchPricing(context.Background(), "")
	if err != nil {
		t.Fatalf("FetchPricing error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	gaf, ok := groups[GroupKey("GAF", "TPO Diamond Pledge", "15 Years")]
	if !ok {
		t.Fatal("missing GAF group")
	}
	if len(gaf.Submissions) != 2 {
		t.Fatalf("GAF group has %d submissions, want 2 (case-insensitive key)", len(gaf.Submissions))
	}
	if !gaf.Submissions[0].Verified {
		t.Error("first GAF submission Verified = false, want true")
	}
	if gaf.Submissions[1].Verified {
		t.Error("second GAF submission Verified = true, want false")
	}
	if want := decimal.RequireFromString("0.08"); !gaf.Submissions[0].SqFtCost.Equal(want) {
		t.Errorf("SqFtCost = %s, want %s", gaf.Submissions[0].SqFtCost, want)
	}

	sika := groups[GroupKey("Sika Sarnafil", "PVC", "20 Years")]
	if sika == nil {
		t.Fatal("missing Sika group")
	}
	if want := decimal.RequireFromString("1250.50"); !sika.Submissions[0].TotalProjectCost.Equal(want) {
		t.Errorf("comma-formatted TotalProjectCost = %s, want %s", sika.Submissions[0].TotalProjectCost, want)
	}
}

func TestFetchPricingAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"sheet locked"}`))
	}))
	defer srv.Close()

	_, err := testSheetsService(srv.URL).FetchPricing(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for success=false response")
	}
}

func TestFetchPricingHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testSheetsService(srv.URL).FetchPricing(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for HTTP 502")
	}
}

func TestSubmitPricingDefaultsSubmitter(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := testSheetsService(srv.URL).SubmitPricing(context.Background(), SheetSubmission{
		Manufacturer: "GAF",
		Product:      "TPO Diamond Pledge",
		WarrantyTerm: "15 Years",
		SqFtCost:     decimal.RequireFromString("0.08"),
	})
	if err != nil {
		t.Fatalf("SubmitPricing error: %v", err)
	}
	if gotBody["submitted_by"] != "App User" {
		t.Errorf("submitted_by = %v, want App User", gotBody["submitted_by"])
	}
}

func TestParseSheetDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.08", "0.08"},
		{"2,500", "2500"},
		{" 1,250.50 ", "1250.50"},
		{"", "0"},
		{"n/a", "0"},
	}
	for _, tt := range tests {
		if got := parseSheetDecimal(tt.in); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("parseSheetDecimal(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestGroupKeyCaseFolding(t *testing.T) {
	if GroupKey("GAF", "TPO", "15 Years") != GroupKey("gaf", "tpo", "15 YEARS") {
		t.Error("GroupKey should be case-insensitive")
	}
	if GroupKey("GAF", "TPO", "15 Years") == GroupKey("GAF", "TPO", "20 Years") {
		t.Error("GroupKey should distinguish terms")
	}
}
