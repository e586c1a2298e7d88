// handlers/pricing.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"redry.com/roofmri/middleware"
	"redry.com/roofmri/models"
	"redry.com/roofmri/utils"
)

type PricingHandler struct {
	db     *gorm.DB
	engine *utils.PricingEngine
	sheets *SheetsService
}

func NewPricingHandler(db *gorm.DB, sheets *SheetsService) *PricingHandler {
	return &PricingHandler{
		db:     db,
		engine: utils.NewPricingEngine(),
		sheets: sheets,
	}
}

// ListSubmissions returns the submission log, newest first, optionally
// narrowed by warranty and fee type.
func (h *PricingHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := h.db.Model(&models.PricingSubmission{})
	if warrantyID := r.URL.Query().Get("warranty_id"); warrantyID != "" {
		q = q.Where("warranty_id = ?", warrantyID)
	}
	if feeType := r.URL.Query().Get("fee_type"); feeType != "" {
		q = q.Where("fee_type = ?", feeType)
	}

	var subs []models.PricingSubmission
	if err := q.Order("submitted_at DESC, seq DESC").Find(&subs).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type createSubmissionReq struct {
	WarrantyID  string           `json:"warrantyId" validate:"required"`
	FeeType     string           `json:"feeType" validate:"required,oneof=base psf"`
	Amount      decimal.Decimal  `json:"amount"`
	RegionState string           `json:"regionState"`
	SubmittedAt *models.JSONTime `json:"submittedAt"`
}

// CreateSubmission appends one fee quote to the log. When the spreadsheet
// integration is configured the row is also pushed there, best effort.
func (h *PricingHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "amount must be a positive decimal")
		return
	}

	var option models.WarrantyOption
	if err := h.db.First(&option, "id = ?", req.WarrantyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "unknown warranty id")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	sub := models.PricingSubmission{
		WarrantyID:  req.WarrantyID,
		FeeType:     req.FeeType,
		Amount:      req.Amount,
		Status:      models.SubmissionStatusActive,
		RegionState: req.RegionState,
		SubmittedBy: middleware.GetUserName(r),
		SubmittedAt: timeOrNow(req.SubmittedAt),
	}
	if err := h.db.Create(&sub).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	if h.sheets != nil && req.FeeType == models.FeeTypePSF {
		if err := h.sheets.SubmitPricing(r.Context(), SheetSubmission{
			Manufacturer: option.Manufacturer,
			Product:      option.Name,
			WarrantyTerm: termLabel(option.Term),
			RegionState:  req.RegionState,
			SqFtCost:     req.Amount,
			SubmittedBy:  sub.SubmittedBy,
		}); err != nil {
			logrus.WithError(err).WithField("submission", sub.ID).
				Warn("sheet push failed; submission stored locally")
		}
	}

	writeJSON(w, http.StatusCreated, sub)
}

// Withdraw moves an active submission to withdrawn. The only status
// transition submissions support.
func (h *PricingHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var sub models.PricingSubmission
	if err := h.db.First(&sub, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "submission not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	if sub.Status != models.SubmissionStatusActive {
		writeError(w, http.StatusConflict, "submission already withdrawn")
		return
	}

	sub.Status = models.SubmissionStatusWithdrawn
	if err := h.db.Model(&sub).Update("status", sub.Status).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// Summary aggregates every warranty's active submissions. Warranties whose
// submissions are all withdrawn are absent from the result, same as
// warranties that never had any.
func (h *PricingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var subs []models.PricingSubmission
	if err := h.db.Order("seq ASC").Find(&subs).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.engine.SummarizeByWarranty(subs))
}

// SummaryForWarranty aggregates one warranty. An empty object means no
// active submissions; callers must not read zeros into it.
func (h *PricingHandler) SummaryForWarranty(w http.ResponseWriter, r *http.Request) {
	warrantyID := mux.Vars(r)["warrantyId"]

	var subs []models.PricingSubmission
	if err := h.db.Where("warranty_id = ?", warrantyID).Order("seq ASC").Find(&subs).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Summarize(subs))
}

// SheetPricing proxies the supplementary spreadsheet source, normalized to
// grouped submission shape.
func (h *PricingHandler) SheetPricing(w http.ResponseWriter, r *http.Request) {
	if h.sheets == nil {
		writeError(w, http.StatusServiceUnavailable, "sheets integration not configured")
		return
	}
	groups, err := h.sheets.FetchPricing(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func termLabel(years int) string {
	if years == 1 {
		return "1 Year"
	}
	return strconv.Itoa(years) + " Years"
}
