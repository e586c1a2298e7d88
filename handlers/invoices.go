// handlers/invoices.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.db.Model(&models.Invoice{})
	if roofID := r.URL.Query().Get("roof_id"); roofID != "" {
		q = q.Where("roof_id = ?", roofID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if flagged := r.URL.Query().Get("flagged"); flagged != "" {
		q = q.Where("flagged = ?", flagged == "true")
	}

	var invoices []models.Invoice
	if err := q.Order("date DESC").Find(&invoices).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

type createInvoiceReq struct {
	RoofID      string  `json:"roofId" validate:"required"`
	Vendor      string  `json:"vendor" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description"`
	Flagged     bool    `json:"flagged"`
	FlagReason  *string `json:"flagReason"`
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	var roof models.Roof
	if err := h.db.Select("id").First(&roof, "id = ?", req.RoofID).Error; err != nil {
		writeError(w, http.StatusNotFound, "unknown roof id")
		return
	}

	inv := models.Invoice{
		RoofID:      req.RoofID,
		Vendor:      req.Vendor,
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
		Flagged:     req.Flagged,
		FlagReason:  req.FlagReason,
		Status:      models.InvoiceStatusReview,
	}
	if err := h.db.Create(&inv).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

type invoiceStatusReq struct {
	Status string `json:"status" validate:"required,oneof=review paid warranty"`
}

// UpdateStatus moves an invoice through its review workflow. Invoices
// leave review for paid or warranty and never come back.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req invoiceStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	var inv models.Invoice
	if err := h.db.First(&inv, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "invoice not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if !validTransition(inv.Status, req.Status) {
		writeError(w, http.StatusConflict, "invoice cannot move from "+inv.Status+" to "+req.Status)
		return
	}

	inv.Status = req.Status
	if err := h.db.Model(&inv).Update("status", inv.Status).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// validTransition enforces the invoice workflow. Only review is a live
// state; paid and warranty are terminal.
func validTransition(from, to string) bool {
	if from != models.InvoiceStatusReview {
		return false
	}
	return to == models.InvoiceStatusPaid || to == models.InvoiceStatusWarranty
}
