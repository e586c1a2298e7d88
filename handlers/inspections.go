// handlers/inspections.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type InspectionHandler struct {
	db *gorm.DB
}

func NewInspectionHandler(db *gorm.DB) *InspectionHandler {
	return &InspectionHandler{db: db}
}

func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.db.Model(&models.Inspection{})
	if roofID := r.URL.Query().Get("roof_id"); roofID != "" {
		q = q.Where("roof_id = ?", roofID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var inspections []models.Inspection
	if err := q.Order("date DESC").Find(&inspections).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

type createInspectionReq struct {
	RoofID       string          `json:"roofId" validate:"required"`
	Date         string          `json:"date" validate:"required"`
	Inspector    string          `json:"inspector" validate:"required"`
	Company      string          `json:"company"`
	Type         string          `json:"type" validate:"required"`
	Status       string          `json:"status" validate:"omitempty,oneof=completed scheduled overdue"`
	Score        *int            `json:"score" validate:"omitempty,min=0,max=100"`
	Photos       []string        `json:"photos"`
	MoistureData bool            `json:"moistureData"`
	ScanData     json.RawMessage `json:"scanData"`
	Notes        string          `json:"notes"`
}

func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInspectionReq
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

	status := req.Status
	if status == "" {
		status = models.InspectionStatusScheduled
	}

	insp := models.Inspection{
		RoofID:       req.RoofID,
		Date:         req.Date,
		Inspector:    req.Inspector,
		Company:      req.Company,
		Type:         req.Type,
		Status:       status,
		Score:        req.Score,
		PhotoCount:   len(req.Photos),
		Photos:       pq.StringArray(req.Photos),
		MoistureData: req.MoistureData,
		ScanData:     datatypes.JSON(req.ScanData),
		Notes:        req.Notes,
	}
	if err := h.db.Create(&insp).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, insp)
}
