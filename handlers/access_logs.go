// handlers/access_logs.go
package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type AccessLogHandler struct {
	db *gorm.DB
}

func NewAccessLogHandler(db *gorm.DB) *AccessLogHandler {
	return &AccessLogHandler{db: db}
}

func (h *AccessLogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.db.Model(&models.AccessLog{})
	if roofID := r.URL.Query().Get("roof_id"); roofID != "" {
		q = q.Where("roof_id = ?", roofID)
	}

	var logs []models.AccessLog
	if err := q.Order("date DESC").Find(&logs).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

type createAccessLogReq struct {
	RoofID   string           `json:"roofId" validate:"required"`
	Person   string           `json:"person" validate:"required"`
	Company  string           `json:"company"`
	Purpose  string           `json:"purpose" validate:"required"`
	Date     *models.JSONTime `json:"date"`
	Duration string           `json:"duration"`
	Notes    string           `json:"notes"`
}

func (h *AccessLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAccessLogReq
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

	entry := models.AccessLog{
		RoofID:   req.RoofID,
		Person:   req.Person,
		Company:  req.Company,
		Purpose:  req.Purpose,
		Date:     timeOrNow(req.Date),
		Duration: req.Duration,
		Notes:    req.Notes,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
