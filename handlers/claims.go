// handlers/claims.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type ClaimHandler struct {
	db *gorm.DB
}

func NewClaimHandler(db *gorm.DB) *ClaimHandler {
	return &ClaimHandler{db: db}
}

func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.db.Model(&models.Claim{}).
		Preload("Timeline", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		})
	if roofID := r.URL.Query().Get("roof_id"); roofID != "" {
		q = q.Where("roof_id = ?", roofID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var claims []models.Claim
	if err := q.Order("filed DESC").Find(&claims).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range claims {
		claims[i].SortTimeline()
	}
	writeJSON(w, http.StatusOK, claims)
}

func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var claim models.Claim
	err := h.db.
		Preload("Timeline", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		First(&claim, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "claim not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	claim.SortTimeline()
	writeJSON(w, http.StatusOK, claim)
}

type claimEventReq struct {
	Date  string `json:"date" validate:"required"`
	Event string `json:"event" validate:"required"`
}

type createClaimReq struct {
	RoofID       string          `json:"roofId" validate:"required"`
	Manufacturer string          `json:"manufacturer" validate:"required"`
	Filed        string          `json:"filed" validate:"required"`
	Amount       float64         `json:"amount"`
	Status       string          `json:"status" validate:"omitempty,oneof=approved in-progress denied"`
	Description  string          `json:"description"`
	Timeline     []claimEventReq `json:"timeline" validate:"dive"`
}

// Create inserts a claim with its timeline in one transaction. Event
// order follows the request body; sort_order is assigned here so clients
// never supply it.
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClaimReq
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
		status = models.ClaimStatusInProgress
	}

	claim := models.Claim{
		RoofID:       req.RoofID,
		Manufacturer: req.Manufacturer,
		Filed:        req.Filed,
		Amount:       req.Amount,
		Status:       status,
		Description:  req.Description,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}
		for i, ev := range req.Timeline {
			event := models.ClaimEvent{
				ClaimID:   claim.ID,
				Date:      ev.Date,
				Event:     ev.Event,
				SortOrder: i,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
			claim.Timeline = append(claim.Timeline, event)
		}
		return nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, claim)
}
