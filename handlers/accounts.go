// handlers/accounts.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type AccountHandler struct {
	db *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{db: db}
}

// List returns the full account tree: owners with their managers and
// properties, properties with roofs, roofs with their warranty.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	var owners []models.Owner
	err := h.db.
		Preload("Managers").
		Preload("Properties.Manager").
		Preload("Properties.Roofs.Warranty").
		Order("name").
		Find(&owners).Error
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, owners)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["ownerId"]

	var owner models.Owner
	err := h.db.
		Preload("Managers").
		Preload("Properties.Manager").
		Preload("Properties.Roofs.Warranty").
		First(&owner, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "owner not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

type createOwnerReq struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

func (h *AccountHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req createOwnerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	owner := models.Owner{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
	if err := h.db.Create(&owner).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, owner)
}

type createManagerReq struct {
	OwnerID string `json:"ownerId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

func (h *AccountHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	var req createManagerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.ownerExists(req.OwnerID); err != nil {
		writeError(w, http.StatusNotFound, "unknown owner id")
		return
	}

	manager := models.PropertyManager{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
	if err := h.db.Create(&manager).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, manager)
}

type createPropertyReq struct {
	OwnerID   string  `json:"ownerId" validate:"required"`
	ManagedBy *string `json:"managedBy"`
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
}

func (h *AccountHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.ownerExists(req.OwnerID); err != nil {
		writeError(w, http.StatusNotFound, "unknown owner id")
		return
	}

	property := models.Property{
		OwnerID:   req.OwnerID,
		ManagedBy: req.ManagedBy,
		Name:      req.Name,
		Address:   req.Address,
	}
	if err := h.db.Create(&property).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

type createRoofReq struct {
	PropertyID string               `json:"propertyId" validate:"required"`
	Section    string               `json:"section" validate:"required"`
	SqFt       float64              `json:"sqFt" validate:"gt=0"`
	Membrane   string               `json:"membrane" validate:"required"`
	Installed  string               `json:"installed" validate:"required"`
	Warranty   *models.RoofWarranty `json:"warranty"`
}

// CreateRoof inserts a roof and, when supplied, its warranty in one
// transaction. A second warranty for the same roof is a conflict.
func (h *AccountHandler) CreateRoof(w http.ResponseWriter, r *http.Request) {
	var req createRoofReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if req.Warranty != nil && req.Warranty.EndDate <= req.Warranty.StartDate {
		writeError(w, http.StatusBadRequest, "warranty end date must be after start date")
		return
	}

	var property models.Property
	if err := h.db.First(&property, "id = ?", req.PropertyID).Error; err != nil {
		writeError(w, http.StatusNotFound, "unknown property id")
		return
	}

	roof := models.Roof{
		PropertyID: req.PropertyID,
		Section:    req.Section,
		SqFt:       req.SqFt,
		Membrane:   req.Membrane,
		Installed:  req.Installed,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&roof).Error; err != nil {
			return err
		}
		if req.Warranty != nil {
			req.Warranty.RoofID = roof.ID
			if err := tx.Create(req.Warranty).Error; err != nil {
				return err
			}
			roof.Warranty = req.Warranty
		}
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			writeError(w, http.StatusConflict, "roof already has a warranty")
		} else {
			writeError(w, http.StatusInternalServerError, "db error: "+err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, roof)
}

func (h *AccountHandler) ownerExists(id string) error {
	var owner models.Owner
	return h.db.Select("id").First(&owner, "id = ?", id).Error
}
