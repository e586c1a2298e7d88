// handlers/warranties.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type WarrantyHandler struct {
	db *gorm.DB
}

func NewWarrantyHandler(db *gorm.DB) *WarrantyHandler {
	return &WarrantyHandler{db: db}
}

// List returns the warranty catalog, optionally filtered by exact category
// and by membrane membership (ANDed). Ordering is rating descending with
// name ascending as the stable tiebreaker, applied in one place regardless
// of which filters were supplied.
func (h *WarrantyHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	membrane := r.URL.Query().Get("membrane")

	q := h.db.Model(&models.WarrantyOption{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if membrane != "" {
		arr, err := json.Marshal([]string{membrane})
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid membrane filter")
			return
		}
		q = q.Where("membranes @> ?::jsonb", string(arr))
	}

	var options []models.WarrantyOption
	if err := q.Find(&options).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	models.SortWarrantyOptions(options)
	writeJSON(w, http.StatusOK, options)
}

func (h *WarrantyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var option models.WarrantyOption
	if err := h.db.First(&option, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			writeError(w, http.StatusNotFound, "not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, option)
}
