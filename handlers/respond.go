// handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"redry.com/roofmri/models"
)

var validate = validator.New()

// writeJSON writes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the standard {"error": ...} body every failure path uses.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError writes a 400 with per-field detail when err is a
// validator.ValidationErrors, otherwise a plain 400.
func writeValidationError(w http.ResponseWriter, err error) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = "failed on '" + fe.Tag() + "'"
	}
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// timeOrNow returns the supplied timestamp, or the current UTC time when
// the request omitted it.
func timeOrNow(t *models.JSONTime) models.JSONTime {
	if t != nil {
		return *t
	}
	return models.JSONTime(time.Now().UTC())
}

// isDuplicateKey reports whether a store error is a unique-constraint hit.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
