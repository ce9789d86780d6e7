package utils

import (
	"encoding/json"
	"net/http"

	"swipe_server/models"
)

// WriteJSONResponse writes payload as JSON with the given status code
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteData wraps data in an Envelope. Slices get meta.count.
func WriteData(w http.ResponseWriter, status int, data interface{}, count int) {
	env := models.Envelope{Data: data, Meta: map[string]interface{}{}, Errors: []models.ErrorDetail{}}
	if count >= 0 {
		env.Meta["count"] = count
	}
	WriteJSONResponse(w, status, env)
}

// WriteError writes an Envelope carrying a single error
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, models.Envelope{
		Meta:   map[string]interface{}{},
		Errors: []models.ErrorDetail{{Code: code, Message: message}},
	})
}

// WriteErrors writes an Envelope carrying several errors
func WriteErrors(w http.ResponseWriter, status int, details []models.ErrorDetail) {
	WriteJSONResponse(w, status, models.Envelope{
		Meta:   map[string]interface{}{},
		Errors: details,
	})
}
