package server

import (
	"encoding/json"
	"net/http"
)

// User-facing messages for failures that carry no client detail.
const (
	msgInvalidJSON   = "Invalid JSON. Please check request body."
	msgBodyTooLarge  = "Request body too large."
	msgInternalError = "Something went wrong on the server."
)

// apiResponse is the envelope of every JSON response.
type apiResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFailure(w http.ResponseWriter, status int, message string, details []string) {
	writeJSON(w, status, apiResponse{
		Success: false,
		Error:   message,
		Errors:  details,
	})
}
