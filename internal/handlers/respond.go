// Package handlers contains the HTTP handlers for the share endpoint, the
// note and category API, exports, and health.
package handlers

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the JSON error envelope every API route uses.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
