package handler

import (
	"encoding/json"
	"net/http"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext extracts the request ID set by RequestLogger
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
