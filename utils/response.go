package utils

import (
	"encoding/json"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Unauthorized writes the fixed 401 body shared by every guard failure,
// so callers cannot tell a missing token from an invalid or mismatched
// one.
func Unauthorized(w http.ResponseWriter) {
	RespondWithJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized access"})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
