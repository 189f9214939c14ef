package handlers

import (
	"encoding/json"
	"net/http"
)

// apiError is the uniform error payload every handler writes for non-2xx
// responses: a stable machine-readable code plus a human-readable message.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse writes the uniform error payload and returns any encoding
// error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	return WriteJSON(w, statusCode, apiError{Error: errorCode, Message: message})
}

// WriteJSON writes data as a JSON response with the given status and
// returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}
