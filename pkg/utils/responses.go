package utils

import (
	"encoding/json"
	"net/http"
)

// The storefront client expects flat JSON bodies: {"success":true,...} on
// success and {"error":"..."} on failure, not a wrapped envelope.

// WriteJSON writes any payload with a status code
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with {"success":true,"message":...}
func ResponseSuccess(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
	})
}

// ------------- Error responses -------------

// ResponseError writes {"error": message} with a custom status code
func ResponseError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, map[string]any{"error": message})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
