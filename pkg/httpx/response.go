package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteResponse writes the API status envelope {"data":{"respondeCode","message"}}.
func WriteResponse(w http.ResponseWriter, status int, respondeCode, message string) {
	WriteJSON(w, status, clientsdk.ErrorResponse{
		Data: &clientsdk.ResponseData{
			RespondeCode: respondeCode,
			Message:      message,
		},
	})
}
