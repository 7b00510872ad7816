package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data as a newline-terminated JSON document and writes it
// with statusCode. Status API responses describe live state, so they are
// marked as not cacheable.
//
// If data cannot be encoded the client receives 500 Internal Server Error
// and the encoding error is returned.
//
//	WriteJSON(w, report, http.StatusOK)
//	WriteJSON(w, map[string]string{"status": "stopped"}, http.StatusServiceUnavailable)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(append(jsonData, '\n'))
}
