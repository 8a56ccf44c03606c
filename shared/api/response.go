// shared/api/response.go
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteText writes a plain-text response with the given status code. The
// roster endpoints speak plain text for their status bodies ("Inserted",
// "Updated", "Not found", ...), so this is the error-path counterpart to
// WriteJSON.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		log.Printf("ERROR: Failed to write response body: %v", err)
	}
}
