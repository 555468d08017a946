package server

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body for all error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorResponse writes a JSON error with the given status code.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// jsonResponse writes a JSON body with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
