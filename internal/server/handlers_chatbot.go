package server

import (
	"encoding/json"
	"net/http"

	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// handleChatbot answers a support question. No authentication: the
// assistant also serves candidates who have not registered yet.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	response, source := s.bot.Reply(r.Context(), req.Message, req.Language)

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"response": response,
		"source":   source,
	})
}
