package server

import (
	"net/http"

	"github.com/Prajwal471/PM-Internship-Portal/internal/server/middleware"
)

// handleRecommendations returns the ranked recommendation slate for the
// authenticated candidate.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	candidateID, err := middleware.GetCandidateID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	set, err := s.recommender.Recommendations(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, set)
}
