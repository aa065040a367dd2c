package server

import (
	"net/http"

	"github.com/Prajwal471/PM-Internship-Portal/internal/server/middleware"
)

// handleListInternships returns the full posting catalog.
func (s *Server) handleListInternships(w http.ResponseWriter, r *http.Request) {
	postings, err := s.catalog.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load internships")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"internships": postings})
}

// handleGetInternship returns a single posting scored against the
// authenticated candidate's profile.
func (s *Server) handleGetInternship(w http.ResponseWriter, r *http.Request) {
	candidateID, err := middleware.GetCandidateID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	detail, err := s.recommender.Detail(r.Context(), candidateID, r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, detail)
}
