package server

import (
	"encoding/json"
	"net/http"

	"github.com/Prajwal471/PM-Internship-Portal/internal/quiz"
	"github.com/Prajwal471/PM-Internship-Portal/internal/server/middleware"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// handleTestQuestions generates a skill verification test for the
// authenticated candidate.
func (s *Server) handleTestQuestions(w http.ResponseWriter, r *http.Request) {
	candidateID, err := middleware.GetCandidateID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil || len(profile.Skills) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Profile incomplete. Please complete your profile first.")
		return
	}

	questions, err := s.quiz.Questions(r.Context(), profile.Skills, profile.Education.Level)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate questions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": questions})
}

// handleSubmitTest grades a quiz submission and records the result.
func (s *Server) handleSubmitTest(w http.ResponseWriter, r *http.Request) {
	candidateID, err := middleware.GetCandidateID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result := quiz.Grade(&req)

	if err := s.store.RecordTestResult(r.Context(), candidateID, result); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":        "Test submitted successfully",
		"score":          result.Score,
		"correctAnswers": result.CorrectAnswers,
		"totalQuestions": result.TotalQuestions,
		"autoSubmitted":  result.AutoSubmitted,
		"reason":         result.Reason,
	})
}
