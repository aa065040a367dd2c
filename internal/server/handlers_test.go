package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwal471/PM-Internship-Portal/internal/recommend"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer()
	s.recommender = &stubRecommender{set: &types.RecommendationSet{
		Recommendations: []types.RankedRecommendation{{
			InternshipPosting: types.InternshipPosting{ID: "pmis-2026-001", Title: "Software Development Intern"},
			MatchScore:        87,
			MatchReasons:      []string{"Skills match: javascript"},
			AIInsight:         "Strong fit.",
		}},
		Source: types.SourceAIEnhanced,
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/recommendations", nil), uuid.New())
	w := httptest.NewRecorder()
	s.handleRecommendations(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &set))
	assert.Equal(t, types.SourceAIEnhanced, set.Source)
	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, 87, set.Recommendations[0].MatchScore)
}

func TestHandleRecommendations_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"incomplete profile", &recommend.ErrProfileIncomplete{Message: "please complete your profile and skill test first"}, http.StatusBadRequest},
		{"profile missing", &recommend.ErrProfileNotFound{CandidateID: uuid.New()}, http.StatusNotFound},
		{"other failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.recommender = &stubRecommender{err: tt.err}

			req := withCandidateID(httptest.NewRequest(http.MethodGet, "/recommendations", nil), uuid.New())
			w := httptest.NewRecorder()
			s.handleRecommendations(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
		})
	}
}

func TestHandleRecommendations_MissingAuthContext(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	w := httptest.NewRecorder()
	s.handleRecommendations(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleListInternships(t *testing.T) {
	s := newTestServer()
	s.catalog = &stubCatalog{postings: []types.InternshipPosting{
		{ID: "a", Title: "Intern A"},
		{ID: "b", Title: "Intern B"},
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/internships", nil), uuid.New())
	w := httptest.NewRecorder()
	s.handleListInternships(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["internships"], 2)
}

func TestHandleGetInternship(t *testing.T) {
	s := newTestServer()
	s.recommender = &stubRecommender{detail: &types.PostingDetail{
		InternshipPosting: types.InternshipPosting{ID: "pmis-2026-002", Title: "Data Analytics Intern"},
		MatchScore:        73,
		MatchReasons:      []string{"Skills match: python, sql"},
		AIInsight:         "Based on your profile analysis...",
		Breakdown:         types.ScoreBreakdown{Total: 73, Skills: 38},
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/internships/pmis-2026-002", nil), uuid.New())
	req.SetPathValue("id", "pmis-2026-002")
	w := httptest.NewRecorder()
	s.handleGetInternship(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var detail types.PostingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 73, detail.MatchScore)
	assert.Equal(t, 38, detail.Breakdown.Skills)
}

func TestHandleGetInternship_NotFound(t *testing.T) {
	s := newTestServer()
	s.recommender = &stubRecommender{err: &recommend.ErrPostingNotFound{PostingID: "nope"}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/internships/nope", nil), uuid.New())
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	s.handleGetInternship(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetProfile(t *testing.T) {
	s := newTestServer()
	candidateID := uuid.New()
	s.store = &stubStore{profiles: map[uuid.UUID]*types.CandidateProfile{
		candidateID: {ID: candidateID, Email: "asha@example.com", Name: "Asha"},
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/profile", nil), candidateID)
	w := httptest.NewRecorder()
	s.handleGetProfile(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	s := newTestServer()

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/profile", nil), uuid.New())
	w := httptest.NewRecorder()
	s.handleGetProfile(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdateProfile(t *testing.T) {
	s := newTestServer()
	candidateID := uuid.New()
	updated := &types.CandidateProfile{ID: candidateID, ProfileCompleted: true}
	s.store = &stubStore{updateResult: updated}

	payload := types.UpdateProfileRequest{
		Skills:            []string{"Python", "SQL"},
		InterestedSectors: []string{"Technology"},
		Education:         types.Education{Level: types.EducationBachelors},
		Location:          types.CandidateLocation{State: "Karnataka"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := withCandidateID(httptest.NewRequest(http.MethodPut, "/profile", bytes.NewReader(body)), candidateID)
	w := httptest.NewRecorder()
	s.handleUpdateProfile(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.True(t, profile.ProfileCompleted)
}

func TestHandleUpdateProfile_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"skills": [`},
		{"no skills", `{"skills": [], "interestedSectors": ["Technology"], "education": {"level": "bachelors"}, "location": {"state": "Delhi"}}`},
		{"bad education level", `{"skills": ["Go"], "interestedSectors": ["Technology"], "education": {"level": "kindergarten"}, "location": {"state": "Delhi"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			req := withCandidateID(httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body)), uuid.New())
			w := httptest.NewRecorder()
			s.handleUpdateProfile(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleTestQuestions(t *testing.T) {
	s := newTestServer()
	candidateID := uuid.New()
	s.store = &stubStore{profiles: map[uuid.UUID]*types.CandidateProfile{
		candidateID: {
			ID:        candidateID,
			Skills:    []string{"Python"},
			Education: types.Education{Level: types.EducationBachelors},
		},
	}}
	s.quiz = &stubQuiz{questions: []types.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Skill: "Python"},
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/test/questions", nil), candidateID)
	w := httptest.NewRecorder()
	s.handleTestQuestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["questions"], 1)
}

func TestHandleTestQuestions_IncompleteProfile(t *testing.T) {
	s := newTestServer()
	candidateID := uuid.New()
	s.store = &stubStore{profiles: map[uuid.UUID]*types.CandidateProfile{
		candidateID: {ID: candidateID}, // no skills yet
	}}

	req := withCandidateID(httptest.NewRequest(http.MethodGet, "/test/questions", nil), candidateID)
	w := httptest.NewRecorder()
	s.handleTestQuestions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitTest(t *testing.T) {
	s := newTestServer()
	store := &stubStore{}
	s.store = store

	payload := types.SubmitTestRequest{
		Questions: []types.Question{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Skill: "X"},
			{Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Skill: "Y"},
		},
		Answers:       []int{1, 3},
		AutoSubmitted: true,
		Reason:        "fullscreen-exit",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := withCandidateID(httptest.NewRequest(http.MethodPost, "/test/submit", bytes.NewReader(body)), uuid.New())
	w := httptest.NewRecorder()
	s.handleSubmitTest(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(50), resp["score"])
	assert.Equal(t, float64(1), resp["correctAnswers"])
	assert.Equal(t, float64(2), resp["totalQuestions"])
	assert.Equal(t, true, resp["autoSubmitted"])

	require.NotNil(t, store.recorded, "result must be persisted")
	assert.Equal(t, 50, store.recorded.Score)
}

func TestHandleSubmitTest_InvalidPayload(t *testing.T) {
	s := newTestServer()

	req := withCandidateID(httptest.NewRequest(http.MethodPost, "/test/submit",
		bytes.NewBufferString(`{"questions": [], "answers": []}`)), uuid.New())
	w := httptest.NewRecorder()
	s.handleSubmitTest(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatbot(t *testing.T) {
	s := newTestServer()
	bot := &stubBot{response: "You can apply from your dashboard.", source: "ai"}
	s.bot = bot

	req := httptest.NewRequest(http.MethodPost, "/chatbot",
		bytes.NewBufferString(`{"message": "how to apply?", "language": "en"}`))
	w := httptest.NewRecorder()
	s.handleChatbot(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "You can apply from your dashboard.", resp["response"])
	assert.Equal(t, "ai", resp["source"])
	assert.Equal(t, "how to apply?", bot.message)
	assert.Equal(t, "en", bot.language)
}

func TestHandleChatbot_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"message":`},
		{"empty message", `{"message": ""}`},
		{"bad language", `{"message": "hello", "language": "de"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			s.handleChatbot(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
