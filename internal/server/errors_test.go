package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Prajwal471/PM-Internship-Portal/internal/recommend"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"profile incomplete", &recommend.ErrProfileIncomplete{Message: "complete your profile"}, http.StatusBadRequest},
		{"validation failure", &ErrValidation{Field: "skills", Message: "required"}, http.StatusBadRequest},
		{"profile not found", &recommend.ErrProfileNotFound{CandidateID: uuid.New()}, http.StatusNotFound},
		{"posting not found", &recommend.ErrPostingNotFound{PostingID: "x"}, http.StatusNotFound},
		{"wrapped posting not found", fmt.Errorf("lookup: %w", &recommend.ErrPostingNotFound{PostingID: "x"}), http.StatusNotFound},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
