// Package types provides the shared data model for the internship portal:
// candidate profiles, catalog postings, score breakdowns, and API request types.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Education levels accepted on a candidate profile.
const (
	EducationDiploma           = "diploma"
	EducationPursuingBachelors = "pursuing-bachelors"
	EducationBachelors         = "bachelors"
	EducationPursuingMasters   = "pursuing-masters"
	EducationMasters           = "masters"
	EducationPhD               = "phd"
)

// Education holds the candidate's education details. Only Level participates
// in scoring.
type Education struct {
	Level       string `json:"level" validate:"required,oneof=diploma pursuing-bachelors bachelors pursuing-masters masters phd"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// CandidateLocation is the candidate's home location. State is the home-state
// preference signal used by the scorer.
type CandidateLocation struct {
	State    string `json:"state" validate:"required"`
	District string `json:"district,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

// CandidateProfile represents the authenticated candidate's self-reported
// attributes. The scoring engine consumes it read-only.
type CandidateProfile struct {
	ID                 uuid.UUID         `json:"id"`
	Email              string            `json:"email"`
	Name               string            `json:"name"`
	Education          Education         `json:"education"`
	Skills             []string          `json:"skills"`
	InterestedSectors  []string          `json:"interestedSectors"`
	Location           CandidateLocation `json:"location"`
	Language           string            `json:"language"`
	SkillTestCompleted bool              `json:"skillTestCompleted"`
	SkillTestScore     *int              `json:"skillTestScore,omitempty"`
	ProfileCompleted   bool              `json:"profileCompleted"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// UpdateProfileRequest is the payload for completing or editing a profile.
type UpdateProfileRequest struct {
	Skills            []string          `json:"skills" validate:"required,min=1,dive,min=1"`
	InterestedSectors []string          `json:"interestedSectors" validate:"required,min=1,dive,min=1"`
	Education         Education         `json:"education"`
	Location          CandidateLocation `json:"location"`
	Language          string            `json:"language,omitempty" validate:"omitempty,oneof=en hi regional"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
