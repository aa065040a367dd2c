package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

const profileColumns = `id, email, name, education, skills, interested_sectors,
	location, language, skill_test_completed, skill_test_score,
	profile_completed, created_at, updated_at`

// GetProfile retrieves a candidate profile by ID. Returns (nil, nil) when
// no profile exists.
func (db *DB) GetProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE id = $1`,
		candidateID,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetProfileByEmail retrieves a candidate profile by email. Returns
// (nil, nil) when no profile exists.
func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*types.CandidateProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE email = $1`,
		email,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies an update request to a candidate's profile and
// marks the profile completed. Returns the updated profile, or (nil, nil)
// when the candidate does not exist.
func (db *DB) UpdateProfile(ctx context.Context, candidateID uuid.UUID, req *types.UpdateProfileRequest) (*types.CandidateProfile, error) {
	educationJSON, err := json.Marshal(req.Education)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	locationJSON, err := json.Marshal(req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE candidate_profiles
		 SET skills = $2,
		     interested_sectors = $3,
		     education = $4,
		     location = $5,
		     language = COALESCE(NULLIF($6, ''), language),
		     profile_completed = TRUE,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+profileColumns,
		candidateID, StringArray(req.Skills), StringArray(req.InterestedSectors),
		educationJSON, locationJSON, req.Language,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// RecordTestResult stores a graded quiz submission: the profile's test
// status is updated and a history row is appended, atomically.
func (db *DB) RecordTestResult(ctx context.Context, candidateID uuid.UUID, result *types.TestResult) error {
	answersJSON, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE candidate_profiles
		 SET skill_test_completed = TRUE,
		     skill_test_score = $2,
		     updated_at = NOW()
		 WHERE id = $1`,
		candidateID, result.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to update test status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no profile found for candidate %s", candidateID)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO skill_test_history
		   (candidate_id, score, correct_answers, total_questions, answers, auto_submitted, reason)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		candidateID, result.Score, result.CorrectAnswers, result.TotalQuestions,
		answersJSON, result.AutoSubmitted, result.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to record test history: %w", err)
	}

	return tx.Commit(ctx)
}

func scanProfile(row pgx.Row) (*types.CandidateProfile, error) {
	var (
		p             types.CandidateProfile
		educationJSON []byte
		locationJSON  []byte
		skills        StringArray
		sectors       StringArray
	)
	err := row.Scan(
		&p.ID, &p.Email, &p.Name, &educationJSON, &skills, &sectors,
		&locationJSON, &p.Language, &p.SkillTestCompleted, &p.SkillTestScore,
		&p.ProfileCompleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &p.Education); err != nil {
			return nil, fmt.Errorf("failed to unmarshal education: %w", err)
		}
	}
	if len(locationJSON) > 0 {
		if err := json.Unmarshal(locationJSON, &p.Location); err != nil {
			return nil, fmt.Errorf("failed to unmarshal location: %w", err)
		}
	}
	p.Skills = skills
	p.InterestedSectors = sectors
	return &p, nil
}
