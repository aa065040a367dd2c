// Package scoring implements the rule-based match scoring between a candidate
// profile and an internship posting. Score is a pure function: no I/O, no
// mutation of its inputs, and every string comparison happens on normalized
// (lowercased, trimmed) values.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// Component caps. Education and location are all-or-nothing.
const (
	maxSkillsScore  = 50
	maxSectorsScore = 15
	educationPoints = 15
	locationPoints  = 10
	maxTestScore    = 10
)

// weakTestMultiplier discounts the verified test score when none of the
// posting's required skills matched the candidate.
const weakTestMultiplier = 0.4

// testReasonThreshold is the minimum test sub-score that earns a reason.
const testReasonThreshold = 6

// maxReasonSkills caps how many matched skills the skills reason lists.
const maxReasonSkills = 4

// Normalize lowercases and trims a string for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Score computes the full breakdown for one (profile, posting) pair. Absent
// or malformed fields degrade to a zero contribution rather than erroring.
// now anchors the recency band so callers control the clock.
func Score(profile *types.CandidateProfile, posting *types.InternshipPosting, now time.Time) types.ScoreBreakdown {
	var b types.ScoreBreakdown

	matched := matchedSkills(profile.Skills, posting.Requirements.Skills)
	b.Skills = ratioScore(len(matched), len(posting.Requirements.Skills), maxSkillsScore)
	if len(matched) > 0 {
		shown := matched
		if len(shown) > maxReasonSkills {
			shown = shown[:maxReasonSkills]
		}
		b.Reasons = append(b.Reasons, "Skills match: "+strings.Join(shown, ", "))
	}

	sectors := matchedSectors(profile.InterestedSectors, posting.Requirements.Sectors)
	b.Sectors = ratioScore(len(sectors), len(posting.Requirements.Sectors), maxSectorsScore)
	if len(sectors) > 0 {
		b.Reasons = append(b.Reasons, "Sector fit: "+strings.Join(sectors, ", "))
	}

	if educationSatisfies(posting.Requirements.Education, profile.Education.Level) {
		b.Education = educationPoints
		b.Reasons = append(b.Reasons, "Education requirement met")
	}

	postingState := Normalize(posting.Location.State)
	if postingState != "" && postingState == Normalize(profile.Location.State) {
		b.Location = locationPoints
		b.Reasons = append(b.Reasons, "Preferred state")
	}

	b.Test = testScore(profile.SkillTestScore, len(matched) > 0)
	if b.Test >= testReasonThreshold && profile.SkillTestScore != nil {
		b.Reasons = append(b.Reasons, fmt.Sprintf("Good test score (%d%%)", *profile.SkillTestScore))
	}

	b.Recency = recencyScore(posting.Posted, now)

	b.Total = b.Skills + b.Sectors + b.Education + b.Location + b.Test + b.Recency
	return b
}

// matchedSkills returns the candidate skills (normalized, deduplicated,
// candidate order) that satisfy at least one required skill. A required
// skill is satisfied when it contains the candidate skill after
// normalization, so "javascript development" is satisfied by "javascript".
func matchedSkills(candidateSkills, requiredSkills []string) []string {
	if len(candidateSkills) == 0 || len(requiredSkills) == 0 {
		return nil
	}

	required := make([]string, 0, len(requiredSkills))
	for _, r := range requiredSkills {
		if n := Normalize(r); n != "" {
			required = append(required, n)
		}
	}

	seen := make(map[string]bool, len(candidateSkills))
	var matched []string
	for _, s := range candidateSkills {
		skill := Normalize(s)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		for _, r := range required {
			if strings.Contains(r, skill) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}

// matchedSectors returns the candidate sectors (normalized, deduplicated)
// present verbatim in the posting's required sectors.
func matchedSectors(candidateSectors, requiredSectors []string) []string {
	if len(candidateSectors) == 0 || len(requiredSectors) == 0 {
		return nil
	}

	required := make(map[string]bool, len(requiredSectors))
	for _, r := range requiredSectors {
		if n := Normalize(r); n != "" {
			required[n] = true
		}
	}

	seen := make(map[string]bool, len(candidateSectors))
	var matched []string
	for _, s := range candidateSectors {
		sector := Normalize(s)
		if sector == "" || seen[sector] {
			continue
		}
		seen[sector] = true
		if required[sector] {
			matched = append(matched, sector)
		}
	}
	return matched
}

// educationSatisfies reports whether the candidate's level satisfies the
// posting's required-education list: literal membership, or the single
// equivalence that pursuing-bachelors satisfies a bachelors requirement in
// its common spellings. No other equivalences apply.
func educationSatisfies(required []string, level string) bool {
	if len(required) == 0 {
		return false
	}
	u := Normalize(level)
	if u == "" {
		return false
	}

	req := make(map[string]bool, len(required))
	for _, r := range required {
		req[Normalize(r)] = true
	}
	if req[u] {
		return true
	}
	if u == types.EducationPursuingBachelors {
		return req["bachelors"] || req["bachelor's"] || req["bachelor's degree"]
	}
	return false
}

// ratioScore converts a matched/required ratio into points, capped at max.
// An empty required list is a zero ratio, not a division error.
func ratioScore(matched, required, max int) int {
	if required == 0 || matched == 0 {
		return 0
	}
	score := int(math.Round(float64(max) * float64(matched) / float64(required)))
	if score > max {
		return max
	}
	return score
}

// testScore converts the candidate's quiz score into 0-10 points. The weak
// multiplier applies when the verified competence can't be tied to this
// posting's skills.
func testScore(skillTestScore *int, anySkillMatched bool) int {
	if skillTestScore == nil {
		return 0
	}
	raw := *skillTestScore
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	multiplier := weakTestMultiplier
	if anySkillMatched {
		multiplier = 1.0
	}
	return int(math.Round(float64(maxTestScore) * float64(raw) / 100 * multiplier))
}

// recencyScore bands the posting age into 1-5 points. A missing or
// unparsable posted date contributes 0 and emits no reason.
func recencyScore(posted string, now time.Time) int {
	t, ok := parsePostedDate(posted)
	if !ok {
		return 0
	}
	days := now.Sub(t).Hours() / 24
	switch {
	case days <= 7:
		return 5
	case days <= 14:
		return 4
	case days <= 30:
		return 3
	case days <= 60:
		return 2
	default:
		return 1
	}
}

// parsePostedDate accepts RFC 3339 timestamps or plain dates.
func parsePostedDate(posted string) (time.Time, bool) {
	posted = strings.TrimSpace(posted)
	if posted == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, posted); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", posted); err == nil {
		return t, true
	}
	return time.Time{}, false
}
