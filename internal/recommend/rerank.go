package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Prajwal471/PM-Internship-Portal/internal/llm"
	"github.com/Prajwal471/PM-Internship-Portal/internal/prompts"
	"github.com/Prajwal471/PM-Internship-Portal/internal/schemas"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

const (
	defaultEnhanceTimeout = 30 * time.Second
	maxSlateDescription   = 200

	unaddressedInsight = "AI analysis unavailable for this recommendation."
	unaddressedGrowth  = "To be evaluated"
)

// AIReranker re-ranks a rule-based slate through an LLM. A single attempt
// per request, bounded by a timeout; every failure mode surfaces as an
// error so the caller can fall back to the rule-based slate.
type AIReranker struct {
	client  llm.Client
	timeout time.Duration
}

// NewAIReranker wraps an LLM client as an Enhancer. timeout <= 0 selects
// the default.
func NewAIReranker(client llm.Client, timeout time.Duration) *AIReranker {
	if timeout <= 0 {
		timeout = defaultEnhanceTimeout
	}
	return &AIReranker{client: client, timeout: timeout}
}

// profileContext is the candidate summary sent to the model. Only fields
// relevant to fit analysis are included.
type profileContext struct {
	Skills            []string `json:"skills"`
	EducationLevel    string   `json:"educationLevel"`
	EducationField    string   `json:"educationField,omitempty"`
	InterestedSectors []string `json:"interestedSectors"`
	State             string   `json:"state"`
	SkillTestScore    int      `json:"skillTestScore"`
}

// slateItem is the compact posting summary sent to the model. ID is the
// item's index in the slate and is how the model addresses items.
type slateItem struct {
	ID               int                   `json:"id"`
	Title            string                `json:"title"`
	Company          string                `json:"company"`
	Location         types.PostingLocation `json:"location"`
	Duration         string                `json:"duration,omitempty"`
	Stipend          string                `json:"stipend,omitempty"`
	Requirements     types.Requirements    `json:"requirements"`
	Description      string                `json:"description,omitempty"`
	RuleBasedScore   int                   `json:"ruleBasedScore"`
	RuleBasedReasons []string              `json:"ruleBasedReasons"`
}

// Enhance sends the slate to the model and merges the returned adjustments.
// The rule-based slate is never mutated; the merged result is re-sorted by
// adjusted score.
func (r *AIReranker) Enhance(ctx context.Context, profile *types.CandidateProfile, slate []types.RankedRecommendation) ([]types.RankedRecommendation, error) {
	if len(slate) == 0 {
		return nil, fmt.Errorf("empty slate")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt, err := buildRerankPrompt(profile, slate)
	if err != nil {
		return nil, err
	}

	response, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	enhancements, err := parseEnhancements(response, len(slate))
	if err != nil {
		return nil, err
	}

	return mergeEnhancements(slate, enhancements), nil
}

func buildRerankPrompt(profile *types.CandidateProfile, slate []types.RankedRecommendation) (string, error) {
	testScore := 0
	if profile.SkillTestScore != nil {
		testScore = *profile.SkillTestScore
	}
	profileJSON, err := json.MarshalIndent(profileContext{
		Skills:            profile.Skills,
		EducationLevel:    profile.Education.Level,
		EducationField:    profile.Education.Field,
		InterestedSectors: profile.InterestedSectors,
		State:             profile.Location.State,
		SkillTestScore:    testScore,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode profile context: %w", err)
	}

	items := make([]slateItem, len(slate))
	for i, rec := range slate {
		description := rec.Description
		if len(description) > maxSlateDescription {
			description = description[:maxSlateDescription] + "..."
		}
		items[i] = slateItem{
			ID:               i,
			Title:            rec.Title,
			Company:          rec.Company,
			Location:         rec.Location,
			Duration:         rec.Duration,
			Stipend:          rec.Stipend,
			Requirements:     rec.Requirements,
			Description:      description,
			RuleBasedScore:   rec.MatchScore,
			RuleBasedReasons: rec.MatchReasons,
		}
	}
	slateJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode slate: %w", err)
	}

	template, err := prompts.Get("recommend.json", "rerank-slate")
	if err != nil {
		return "", err
	}
	return prompts.Format(template, map[string]string{
		"Profile": string(profileJSON),
		"Slate":   string(slateJSON),
	}), nil
}

// parseEnhancements extracts and validates the enhancement array from a
// model response. slateLen bounds the id range.
func parseEnhancements(response string, slateLen int) ([]types.Enhancement, error) {
	cleaned := llm.CleanJSONBlock(response)
	block, ok := llm.FirstJSONArray(cleaned)
	if !ok {
		return nil, fmt.Errorf("no valid JSON array in model response")
	}

	if err := schemas.ValidateEnhancementList(block); err != nil {
		return nil, fmt.Errorf("model response failed schema validation: %w", err)
	}

	var enhancements []types.Enhancement
	if err := json.Unmarshal([]byte(block), &enhancements); err != nil {
		return nil, fmt.Errorf("failed to decode enhancements: %w", err)
	}

	for _, e := range enhancements {
		if e.ID < 0 || e.ID >= slateLen {
			return nil, fmt.Errorf("enhancement id %d out of slate range [0,%d)", e.ID, slateLen)
		}
	}
	return enhancements, nil
}

// mergeEnhancements applies model adjustments on top of the rule-based
// slate. Items the model did not address keep their rule-based score and
// reasons but are flagged as lacking AI analysis. The merged slate is
// re-sorted by adjusted score, stable on the rule-based order.
func mergeEnhancements(slate []types.RankedRecommendation, enhancements []types.Enhancement) []types.RankedRecommendation {
	byID := make(map[int]types.Enhancement, len(enhancements))
	for _, e := range enhancements {
		byID[e.ID] = e
	}

	merged := make([]types.RankedRecommendation, len(slate))
	for i, rec := range slate {
		e, ok := byID[i]
		if !ok {
			rec.AIInsight = unaddressedInsight
			rec.CareerGrowthPotential = unaddressedGrowth
			rec.SkillDevelopmentOpportunities = []string{"General skill development"}
			merged[i] = rec
			continue
		}

		if e.AdjustedMatchScore > 0 {
			rec.MatchScore = clampMatchScore(e.AdjustedMatchScore)
		}
		rec.AIInsight = e.AIInsight
		if len(e.PersonalizedReasons) > 0 {
			rec.MatchReasons = e.PersonalizedReasons
		}
		rec.CareerGrowthPotential = e.CareerGrowthPotential
		rec.SkillDevelopmentOpportunities = e.SkillDevelopmentOpportunities
		merged[i] = rec
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].MatchScore > merged[b].MatchScore
	})
	return merged
}
