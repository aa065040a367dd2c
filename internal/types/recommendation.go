package types

// Recommendation sources reported to the presentation layer.
const (
	SourceRuleBased  = "rule-based"
	SourceAIEnhanced = "ai-enhanced"
)

// ScoreBreakdown is the per-posting output of the scoring engine. It is
// recomputed for every request and never persisted. Total is the plain sum
// of the six components; Reasons preserves the component emission order.
type ScoreBreakdown struct {
	Total     int      `json:"total"`
	Skills    int      `json:"skills"`
	Sectors   int      `json:"sectors"`
	Education int      `json:"education"`
	Location  int      `json:"location"`
	Test      int      `json:"test"`
	Recency   int      `json:"recency"`
	Reasons   []string `json:"reasons,omitempty"`
}

// RankedRecommendation decorates a posting with its presentation-facing
// match score, a truncated reason list, and an insight narrative. The AI
// re-ranking pass may rewrite MatchScore, MatchReasons and AIInsight and
// fill the growth annotations.
type RankedRecommendation struct {
	InternshipPosting
	MatchScore                    int      `json:"matchScore"`
	MatchReasons                  []string `json:"matchReasons"`
	AIInsight                     string   `json:"aiInsight"`
	CareerGrowthPotential         string   `json:"careerGrowthPotential,omitempty"`
	SkillDevelopmentOpportunities []string `json:"skillDevelopmentOpportunities,omitempty"`
}

// RecommendationSet is the final slate handed to the presentation layer.
// Source faithfully reports whether the AI pass was merged.
type RecommendationSet struct {
	Recommendations []RankedRecommendation `json:"recommendations"`
	Source          string                 `json:"source"`
}

// PostingDetail is the single-posting view: the same scoring engine run for
// one posting, with a longer reason list and the raw component breakdown.
type PostingDetail struct {
	InternshipPosting
	MatchScore   int            `json:"matchScore"`
	MatchReasons []string       `json:"matchReasons"`
	AIInsight    string         `json:"aiInsight"`
	Breakdown    ScoreBreakdown `json:"scoreBreakdown"`
}

// Enhancement is one item of the AI re-rank response. ID refers to the item's
// index in the rule-based slate that was sent to the collaborator.
type Enhancement struct {
	ID                            int      `json:"id"`
	AdjustedMatchScore            int      `json:"adjustedMatchScore"`
	AIInsight                     string   `json:"aiInsight"`
	PersonalizedReasons           []string `json:"personalizedReasons,omitempty"`
	CareerGrowthPotential         string   `json:"careerGrowthPotential,omitempty"`
	SkillDevelopmentOpportunities []string `json:"skillDevelopmentOpportunities,omitempty"`
}
