// Package recommend assembles ranked internship recommendations: it scores
// the full catalog against a candidate profile, builds a top-N slate, and
// optionally routes the slate through an AI re-ranking pass with graceful
// fallback to the rule-based result.
package recommend

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Prajwal471/PM-Internship-Portal/internal/scoring"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

const (
	// slateSize is the maximum number of recommendations returned.
	slateSize = 5
	// relevanceFloor drops slate entries scoring below it, unless that
	// would empty the slate entirely.
	relevanceFloor = 30
	// matchScoreMin and matchScoreMax bound the presentation-facing score.
	matchScoreMin = 40
	matchScoreMax = 99
	// maxListReasons caps reasons shown per slate entry; the detail view
	// shows up to maxDetailReasons.
	maxListReasons   = 3
	maxDetailReasons = 5
	// scoreWorkers bounds concurrent catalog scoring.
	scoreWorkers = 4
)

const ruleBasedInsight = "Rule-based match using your skills, sectors, education, location, test score, and recency."

// ErrProfileIncomplete is returned when the candidate has not finished the
// recommendation prerequisites (completed profile and skill test).
type ErrProfileIncomplete struct {
	Message string
}

func (e *ErrProfileIncomplete) Error() string {
	return e.Message
}

// ErrProfileNotFound is returned when no profile exists for the candidate.
type ErrProfileNotFound struct {
	CandidateID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("no profile found for candidate %s", e.CandidateID)
}

// ErrPostingNotFound is returned when the requested posting is not in the
// catalog.
type ErrPostingNotFound struct {
	PostingID string
}

func (e *ErrPostingNotFound) Error() string {
	return fmt.Sprintf("internship posting %q not found", e.PostingID)
}

// ProfileStore loads candidate profiles. Returns (nil, nil) when no profile
// exists for the candidate.
type ProfileStore interface {
	GetProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
}

// Catalog provides read access to the internship posting catalog.
type Catalog interface {
	List(ctx context.Context) ([]types.InternshipPosting, error)
	Get(ctx context.Context, id string) (types.InternshipPosting, error)
}

// Enhancer re-ranks a rule-based slate. Implementations are best-effort:
// any returned error makes the caller fall back to the rule-based slate.
type Enhancer interface {
	Enhance(ctx context.Context, profile *types.CandidateProfile, slate []types.RankedRecommendation) ([]types.RankedRecommendation, error)
}

// Service is the recommendation pipeline.
type Service struct {
	store    ProfileStore
	catalog  Catalog
	enhancer Enhancer
	now      func() time.Time
}

// NewService builds a Service. enhancer may be nil, in which case every
// recommendation set is rule-based.
func NewService(store ProfileStore, catalog Catalog, enhancer Enhancer) *Service {
	return &Service{
		store:    store,
		catalog:  catalog,
		enhancer: enhancer,
		now:      time.Now,
	}
}

// Recommendations scores the catalog for the candidate and returns the
// ranked slate. The AI pass runs when an enhancer is configured; its
// failure is logged and degrades to the rule-based slate, never an error.
func (s *Service) Recommendations(ctx context.Context, candidateID uuid.UUID) (*types.RecommendationSet, error) {
	profile, err := s.store.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, &ErrProfileNotFound{CandidateID: candidateID}
	}
	if !profile.ProfileCompleted || !profile.SkillTestCompleted {
		return nil, &ErrProfileIncomplete{Message: "please complete your profile and skill test first"}
	}

	postings, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	breakdowns, err := s.scoreAll(ctx, profile, postings)
	if err != nil {
		return nil, err
	}

	slate := buildSlate(postings, breakdowns)

	if s.enhancer != nil {
		enhanced, err := s.enhancer.Enhance(ctx, profile, slate)
		if err != nil {
			log.Printf("AI enhancement failed, using rule-based: %v", err)
		} else {
			return &types.RecommendationSet{
				Recommendations: enhanced,
				Source:          types.SourceAIEnhanced,
			}, nil
		}
	}

	return &types.RecommendationSet{
		Recommendations: slate,
		Source:          types.SourceRuleBased,
	}, nil
}

// Detail scores a single posting for the candidate and returns the
// expanded view. Unlike Recommendations it has no profile-completion
// prerequisite; an incomplete profile just scores low.
func (s *Service) Detail(ctx context.Context, candidateID uuid.UUID, postingID string) (*types.PostingDetail, error) {
	posting, err := s.catalog.Get(ctx, postingID)
	if err != nil {
		return nil, &ErrPostingNotFound{PostingID: postingID}
	}

	profile, err := s.store.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, &ErrProfileNotFound{CandidateID: candidateID}
	}

	breakdown := scoring.Score(profile, &posting, s.now())
	matchScore := clampMatchScore(breakdown.Total)

	reasons := breakdown.Reasons
	if len(reasons) > maxDetailReasons {
		reasons = reasons[:maxDetailReasons]
	}

	return &types.PostingDetail{
		InternshipPosting: posting,
		MatchScore:        matchScore,
		MatchReasons:      reasons,
		AIInsight:         detailInsight(&posting, breakdown, matchScore),
		Breakdown:         breakdown,
	}, nil
}

// scoreAll computes every posting's breakdown concurrently while keeping
// breakdown[i] aligned with postings[i].
func (s *Service) scoreAll(ctx context.Context, profile *types.CandidateProfile, postings []types.InternshipPosting) ([]types.ScoreBreakdown, error) {
	breakdowns := make([]types.ScoreBreakdown, len(postings))
	now := s.now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i := range postings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			breakdowns[i] = scoring.Score(profile, &postings[i], now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score catalog: %w", err)
	}
	return breakdowns, nil
}

// buildSlate sorts postings by total score, keeps the top entries above the
// relevance floor, and decorates them for presentation. Ties keep catalog
// order so results stay deterministic.
func buildSlate(postings []types.InternshipPosting, breakdowns []types.ScoreBreakdown) []types.RankedRecommendation {
	order := make([]int, len(postings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return breakdowns[order[a]].Total > breakdowns[order[b]].Total
	})

	if len(order) > slateSize {
		order = order[:slateSize]
	}

	relevant := make([]int, 0, len(order))
	for _, i := range order {
		if breakdowns[i].Total >= relevanceFloor {
			relevant = append(relevant, i)
		}
	}
	if len(relevant) > 0 {
		order = relevant
	}

	slate := make([]types.RankedRecommendation, 0, len(order))
	for _, i := range order {
		reasons := breakdowns[i].Reasons
		if len(reasons) > maxListReasons {
			reasons = reasons[:maxListReasons]
		}
		slate = append(slate, types.RankedRecommendation{
			InternshipPosting: postings[i],
			MatchScore:        clampMatchScore(breakdowns[i].Total),
			MatchReasons:      reasons,
			AIInsight:         ruleBasedInsight,
		})
	}
	return slate
}

func clampMatchScore(total int) int {
	if total < matchScoreMin {
		return matchScoreMin
	}
	if total > matchScoreMax {
		return matchScoreMax
	}
	return total
}

func detailInsight(posting *types.InternshipPosting, breakdown types.ScoreBreakdown, matchScore int) string {
	growth := "moderate"
	switch {
	case matchScore >= 80:
		growth = "excellent"
	case matchScore >= 60:
		growth = "good"
	}
	return fmt.Sprintf(
		"Based on your profile analysis (Skills: %d/50, Sectors: %d/15, Education: %d/15, Location: %d/10, Test: %d/10), this %s %s internship at %s offers %s growth opportunities for your career development.",
		breakdown.Skills, breakdown.Sectors, breakdown.Education, breakdown.Location, breakdown.Test,
		posting.Duration, strings.ToLower(posting.Type), posting.Company, growth,
	)
}
