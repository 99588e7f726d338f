package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/talent-matcher/internal/types"
)

// appliedWeight records one factor's contribution to the aggregate.
type appliedWeight struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ScoreCandidate runs every factor scorer for one (candidate, project) pair
// and aggregates the results under the given weight table. A nil table uses
// the defaults. The computation is pure: it reads only its inputs, never
// mutates the weight table, and carries no state between invocations.
func ScoreCandidate(project *types.ProjectRequirement, candidate *types.CandidateProfile, weights types.ScoringWeights) *types.CandidateScoreReport {
	if weights == nil {
		weights = types.DefaultWeights()
	}

	factors := map[string]types.FactorResult{
		types.FactorAvailability: ScoreAvailability(
			project.EffortHours.Float64(),
			project.RequestedEnd,
			candidate.AvailableFrom,
			candidate.WeeklyCapacityHours.Float64(),
		),
		types.FactorProduct:       ScoreProducts(project.Products, candidate.Products),
		types.FactorLocation:      ScoreLocation(project.Location, project.Flexibility, candidate.Location, candidate.Flexibility),
		types.FactorLanguage:      ScoreLanguages(project.Languages, candidate.Languages),
		types.FactorIndustry:      ScoreIndustry(project.Industry, candidate.Industries),
		types.FactorSkillMatch:    ScoreSkills(project.Skills, project.ComplexityLevel(), candidate.Skills),
		types.FactorCertification: ScoreCertifications(project.Certifications, candidate.Certifications),
		types.FactorExpertise:     ScoreExpertise(project.ExpertiseAreas, candidate.ExpertiseAreas),

		types.FactorCulturalAwareness: ScoreTrait("cultural awareness", candidate.CulturalAwareness.Float64()),
		types.FactorProblemSolving:    ScoreTrait("problem solving", candidate.ProblemSolving.Float64()),
		types.FactorLeadership:        ScoreTrait("leadership", candidate.Leadership.Float64()),

		// Pass-through from the retrieval step, deliberately unclamped.
		types.FactorRetriever: {
			Score: candidate.Relevance,
			Trace: types.Trace{}.
				Add("source", "retrieval service").
				Add("score", candidate.Relevance),
		},
	}

	report := &types.CandidateScoreReport{
		CandidateID:      candidate.ID,
		ProjectID:        project.ID,
		Factors:          factors,
		IsFullyAvailable: factors[types.FactorAvailability].Score == 1.0,
	}
	report.OverallWeightedScore, report.AggregationTrace = aggregate(factors, weights)
	return report
}

// aggregate combines the factors present in both the computed scores and the
// weight table, renormalizing over the weights actually applied so that
// absent factors neither deflate nor inflate the result.
func aggregate(factors map[string]types.FactorResult, weights types.ScoringWeights) (float64, types.Trace) {
	applied := make([]appliedWeight, 0, len(weights))
	skipped := make([]string, 0)
	weightedSum := 0.0
	totalWeight := 0.0

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result, ok := factors[name]
		if !ok || math.IsNaN(result.Score) || math.IsInf(result.Score, 0) {
			skipped = append(skipped, name)
			continue
		}
		weight := weights[name]
		weightedSum += result.Score * weight
		totalWeight += weight
		applied = append(applied, appliedWeight{Factor: name, Score: result.Score, Weight: weight})
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = round4(weightedSum / totalWeight)
	}

	trace := types.Trace{}.
		Add("applied", applied).
		Add("skipped", skipped).
		Add("weighted_sum", weightedSum).
		Add("total_weight_applied", totalWeight).
		Add("overall_weighted_score", overall)
	return overall, trace
}
