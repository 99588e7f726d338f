package types

// Factor names used as keys in reports and weight tables.
const (
	FactorSkillMatch        = "SkillMatchScore"
	FactorAvailability      = "AvailabilityScore"
	FactorProduct           = "ProductScore"
	FactorIndustry          = "IndustryScore"
	FactorExpertise         = "ExpertiseScore"
	FactorLanguage          = "LanguageScore"
	FactorCertification     = "CertificationScore"
	FactorLocation          = "LocationScore"
	FactorCulturalAwareness = "CulturalAwarenessScore"
	FactorProblemSolving    = "ProblemSolvingScore"
	FactorLeadership        = "LeadershipScore"
	FactorRetriever         = "RetrieverScore"
)

// ScoringWeights maps factor name to a non-negative weight. Weights need not
// sum to 1; the aggregator renormalizes over the weights actually applied.
type ScoringWeights map[string]float64

// DefaultWeights returns a fresh copy of the default weight table. Callers
// may edit the returned map freely; the defaults are never shared.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		FactorSkillMatch:        0.25,
		FactorAvailability:      0.15,
		FactorProduct:           0.05,
		FactorIndustry:          0.05,
		FactorExpertise:         0.10,
		FactorLanguage:          0.05,
		FactorCertification:     0.05,
		FactorLocation:          0.00,
		FactorCulturalAwareness: 0.02,
		FactorProblemSolving:    0.04,
		FactorLeadership:        0.04,
		FactorRetriever:         0.25,
	}
}

// Clone returns an independent copy of the table. Batch runs snapshot the
// table once before dispatch so reports stay internally consistent.
func (w ScoringWeights) Clone() ScoringWeights {
	if w == nil {
		return nil
	}
	out := make(ScoringWeights, len(w))
	for name, weight := range w {
		out[name] = weight
	}
	return out
}
