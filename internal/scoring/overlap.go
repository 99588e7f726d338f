// Package scoring implements the multi-factor compatibility engine: the
// individual factor scorers, the availability projector, and the weighted
// aggregation that turns a (project, candidate) pair into a score report.
package scoring

import (
	"github.com/jonathan/talent-matcher/internal/textmatch"
	"github.com/jonathan/talent-matcher/internal/types"
)

// MatchPair records one fuzzy alignment between a required label and the
// candidate label that satisfied it.
type MatchPair struct {
	Required string `json:"required"`
	Matched  string `json:"matched"`
}

// scoreOverlap computes the fraction of required labels with at least one
// fuzzy match in the candidate's labels. Each required label consumes at most
// one match, but candidate labels may be reused across required labels.
func scoreOverlap(requirement string, required, available []string, threshold int) types.FactorResult {
	trace := types.Trace{}.Add("requirement", required)
	if len(required) == 0 {
		trace = trace.Add("status", "no "+requirement+" required")
		return types.FactorResult{Score: 1.0, Trace: trace.Add("score", 1.0)}
	}
	if len(available) == 0 {
		trace = trace.Add("status", "candidate lists no "+requirement)
		return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
	}

	matched := make([]MatchPair, 0, len(required))
	unmatched := make([]string, 0)
	for _, req := range required {
		found := false
		for _, have := range available {
			if textmatch.Equal(req, have, threshold) {
				matched = append(matched, MatchPair{Required: req, Matched: have})
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, req)
		}
	}

	score := round3(float64(len(matched)) / float64(len(required)))
	trace = trace.Add("matched", matched).
		Add("unmatched", unmatched).
		Add("score", score)
	return types.FactorResult{Score: score, Trace: trace}
}

// ScoreProducts scores overlap between required and candidate products.
func ScoreProducts(required, available []string) types.FactorResult {
	return scoreOverlap("products", required, available, textmatch.DefaultThreshold)
}

// ScoreCertifications scores overlap between required and candidate
// certifications.
func ScoreCertifications(required, available []string) types.FactorResult {
	return scoreOverlap("certifications", required, available, textmatch.DefaultThreshold)
}

// ScoreExpertise scores overlap between required and candidate expertise
// areas.
func ScoreExpertise(required, available []string) types.FactorResult {
	return scoreOverlap("expertise areas", required, available, textmatch.DefaultThreshold)
}

// ScoreIndustry scores the project's single industry against the candidate's
// industry experience, short-circuiting to 1.0 on the first match.
func ScoreIndustry(industry string, available []string) types.FactorResult {
	trace := types.Trace{}.Add("requirement", industry)
	if industry == "" {
		trace = trace.Add("status", "no industry required")
		return types.FactorResult{Score: 1.0, Trace: trace.Add("score", 1.0)}
	}
	trace = trace.Add("candidate_industries", available)
	if len(available) == 0 {
		trace = trace.Add("status", "candidate lists no industry experience")
		return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
	}
	for _, have := range available {
		if textmatch.Equal(industry, have, textmatch.DefaultThreshold) {
			trace = trace.Add("matched", MatchPair{Required: industry, Matched: have})
			return types.FactorResult{Score: 1.0, Trace: trace.Add("score", 1.0)}
		}
	}
	trace = trace.Add("status", "no industry match")
	return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
}
