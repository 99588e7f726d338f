package scoring

import (
	"github.com/jonathan/talent-matcher/internal/textmatch"
	"github.com/jonathan/talent-matcher/internal/types"
)

// skillMatch records one aligned (required skill, candidate skill) pair and
// the proficiency fit computed for it.
type skillMatch struct {
	Required      string  `json:"required"`
	RequiredLevel float64 `json:"required_level"`
	Matched       string  `json:"matched"`
	ActualLevel   float64 `json:"actual_level"`
	Fit           float64 `json:"fit"`
}

// ScoreSkills scores the candidate's skill capability against the project's
// complexity target. Capability is coverage of required skills times the
// average proficiency fit over matched skills; the target is complexity/10.
// Capability at or above the target scores 1.0, below it the ratio
// capability/target rounded to two decimals.
//
// Note the asymmetry with the other scorers: an empty requirement map yields
// zero matched skills and therefore 0.0, not 1.0. A project that names no
// skills gives the scorer no evidence to rate.
func ScoreSkills(required types.LevelMap, complexity int, available types.LevelMap) types.FactorResult {
	if complexity < 0 {
		complexity = 0
	} else if complexity > 10 {
		complexity = 10
	}
	trace := types.Trace{}.
		Add("requirement", required).
		Add("complexity", complexity)

	matches := make([]skillMatch, 0, len(required))
	unmatched := make([]string, 0)
	fitSum := 0.0
	for _, skill := range sortedKeys(required) {
		requiredLevel := required[skill]
		key, _, ok := textmatch.BestKey(skill, available, textmatch.DefaultThreshold)
		if !ok {
			unmatched = append(unmatched, skill)
			continue
		}
		actualLevel := available[key]
		fit := 1.0
		if actualLevel < requiredLevel {
			fit = 1.0 - (requiredLevel-actualLevel)/10.0
		}
		fitSum += fit
		matches = append(matches, skillMatch{
			Required:      skill,
			RequiredLevel: requiredLevel,
			Matched:       key,
			ActualLevel:   actualLevel,
			Fit:           fit,
		})
	}

	trace = trace.Add("matched", matches).Add("unmatched", unmatched)
	if len(matches) == 0 {
		trace = trace.Add("status", "no skill matches")
		return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
	}

	coverage := float64(len(matches)) / float64(len(required))
	avgFit := fitSum / float64(len(matches))
	capability := coverage * avgFit
	target := float64(complexity) / 10.0
	trace = trace.Add("coverage", coverage).
		Add("average_fit", avgFit).
		Add("capability", capability).
		Add("complexity_target", target)

	// target == 0 always satisfies capability >= target, so the ratio branch
	// can never divide by zero.
	if target <= 0 || capability >= target {
		return types.FactorResult{Score: 1.0, Trace: trace.Add("score", 1.0)}
	}
	score := round2(capability / target)
	return types.FactorResult{Score: score, Trace: trace.Add("score", score)}
}
