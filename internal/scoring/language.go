package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/textmatch"
	"github.com/jonathan/talent-matcher/internal/types"
)

// cefrScale maps CEFR proficiency levels to ordinal values. Native speakers
// score as C2. Unknown levels map to 0.
var cefrScale = map[string]int{
	"A1":     1,
	"A2":     2,
	"B1":     3,
	"B2":     4,
	"C1":     5,
	"C2":     6,
	"NATIVE": 6,
}

// cefrMax is the top of the CEFR ordinal scale; proficiency gaps are
// normalized against it.
const cefrMax = 6.0

// CEFRNumeric converts a CEFR level string to its ordinal value, 0 when
// unrecognized.
func CEFRNumeric(level string) int {
	return cefrScale[strings.ToUpper(strings.TrimSpace(level))]
}

// languageMatch records one aligned (required language, candidate language)
// pair and the proficiency fit computed for it.
type languageMatch struct {
	Required      string  `json:"required"`
	RequiredLevel string  `json:"required_level"`
	Matched       string  `json:"matched"`
	ActualLevel   string  `json:"actual_level"`
	Fit           float64 `json:"fit"`
}

// ScoreLanguages computes coverage of required languages times the average
// proficiency fit over matched pairs. A candidate at or above the required
// level fits 1.0; below it the fit decays by the level gap over the six-point
// scale.
func ScoreLanguages(required, available map[string]string) types.FactorResult {
	trace := types.Trace{}.Add("requirement", required)
	if len(required) == 0 {
		trace = trace.Add("status", "no languages required")
		return types.FactorResult{Score: 1.0, Trace: trace.Add("score", 1.0)}
	}
	if len(available) == 0 {
		trace = trace.Add("status", "candidate lists no languages")
		return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
	}

	matches := make([]languageMatch, 0, len(required))
	unmatched := make([]string, 0)
	fitSum := 0.0
	for _, lang := range sortedKeys(required) {
		requiredLevel := required[lang]
		key, _, ok := textmatch.BestKey(lang, available, textmatch.DefaultThreshold)
		if !ok {
			unmatched = append(unmatched, lang)
			continue
		}
		actualLevel := available[key]
		requiredNum := CEFRNumeric(requiredLevel)
		actualNum := CEFRNumeric(actualLevel)
		fit := 1.0
		if actualNum < requiredNum {
			fit = 0.0
			if requiredNum > 0 {
				fit = max(0.0, 1.0-float64(requiredNum-actualNum)/cefrMax)
			}
		}
		fitSum += fit
		matches = append(matches, languageMatch{
			Required:      lang,
			RequiredLevel: requiredLevel,
			Matched:       key,
			ActualLevel:   actualLevel,
			Fit:           fit,
		})
	}

	trace = trace.Add("matched", matches).Add("unmatched", unmatched)
	if len(matches) == 0 {
		trace = trace.Add("status", "no language matches")
		return types.FactorResult{Score: 0.0, Trace: trace.Add("score", 0.0)}
	}

	coverage := float64(len(matches)) / float64(len(required))
	avgFit := fitSum / float64(len(matches))
	score := round3(coverage * avgFit)
	trace = trace.Add("coverage", coverage).
		Add("average_fit", avgFit).
		Add("score", score)
	return types.FactorResult{Score: score, Trace: trace}
}
