package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// Normalize scales value from [min,max] into [0,1], clamping out-of-range
// input. A degenerate range scores 0 at or below min and 1 above it.
func Normalize(value, minVal, maxVal float64) float64 {
	if maxVal == minVal {
		if value <= minVal {
			return 0.0
		}
		return 1.0
	}
	v := (value - minVal) / (maxVal - minVal)
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}

// ScoreTrait normalizes one self-rated 0-10 trait into a factor result.
func ScoreTrait(name string, raw float64) types.FactorResult {
	score := Normalize(raw, 0, 10)
	trace := types.Trace{}.
		Add("trait", name).
		Add("raw", raw).
		Add("score", score)
	return types.FactorResult{Score: score, Trace: trace}
}
