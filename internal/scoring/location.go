package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/textmatch"
	"github.com/jonathan/talent-matcher/internal/types"
)

// FlexMode is a work-flexibility mode.
type FlexMode int

// Flexibility modes, ordered from least to most location-bound.
const (
	ModeRemote FlexMode = iota
	ModeHybrid
	ModeOnsite
	ModeUnknown
)

// String returns the canonical mode label.
func (m FlexMode) String() string {
	switch m {
	case ModeRemote:
		return "remote"
	case ModeHybrid:
		return "hybrid"
	case ModeOnsite:
		return "onsite"
	default:
		return "unknown"
	}
}

// ParseFlexMode normalizes free-text flexibility descriptions ("Remote",
// "hybrid (2 days)", "On-site") to a mode.
func ParseFlexMode(s string) FlexMode {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "remote"):
		return ModeRemote
	case strings.Contains(s, "hybrid"):
		return ModeHybrid
	case strings.Contains(s, "on-site"), strings.Contains(s, "onsite"):
		return ModeOnsite
	default:
		return ModeUnknown
	}
}

// ScoreLocation scores location and flexibility compatibility. The project
// mode is the primary axis: remote projects carry no location constraint;
// onsite and hybrid projects require a fuzzy location match and then rate the
// candidate's mode against the required presence.
func ScoreLocation(projectLoc, projectFlex, candidateLoc, candidateFlex string) types.FactorResult {
	pMode := ParseFlexMode(projectFlex)
	cMode := ParseFlexMode(candidateFlex)
	locMatch := textmatch.Equal(projectLoc, candidateLoc, textmatch.DefaultThreshold)

	trace := types.Trace{}.
		Add("project_location", projectLoc).
		Add("project_mode", pMode.String()).
		Add("candidate_location", candidateLoc).
		Add("candidate_mode", cMode.String()).
		Add("location_match", locMatch)

	score := 0.0
	status := ""
	switch pMode {
	case ModeRemote:
		score = 1.0
		status = "remote project has no location constraint"
	case ModeOnsite:
		switch {
		case !locMatch:
			status = "onsite project requires a location match"
		case cMode == ModeOnsite:
			score = 1.0
			status = "onsite project, onsite candidate, locations match"
		case cMode == ModeHybrid:
			score = 0.5
			status = "onsite project, hybrid candidate, locations match"
		default:
			status = "candidate mode incompatible with onsite project"
		}
	case ModeHybrid:
		switch {
		case !locMatch:
			status = "hybrid project requires a location match"
		case cMode == ModeHybrid || cMode == ModeOnsite:
			score = 1.0
			status = "hybrid project, candidate can be on site, locations match"
		default:
			status = "candidate mode incompatible with hybrid project"
		}
	default:
		status = "unrecognized flexibility mode"
	}

	trace = trace.Add("status", status).Add("score", score)
	return types.FactorResult{Score: score, Trace: trace}
}
