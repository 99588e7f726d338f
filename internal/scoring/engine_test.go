package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func fixtureProject(t *testing.T) *types.ProjectRequirement {
	t.Helper()
	return &types.ProjectRequirement{
		ID:             "proj-001",
		Summary:        "CRM rollout",
		Scope:          "Migrate sales workflows to a new CRM",
		Products:       types.StringList{"Salesforce"},
		Certifications: types.StringList{"Salesforce Administrator"},
		ExpertiseAreas: types.StringList{"CRM"},
		Industry:       "Retail",
		Skills:         types.LevelMap{"Salesforce": 6, "Python": 5},
		Languages:      types.StringMap{"English": "B2"},
		Location:       "Berlin",
		Flexibility:    "remote",
		Complexity:     types.NewFlexInt(6),
		EffortHours:    types.FlexFloat(80),
		RequestedEnd:   flexDate(t, "2025-03-31"),
	}
}

func fixtureCandidate(t *testing.T) *types.CandidateProfile {
	t.Helper()
	return &types.CandidateProfile{
		ID:                  "cand-001",
		Products:            types.StringList{"Salesforce"},
		Certifications:      types.StringList{"Salesforce Administrator"},
		ExpertiseAreas:      types.StringList{"CRM"},
		Industries:          types.StringList{"Retail", "Finance"},
		Skills:              types.LevelMap{"Salesforce": 9, "Python": 8},
		Languages:           types.StringMap{"English": "C1"},
		Location:            "Berlin",
		Flexibility:         "remote",
		WeeklyCapacityHours: types.FlexFloat(40),
		AvailableFrom:       flexDate(t, "2025-01-01"),
		CulturalAwareness:   types.FlexFloat(10),
		ProblemSolving:      types.FlexFloat(10),
		Leadership:          types.FlexFloat(10),
		Relevance:           1.0,
	}
}

func TestScoreCandidate_PerfectMatchScoresOne(t *testing.T) {
	report := ScoreCandidate(fixtureProject(t), fixtureCandidate(t), nil)

	require.NotNil(t, report)
	assert.Equal(t, "cand-001", report.CandidateID)
	assert.Equal(t, "proj-001", report.ProjectID)
	assert.True(t, report.IsFullyAvailable)
	assert.Equal(t, 1.0, report.OverallWeightedScore)
	assert.Len(t, report.Factors, 12)
	for name, factor := range report.Factors {
		assert.Equal(t, 1.0, factor.Score, "factor %s", name)
	}
}

func TestScoreCandidate_RenormalizesOverAppliedWeights(t *testing.T) {
	candidate := fixtureCandidate(t)
	candidate.Relevance = 0.8

	// Only the retriever weight matches a computed factor; the unknown name
	// is skipped and its weight excluded from the denominator.
	weights := types.ScoringWeights{
		types.FactorRetriever: 0.25,
		"FutureScore":         0.75,
	}
	report := ScoreCandidate(fixtureProject(t), candidate, weights)
	assert.Equal(t, 0.8, report.OverallWeightedScore)
}

func TestScoreCandidate_LeavesWeightTableUntouched(t *testing.T) {
	weights := types.ScoringWeights{
		types.FactorRetriever:  0.5,
		types.FactorSkillMatch: 0.5,
	}
	_ = ScoreCandidate(fixtureProject(t), fixtureCandidate(t), weights)

	assert.Len(t, weights, 2)
	assert.Equal(t, 0.5, weights[types.FactorRetriever])
	assert.Equal(t, 0.5, weights[types.FactorSkillMatch])
}

func TestScoreCandidate_ZeroTotalWeightScoresZero(t *testing.T) {
	report := ScoreCandidate(fixtureProject(t), fixtureCandidate(t), types.ScoringWeights{})
	assert.Equal(t, 0.0, report.OverallWeightedScore)
}

func TestScoreCandidate_MissedDeadlineNotFullyAvailable(t *testing.T) {
	candidate := fixtureCandidate(t)
	candidate.AvailableFrom = flexDate(t, "2025-03-25")

	report := ScoreCandidate(fixtureProject(t), candidate, nil)
	assert.False(t, report.IsFullyAvailable)
	assert.Less(t, report.Factors[types.FactorAvailability].Score, 1.0)
}

func TestScoreCandidate_Deterministic(t *testing.T) {
	first := ScoreCandidate(fixtureProject(t), fixtureCandidate(t), nil)
	second := ScoreCandidate(fixtureProject(t), fixtureCandidate(t), nil)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestScoreCandidate_EmptyCandidateStillReports(t *testing.T) {
	report := ScoreCandidate(fixtureProject(t), &types.CandidateProfile{ID: "cand-empty"}, nil)

	require.NotNil(t, report)
	assert.Len(t, report.Factors, 12)
	assert.Equal(t, 0.0, report.Factors[types.FactorSkillMatch].Score)
	assert.Equal(t, 0.0, report.Factors[types.FactorAvailability].Score)
	assert.False(t, report.IsFullyAvailable)
	assert.GreaterOrEqual(t, report.OverallWeightedScore, 0.0)
}
