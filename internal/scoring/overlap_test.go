package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreProducts_EmptyRequirementScoresOne(t *testing.T) {
	result := ScoreProducts(nil, []string{"SAP"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreProducts_EmptyCandidateScoresZero(t *testing.T) {
	result := ScoreProducts([]string{"SAP"}, nil)
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreProducts_PartialOverlap(t *testing.T) {
	result := ScoreProducts(
		[]string{"Salesforce", "Tableau"},
		[]string{"Salesforce CRM experience", "Tableau", "Excel"},
	)
	// Only Tableau matches exactly; the long free-text label drags
	// "Salesforce" below the threshold.
	assert.Equal(t, 0.5, result.Score)
}

func TestScoreProducts_TypoStillMatches(t *testing.T) {
	result := ScoreProducts([]string{"Pyhton"}, []string{"Python"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreProducts_CandidateItemReusedAcrossRequirements(t *testing.T) {
	// Matching is greedy and non-exclusive: one candidate label may satisfy
	// several required labels.
	result := ScoreProducts([]string{"Python", "Pyton"}, []string{"Python"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreCertifications_FullMatch(t *testing.T) {
	result := ScoreCertifications([]string{"PMP"}, []string{"PMP", "CISSP"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreExpertise_NoMatch(t *testing.T) {
	result := ScoreExpertise([]string{"Machine Learning"}, []string{"Carpentry"})
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreIndustry_EmptyRequirementScoresOne(t *testing.T) {
	result := ScoreIndustry("", []string{"Finance"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreIndustry_ShortCircuitsOnFirstMatch(t *testing.T) {
	result := ScoreIndustry("Finance", []string{"Healthcare", "Finance", "Retail"})
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreIndustry_NoExperience(t *testing.T) {
	result := ScoreIndustry("Finance", nil)
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreOverlap_TraceRecordsMatches(t *testing.T) {
	result := ScoreProducts([]string{"SAP", "Oracle"}, []string{"SAP"})

	fields := make(map[string]bool)
	for _, entry := range result.Trace {
		fields[entry.Field] = true
	}
	assert.True(t, fields["requirement"])
	assert.True(t, fields["matched"])
	assert.True(t, fields["unmatched"])
	assert.True(t, fields["score"])
}
