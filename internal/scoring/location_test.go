package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexMode(t *testing.T) {
	cases := []struct {
		input string
		want  FlexMode
	}{
		{"remote", ModeRemote},
		{"Fully Remote", ModeRemote},
		{"hybrid (2 days in office)", ModeHybrid},
		{"On-site", ModeOnsite},
		{"onsite", ModeOnsite},
		{"flexible", ModeUnknown},
		{"", ModeUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseFlexMode(tc.input), "input %q", tc.input)
	}
}

func TestScoreLocation_RemoteProjectIgnoresLocation(t *testing.T) {
	result := ScoreLocation("Berlin", "remote", "Tokyo", "onsite")
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreLocation_OnsiteMatch(t *testing.T) {
	result := ScoreLocation("Berlin", "on-site", "Berlin", "onsite")
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreLocation_OnsiteHybridCandidateHalf(t *testing.T) {
	result := ScoreLocation("Berlin", "onsite", "Berlin", "hybrid")
	assert.Equal(t, 0.5, result.Score)
}

func TestScoreLocation_OnsiteRemoteCandidateZero(t *testing.T) {
	result := ScoreLocation("Berlin", "onsite", "Berlin", "remote")
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreLocation_OnsiteLocationMismatchZero(t *testing.T) {
	result := ScoreLocation("Berlin", "onsite", "Tokyo", "onsite")
	assert.Equal(t, 0.0, result.Score)
}

func TestScoreLocation_OnsiteToleratesLocationTypo(t *testing.T) {
	result := ScoreLocation("Berlin", "onsite", "Berlinn", "onsite")
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreLocation_HybridProject(t *testing.T) {
	assert.Equal(t, 1.0, ScoreLocation("Berlin", "hybrid", "Berlin", "hybrid").Score)
	assert.Equal(t, 1.0, ScoreLocation("Berlin", "hybrid", "Berlin", "onsite").Score)
	assert.Equal(t, 0.0, ScoreLocation("Berlin", "hybrid", "Berlin", "remote").Score)
	assert.Equal(t, 0.0, ScoreLocation("Berlin", "hybrid", "Tokyo", "hybrid").Score)
}

func TestScoreLocation_UnknownProjectModeZero(t *testing.T) {
	result := ScoreLocation("Berlin", "", "Berlin", "onsite")
	assert.Equal(t, 0.0, result.Score)
}
