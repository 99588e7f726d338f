package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_PlainArray(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["SAP","Azure"]`), &l))
	assert.Equal(t, StringList{"SAP", "Azure"}, l)
}

func TestStringList_EncodedArray(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"[\"SAP\",\"Azure\"]"`), &l))
	assert.Equal(t, StringList{"SAP", "Azure"}, l)
}

func TestStringList_BareStringBecomesSingleElement(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"SAP"`), &l))
	assert.Equal(t, StringList{"SAP"}, l)
}

func TestStringList_MalformedEncodedArrayFallsBack(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"[not json"`), &l))
	assert.Equal(t, StringList{"[not json"}, l)
}

func TestStringList_EmptyString(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`""`), &l))
	assert.Empty(t, l)
}

func TestStringMap_EncodedObject(t *testing.T) {
	var m StringMap
	require.NoError(t, json.Unmarshal([]byte(`"{\"English\":\"C1\"}"`), &m))
	assert.Equal(t, StringMap{"English": "C1"}, m)
}

func TestLevelMap_PlainAndEncoded(t *testing.T) {
	var m LevelMap
	require.NoError(t, json.Unmarshal([]byte(`{"Go":8}`), &m))
	assert.Equal(t, LevelMap{"Go": 8}, m)

	var encoded LevelMap
	require.NoError(t, json.Unmarshal([]byte(`"{\"Go\":8}"`), &encoded))
	assert.Equal(t, LevelMap{"Go": 8}, encoded)
}

func TestFlexFloat_NumericString(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`"37.5"`), &f))
	assert.Equal(t, 37.5, f.Float64())
}

func TestFlexFloat_GarbageDecodesToZero(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`"not a number"`), &f))
	assert.Equal(t, 0.0, f.Float64())
}

func TestFlexInt_GarbageDecodesToMidScale(t *testing.T) {
	var i FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"High"`), &i))
	assert.Equal(t, 5, i.Int())
}

func TestFlexDate_CalendarString(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, 2025, d.Time.Year())
	assert.Equal(t, time.June, d.Time.Month())
}

func TestFlexDate_ISOTimestamp(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T12:30:00Z"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, 1, d.Time.Day())
}

func TestFlexDate_EpochSeconds(t *testing.T) {
	// 2000-01-01T00:00:00Z in seconds sits exactly at the magnitude boundary
	// and must be read as seconds.
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`946684800`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, 2000, d.Time.Year())
}

func TestFlexDate_EpochMilliseconds(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`1700000000000`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, 2023, d.Time.Year())
}

func TestFlexDate_Unparseable(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"sometime soon"`), &d))
	assert.False(t, d.Valid)
}

func TestFlexDate_MarshalRoundTrip(t *testing.T) {
	d := NewFlexDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(out))

	invalid := FlexDate{}
	out, err = json.Marshal(invalid)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestCandidateProfile_DecodesFlattenedRecord(t *testing.T) {
	// A record as it comes back from a metadata store that stringifies
	// nested values.
	raw := `{
		"id": "E001",
		"products": "[\"SAP S/4HANA\"]",
		"skills": "{\"Machine Learning\":8}",
		"languages": "{\"English\":\"C2\"}",
		"weekly_capacity_hours": "32",
		"available_from": 1750000000,
		"cultural_awareness": 8
	}`

	var c CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, "E001", c.ID)
	assert.Equal(t, StringList{"SAP S/4HANA"}, c.Products)
	assert.Equal(t, LevelMap{"Machine Learning": 8}, c.Skills)
	assert.Equal(t, StringMap{"English": "C2"}, c.Languages)
	assert.Equal(t, 32.0, c.WeeklyCapacityHours.Float64())
	assert.True(t, c.AvailableFrom.Valid)
}
