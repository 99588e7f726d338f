package types

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Records arrive from stores that flatten metadata, so list and map valued
// fields may be JSON-encoded strings and dates may be calendar strings,
// ISO-like timestamps, or epoch numbers. The Flex* types decode all of these
// into one canonical in-memory representation.

// epochMillisFloor is 2000-01-01T00:00:00Z expressed in milliseconds. Epoch
// values above it are interpreted as milliseconds, below it as seconds.
const epochMillisFloor = 946684800000

// StringList is a []string that also accepts a JSON-encoded string. A string
// that fails to decode as a list becomes a single-element list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Unknown shape; treat as absent rather than failing the record.
		*l = nil
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			*l = items
			return nil
		}
	}
	if trimmed == "" {
		*l = nil
		return nil
	}
	*l = StringList{raw}
	return nil
}

// StringMap is a map[string]string that also accepts a JSON-encoded string.
type StringMap map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (m *StringMap) UnmarshalJSON(data []byte) error {
	var direct map[string]string
	if err := json.Unmarshal(data, &direct); err == nil {
		*m = direct
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = nil
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if err := json.Unmarshal([]byte(trimmed), &direct); err == nil {
			*m = direct
			return nil
		}
	}
	*m = nil
	return nil
}

// LevelMap is a map[string]float64 for skill/proficiency levels that also
// accepts a JSON-encoded string.
type LevelMap map[string]float64

// UnmarshalJSON implements json.Unmarshaler.
func (m *LevelMap) UnmarshalJSON(data []byte) error {
	var direct map[string]float64
	if err := json.Unmarshal(data, &direct); err == nil {
		*m = direct
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = nil
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if err := json.Unmarshal([]byte(trimmed), &direct); err == nil {
			*m = direct
			return nil
		}
	}
	*m = nil
	return nil
}

// FlexFloat is a float64 that also accepts a numeric JSON string. Values that
// cannot be parsed decode to zero.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(n)
	return nil
}

// Float64 returns the value as a plain float64.
func (f FlexFloat) Float64() float64 { return float64(f) }

// FlexInt is an int that also accepts a numeric JSON string. Values that
// cannot be parsed decode to mid-scale 5, the complexity fallback.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*i = FlexInt(n)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*i = 5
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*i = 5
		return nil
	}
	*i = FlexInt(n)
	return nil
}

// Int returns the value as a plain int.
func (i FlexInt) Int() int { return int(i) }

// NewFlexInt builds a FlexInt pointer from a plain int.
func NewFlexInt(n int) *FlexInt {
	i := FlexInt(n)
	return &i
}

// FlexDate is a date that accepts calendar strings, ISO-like timestamps, and
// epoch values in seconds or milliseconds. Unparseable input yields an
// invalid date rather than an error.
type FlexDate struct {
	Time  time.Time
	Valid bool
	Raw   string
}

// NewFlexDate builds a valid FlexDate from a time value.
func NewFlexDate(t time.Time) *FlexDate {
	return &FlexDate{Time: t, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FlexDate) UnmarshalJSON(data []byte) error {
	d.Raw = strings.Trim(string(data), `"`)
	var epoch float64
	if err := json.Unmarshal(data, &epoch); err == nil {
		if epoch > epochMillisFloor {
			epoch /= 1000
		}
		sec := int64(epoch)
		nsec := int64((epoch - float64(sec)) * float64(time.Second))
		d.Time = time.Unix(sec, nsec).UTC()
		d.Valid = true
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		d.Valid = false
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Valid = false
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		d.Valid = false
		return nil
	}
	d.Time = t
	d.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d FlexDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}
