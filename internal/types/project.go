package types

import "strings"

// ProjectRequirement represents one project staffing requirement as supplied
// by the requirement store or the request body.
type ProjectRequirement struct {
	ID      string `json:"id"`
	Summary string `json:"summary,omitempty"`
	Scope   string `json:"scope,omitempty"`
	Theme   string `json:"theme,omitempty"`

	Products       StringList `json:"products,omitempty"`
	Certifications StringList `json:"certifications,omitempty"`
	ExpertiseAreas StringList `json:"expertise_areas,omitempty"`
	// Industry is single-valued on the project side; candidates list many.
	Industry string `json:"industry,omitempty"`

	// Skills maps skill name to the minimum required level (0-10).
	Skills LevelMap `json:"skills,omitempty"`
	// Languages maps language name to the minimum required CEFR level.
	Languages StringMap `json:"languages,omitempty"`

	Location    string `json:"location,omitempty"`
	Flexibility string `json:"flexibility,omitempty"` // remote, hybrid or onsite

	// Complexity is an integer 0-10; scorers clamp out-of-range values.
	// Absent means mid-scale, see ComplexityLevel.
	Complexity   *FlexInt  `json:"complexity,omitempty"`
	EffortHours  FlexFloat `json:"effort_hours,omitempty"`
	RequestedEnd *FlexDate `json:"requested_end,omitempty"`
}

// ComplexityLevel returns the stated complexity, defaulting to mid-scale 5
// when the record omits the field. An explicit 0 stays 0.
func (p *ProjectRequirement) ComplexityLevel() int {
	if p.Complexity == nil {
		return 5
	}
	return p.Complexity.Int()
}

// Query returns the free-text query used for semantic candidate retrieval.
func (p *ProjectRequirement) Query() string {
	parts := make([]string, 0, 2)
	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	if p.Scope != "" {
		parts = append(parts, p.Scope)
	}
	return strings.Join(parts, " - ")
}
