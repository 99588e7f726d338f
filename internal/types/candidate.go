// Package types provides type definitions for the records exchanged between
// the scoring engine, its collaborators, and the serving layer.
package types

// CandidateProfile represents one talent profile as supplied by the profile
// store or the request body. List and map valued fields tolerate arriving as
// JSON-encoded strings (see flex.go).
type CandidateProfile struct {
	ID              string     `json:"id"`
	RoleDescription string     `json:"role_description,omitempty"`
	Theme           string     `json:"theme,omitempty"`
	Products        StringList `json:"products,omitempty"`
	Certifications  StringList `json:"certifications,omitempty"`
	ExpertiseAreas  StringList `json:"expertise_areas,omitempty"`
	Industries      StringList `json:"industries,omitempty"`

	// Skills maps skill name to a self-assessed proficiency level (0-10).
	Skills LevelMap `json:"skills,omitempty"`
	// Languages maps language name to a CEFR level (A1-C2 or Native).
	Languages StringMap `json:"languages,omitempty"`

	Location    string `json:"location,omitempty"`
	Flexibility string `json:"flexibility,omitempty"` // remote, hybrid or onsite

	WeeklyCapacityHours FlexFloat `json:"weekly_capacity_hours,omitempty"`
	AvailableFrom       *FlexDate `json:"available_from,omitempty"`

	// Self-rated ordinal traits on a 0-10 scale.
	CulturalAwareness FlexFloat `json:"cultural_awareness,omitempty"`
	ProblemSolving    FlexFloat `json:"problem_solving,omitempty"`
	Leadership        FlexFloat `json:"leadership,omitempty"`

	// Relevance is the semantic relevance value (0-1) attached by the
	// retrieval service. The engine passes it through without recomputing.
	Relevance float64 `json:"relevance,omitempty"`
}
