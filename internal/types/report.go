package types

// TraceEntry is one step of a factor's explanation: a field name and the
// value observed or computed at that step. Entries are ordered and
// machine-parseable; values must be JSON-serializable.
type TraceEntry struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Trace is an ordered explanation for one factor or for the aggregation.
type Trace []TraceEntry

// Add appends an entry and returns the trace for chaining.
func (t Trace) Add(field string, value any) Trace {
	return append(t, TraceEntry{Field: field, Value: value})
}

// FactorResult is the outcome of one factor scorer: a score in [0,1] (the
// retriever factor passes through raw and may exceed 1) and its trace.
// Results are never mutated after being produced.
type FactorResult struct {
	Score float64 `json:"score"`
	Trace Trace   `json:"trace"`
}

// CandidateScoreReport is the full scoring outcome for one
// (candidate, project) pair.
type CandidateScoreReport struct {
	CandidateID          string                  `json:"candidate_id"`
	ProjectID            string                  `json:"project_id"`
	Factors              map[string]FactorResult `json:"factors"`
	IsFullyAvailable     bool                    `json:"is_fully_available"`
	OverallWeightedScore float64                 `json:"overall_weighted_score"`
	AggregationTrace     Trace                   `json:"aggregation_trace"`
}
