package scoring

import (
	"math"
	"time"

	"github.com/jonathan/talent-matcher/internal/types"
)

// maxOverrunDays is the overrun window over which the availability score
// decays linearly from 1.0 to 0.
const maxOverrunDays = 30.0

// farFutureHorizon stands in for a missing requested completion date.
const farFutureHorizon = 5 * 365 * 24 * time.Hour

// AvailabilityProjection holds every intermediate quantity of the capacity
// projection so callers can explain the score.
type AvailabilityProjection struct {
	EffortHours         float64   `json:"effort_hours"`
	WeeklyCapacityHours float64   `json:"weekly_capacity_hours"`
	RequestedEnd        time.Time `json:"requested_end"`
	RequestedEndAssumed bool      `json:"requested_end_assumed"`
	AvailableFrom       time.Time `json:"available_from"`
	DurationWeeks       float64   `json:"duration_weeks"`
	CalendarDaysNeeded  float64   `json:"calendar_days_needed"`
	ProjectedEnd        time.Time `json:"projected_end"`
	DaysOverUnder       int       `json:"days_over_under"`
	Status              string    `json:"status"`
	Score               float64   `json:"score"`
}

// ProjectAvailability converts required effort and weekly capacity into a
// calendar completion projection and scores it against the requested end
// date. The model assumes continuous work: duration_weeks * 7 calendar days
// from the candidate's earliest availability, no weekend exclusion. Overruns
// decay the score linearly to 0 over a 30-day window.
func ProjectAvailability(effortHours float64, requestedEnd, availableFrom *types.FlexDate, weeklyCapacityHours float64) AvailabilityProjection {
	proj := AvailabilityProjection{
		EffortHours:         effortHours,
		WeeklyCapacityHours: weeklyCapacityHours,
	}

	if requestedEnd != nil && requestedEnd.Valid {
		proj.RequestedEnd = requestedEnd.Time
	} else {
		proj.RequestedEnd = time.Now().Add(farFutureHorizon)
		proj.RequestedEndAssumed = true
	}

	if availableFrom == nil || !availableFrom.Valid {
		proj.Status = "candidate availability date missing or unparseable"
		proj.Score = 0.0
		return proj
	}
	proj.AvailableFrom = availableFrom.Time

	if weeklyCapacityHours <= 0 {
		proj.Status = "weekly capacity is zero or not specified"
		proj.Score = 0.0
		return proj
	}
	if effortHours <= 0 {
		proj.Status = "required effort is zero; candidate considered fully available"
		proj.Score = 1.0
		return proj
	}

	proj.DurationWeeks = effortHours / weeklyCapacityHours
	proj.CalendarDaysNeeded = proj.DurationWeeks * 7
	proj.ProjectedEnd = proj.AvailableFrom.Add(time.Duration(proj.CalendarDaysNeeded * 24 * float64(time.Hour)))
	proj.DaysOverUnder = int(math.Floor(proj.ProjectedEnd.Sub(proj.RequestedEnd).Hours() / 24))

	if !proj.ProjectedEnd.After(proj.RequestedEnd) {
		proj.Status = "candidate can complete on time"
		proj.Score = 1.0
		return proj
	}
	proj.Status = "candidate projected to overrun the requested completion date"
	proj.Score = round3(math.Max(0.0, 1.0-float64(proj.DaysOverUnder)/maxOverrunDays))
	return proj
}

// ScoreAvailability runs the projection and wraps it as a factor result, with
// every intermediate quantity exposed in the trace.
func ScoreAvailability(effortHours float64, requestedEnd, availableFrom *types.FlexDate, weeklyCapacityHours float64) types.FactorResult {
	proj := ProjectAvailability(effortHours, requestedEnd, availableFrom, weeklyCapacityHours)

	trace := types.Trace{}.
		Add("effort_hours", proj.EffortHours).
		Add("weekly_capacity_hours", proj.WeeklyCapacityHours).
		Add("requested_end", dateLabel(proj.RequestedEnd, requestedEnd)).
		Add("requested_end_assumed", proj.RequestedEndAssumed).
		Add("available_from", dateLabel(proj.AvailableFrom, availableFrom)).
		Add("duration_weeks", proj.DurationWeeks).
		Add("calendar_days_needed", proj.CalendarDaysNeeded).
		Add("projected_end", formatDate(proj.ProjectedEnd)).
		Add("days_over_under", proj.DaysOverUnder).
		Add("status", proj.Status).
		Add("score", proj.Score)
	return types.FactorResult{Score: proj.Score, Trace: trace}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// dateLabel renders a projected date, falling back to the caller's raw input
// when it could not be parsed so the trace shows what was actually supplied.
func dateLabel(t time.Time, input *types.FlexDate) string {
	if label := formatDate(t); label != "" {
		return label
	}
	if input != nil {
		return input.Raw
	}
	return ""
}
