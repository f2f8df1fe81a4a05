package workouts

import "time"

const (
	// DefaultSource is assumed when the ingest payload carries no source device.
	DefaultSource = "Apple Watch"

	// DefaultTimezone is the fixed timezone for date bucketing and ingest timestamps.
	DefaultTimezone = "America/Los_Angeles"
)

// SupportedWorkoutTypes is the vocabulary advertised to agent integrations.
// Purely informational, ingest accepts any type string.
var SupportedWorkoutTypes = []string{
	"Functional Training",
	"Golf",
	"Yoga",
	"Running",
	"Rowing",
	"Walking",
	"Cycling",
	"Swimming",
	"HIIT",
	"Strength Training",
}

type Workout struct {
	Type            string  `json:"type"`
	Start           string  `json:"start"`
	End             string  `json:"end,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	Calories        float64 `json:"calories,omitempty"`
	Distance        float64 `json:"distance,omitempty"`
	HeartRateAvg    int     `json:"heart_rate_avg,omitempty"`
	HeartRateMax    int     `json:"heart_rate_max,omitempty"`
	Source          string  `json:"source,omitempty"`
	IngestedAt      string  `json:"ingested_at,omitempty"`

	// parsed from Start when it parses, zero otherwise; used for sorting only
	startTime time.Time
}

// Key identifies a workout for deduplication. Two fields instead of a
// joined string, so "Golf"/"ing ..." can never collide with "Golfing"/"...".
type Key struct {
	Type  string
	Start string
}

func (w Workout) Key() Key {
	return Key{Type: w.Type, Start: w.Start}
}

// startLayouts cover the formats the phone automations actually send.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseStart(start string) time.Time {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, start); err == nil {
			return t
		}
	}
	return time.Time{}
}

// datePortion returns the YYYY-MM-DD prefix of the start string,
// or empty when the string is too short to carry one.
func (w Workout) datePortion() string {
	if len(w.Start) >= 10 {
		return w.Start[:10]
	}
	return ""
}

// startsBefore orders workouts chronologically, using the parsed timestamps
// when both are available and falling back to the raw strings otherwise.
func startsBefore(a, b Workout) bool {
	if !a.startTime.IsZero() && !b.startTime.IsZero() && !a.startTime.Equal(b.startTime) {
		return a.startTime.Before(b.startTime)
	}
	return a.Start < b.Start
}
