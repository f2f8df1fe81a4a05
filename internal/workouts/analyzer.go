package workouts

import (
	"context"

	"github.com/vranjes/workoutsink/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Summary struct {
	PeriodDays           int                       `json:"period_days"`
	TotalWorkouts        int                       `json:"total_workouts"`
	TotalDurationMinutes float64                   `json:"total_duration_minutes"`
	TotalCalories        float64                   `json:"total_calories"`
	ByType               map[string]*TypeStats     `json:"by_type"`
	WorkoutsByDate       map[string][]SummaryEntry `json:"workouts_by_date"`
}

type TypeStats struct {
	Count         int     `json:"count"`
	TotalDuration float64 `json:"total_duration"`
	TotalCalories float64 `json:"total_calories"`
}

// SummaryEntry is the per-workout line in the by-date breakdown.
type SummaryEntry struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Calories float64 `json:"calories"`
}

type recentWorkouts interface {
	Recent(ctx context.Context, days int) []Workout
}

// Analyzer computes aggregate stats over the stored workouts.
// Every call recomputes from live store contents, nothing is cached.
type Analyzer struct {
	store recentWorkouts
}

func NewAnalyzer(store recentWorkouts) *Analyzer {
	return &Analyzer{
		store: store,
	}
}

// Summary aggregates the last N days of workouts: totals, per-type
// buckets and a per-date breakdown. A workout without a type counts
// under "Unknown", one whose start carries no date under "unknown".
func (a *Analyzer) Summary(ctx context.Context, days int) *Summary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.analyzer.summary")
	defer span.End()
	span.SetAttributes(attribute.Int("days", days))

	recent := a.store.Recent(ctx, days)

	summary := &Summary{
		PeriodDays:     days,
		TotalWorkouts:  len(recent),
		ByType:         make(map[string]*TypeStats),
		WorkoutsByDate: make(map[string][]SummaryEntry),
	}

	for _, w := range recent {
		workoutType := w.Type
		if workoutType == "" {
			workoutType = "Unknown"
		}

		typeStats, ok := summary.ByType[workoutType]
		if !ok {
			typeStats = &TypeStats{}
			summary.ByType[workoutType] = typeStats
		}
		typeStats.Count++

		summary.TotalDurationMinutes += w.DurationMinutes
		typeStats.TotalDuration += w.DurationMinutes

		summary.TotalCalories += w.Calories
		typeStats.TotalCalories += w.Calories

		date := w.datePortion()
		if date == "" {
			date = "unknown"
		}
		summary.WorkoutsByDate[date] = append(summary.WorkoutsByDate[date], SummaryEntry{
			Type:     workoutType,
			Duration: w.DurationMinutes,
			Calories: w.Calories,
		})
	}

	return summary
}
