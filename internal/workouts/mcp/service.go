package mcp

import (
	"context"

	"github.com/vranjes/workoutsink/internal/workouts"
)

//go:generate mockgen -source=service.go -destination=mcp_mocks_test.go -package=mcp_test

// workoutsRepo provides stored workout queries (for dependency injection and testing).
type workoutsRepo interface {
	Recent(ctx context.Context, days int) []workouts.Workout
	ByType(ctx context.Context, workoutType string) []workouts.Workout
	Today(ctx context.Context) []workouts.Workout
	TodayDate() string
}

// summarizer provides workout aggregation (for dependency injection and testing).
type summarizer interface {
	Summary(ctx context.Context, days int) *workouts.Summary
}

// contextService provides workout context data for agent tools.
// Used by Handler for testability.
type contextService interface {
	GetWorkouts(ctx context.Context, days int, workoutType string) []workouts.Workout
	GetTodaysWorkouts(ctx context.Context) (date string, _ []workouts.Workout)
	GetSummary(ctx context.Context, days int) *workouts.Summary
}

// ContextService implements the workout context business logic over the store.
type ContextService struct {
	repo     workoutsRepo
	analyzer summarizer
}

func NewContextService(repo workoutsRepo, analyzer summarizer) *ContextService {
	return &ContextService{
		repo:     repo,
		analyzer: analyzer,
	}
}

// GetWorkouts returns recent workouts, or all workouts of the given
// type when a type filter is set (the filter overrides the day window).
func (s *ContextService) GetWorkouts(ctx context.Context, days int, workoutType string) []workouts.Workout {
	if workoutType != "" {
		return s.repo.ByType(ctx, workoutType)
	}
	return s.repo.Recent(ctx, days)
}

// GetTodaysWorkouts returns today's date and today's workouts.
func (s *ContextService) GetTodaysWorkouts(ctx context.Context) (string, []workouts.Workout) {
	return s.repo.TodayDate(), s.repo.Today(ctx)
}

// GetSummary returns the aggregated stats for the last N days.
func (s *ContextService) GetSummary(ctx context.Context, days int) *workouts.Summary {
	return s.analyzer.Summary(ctx, days)
}
