package mcp

import (
	"github.com/vranjes/workoutsink/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the workout tools: recent workouts,
// today's workouts, and the summary. The same tools are also reachable over
// the REST discovery surface at /mcp (internal/server), so agents can use
// either transport.
func NewServer(store *workouts.Store, analyzer *workouts.Analyzer) *mcp.Server {
	svc := NewContextService(store, analyzer)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "workoutsink",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts",
		Description: "Returns workouts from the last N days (default 7), most recent first. Optional filter: workout_type (e.g. Running, Golf); when set, all workouts of that type are returned regardless of the day window.",
	}, h.GetWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_todays_workouts",
		Description: "Returns all workouts logged today (Pacific time), with the date and timezone.",
	}, h.GetTodaysWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_summary",
		Description: "Returns workout stats for the last N days (default 7): totals, per-type buckets and a per-date breakdown.",
	}, h.GetWorkoutSummaryTool())

	return s
}
