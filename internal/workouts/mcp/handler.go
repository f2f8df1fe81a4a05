package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vranjes/workoutsink/internal/telemetry/tracing"
	"github.com/vranjes/workoutsink/internal/workouts"
	"github.com/vranjes/workoutsink/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const defaultDays = 7

// Handler serves the workout tools on both surfaces: the REST-based
// discovery endpoints under /mcp and the MCP SDK tool handlers.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// Discovery is the static capability payload served at /mcp.
type Discovery struct {
	Name                  string           `json:"name"`
	Version               string           `json:"version"`
	Description           string           `json:"description"`
	Tools                 []ToolDescriptor `json:"tools"`
	SupportedWorkoutTypes []string         `json:"supported_workout_types"`
}

type ToolDescriptor struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]ToolParam `json:"parameters"`
}

type ToolParam struct {
	Type     string `json:"type"`
	Default  any    `json:"default,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

func DiscoveryPayload() Discovery {
	return Discovery{
		Name:        "workoutsink",
		Version:     "1.0.0",
		Description: "Apple HealthKit workout data ingested from iPhone/Apple Watch",
		Tools: []ToolDescriptor{
			{
				Name:        "get_workouts",
				Description: "Get workouts from the last N days, optionally filtered by type",
				Parameters: map[string]ToolParam{
					"days":         {Type: "integer", Default: defaultDays},
					"workout_type": {Type: "string", Optional: true},
				},
			},
			{
				Name:        "get_todays_workouts",
				Description: "Get all workouts logged today (Pacific time)",
				Parameters:  map[string]ToolParam{},
			},
			{
				Name:        "get_workout_summary",
				Description: "Get workout statistics and summary for N days",
				Parameters: map[string]ToolParam{
					"days": {Type: "integer", Default: defaultDays},
				},
			},
		},
		SupportedWorkoutTypes: workouts.SupportedWorkoutTypes,
	}
}

// toolResult wraps tool endpoint payloads the way agent clients expect.
type toolResult struct {
	Result any `json:"result"`
}

type workoutsResult struct {
	Workouts []workouts.Workout `json:"workouts"`
	Count    int                `json:"count"`
	Days     int                `json:"days"`
	Filter   *string            `json:"filter"`
}

type todaysWorkoutsResult struct {
	Date     string             `json:"date"`
	Workouts []workouts.Workout `json:"workouts"`
	Count    int                `json:"count"`
	Timezone string             `json:"timezone"`
}

type summaryResult struct {
	Summary *workouts.Summary `json:"summary"`
}

func (h *Handler) HandleDiscovery(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.mcp.discovery")
	defer span.End()

	writeJsonOrError(w, DiscoveryPayload())
}

func (h *Handler) HandleGetWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mcp.getWorkouts")
	defer span.End()

	days, err := daysParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workoutType := r.URL.Query().Get("workout_type")
	var filter *string
	if workoutType != "" {
		filter = &workoutType
	}
	list := h.service.GetWorkouts(ctx, days, workoutType)

	writeJsonOrError(w, toolResult{Result: workoutsResult{
		Workouts: workoutsOrEmpty(list),
		Count:    len(list),
		Days:     days,
		Filter:   filter,
	}})
}

func (h *Handler) HandleGetTodaysWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mcp.getTodaysWorkouts")
	defer span.End()

	date, list := h.service.GetTodaysWorkouts(ctx)
	writeJsonOrError(w, toolResult{Result: todaysWorkoutsResult{
		Date:     date,
		Workouts: workoutsOrEmpty(list),
		Count:    len(list),
		Timezone: workouts.DefaultTimezone,
	}})
}

func (h *Handler) HandleGetWorkoutSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mcp.getWorkoutSummary")
	defer span.End()

	days, err := daysParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJsonOrError(w, toolResult{Result: summaryResult{
		Summary: h.service.GetSummary(ctx, days),
	}})
}

// GetWorkoutsInput is the input for the get_workouts MCP tool.
type GetWorkoutsInput struct {
	Days        int    `json:"days,omitempty" jsonschema:"Number of days of history (default 7)"`
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"Filter by workout type (e.g. Running, Golf)"`
}

// GetWorkoutsTool returns the MCP tool handler for get_workouts.
func (h *Handler) GetWorkoutsTool() func(context.Context, *mcp.CallToolRequest, GetWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetWorkoutsInput) (*mcp.CallToolResult, any, error) {
		days := in.Days
		if days <= 0 {
			days = defaultDays
		}
		list := h.service.GetWorkouts(ctx, days, in.WorkoutType)
		return jsonToolResult(list)
	}
}

// GetTodaysWorkoutsTool returns the MCP tool handler for get_todays_workouts.
func (h *Handler) GetTodaysWorkoutsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		date, list := h.service.GetTodaysWorkouts(ctx)
		return jsonToolResult(todaysWorkoutsResult{
			Date:     date,
			Workouts: workoutsOrEmpty(list),
			Count:    len(list),
			Timezone: workouts.DefaultTimezone,
		})
	}
}

// GetWorkoutSummaryInput is the input for the get_workout_summary MCP tool.
type GetWorkoutSummaryInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of days for the summary (default 7)"`
}

// GetWorkoutSummaryTool returns the MCP tool handler for get_workout_summary.
func (h *Handler) GetWorkoutSummaryTool() func(context.Context, *mcp.CallToolRequest, GetWorkoutSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetWorkoutSummaryInput) (*mcp.CallToolResult, any, error) {
		days := in.Days
		if days <= 0 {
			days = defaultDays
		}
		return jsonToolResult(h.service.GetSummary(ctx, days))
	}
}

func jsonToolResult(payload any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
			IsError: true,
		}, nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func daysParam(r *http.Request) (int, error) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return defaultDays, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return 0, fmt.Errorf("error, days NaN: %s", daysStr)
	}
	// same bounds as the /data endpoints
	if days < 1 || days > 365 {
		return 0, errors.New("days must be between 1 and 365")
	}
	return days, nil
}

func workoutsOrEmpty(list []workouts.Workout) []workouts.Workout {
	if list == nil {
		return []workouts.Workout{}
	}
	return list
}

func writeJsonOrError(w http.ResponseWriter, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal mcp response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
