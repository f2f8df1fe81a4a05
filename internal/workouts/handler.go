package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vranjes/workoutsink/internal/telemetry/tracing"
	"github.com/vranjes/workoutsink/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsStore interface {
	Add(ctx context.Context, workout Workout) (isNew bool)
	ByDate(ctx context.Context, date string) []Workout
	ByType(ctx context.Context, workoutType string) []Workout
	Recent(ctx context.Context, days int) []Workout
	Today(ctx context.Context) []Workout
	TodayDate() string
	Now() time.Time
	Count(ctx context.Context) int
	Clear(ctx context.Context) int
	LastPersistenceError() string
}

const storageTypeDescription = "in-memory with file persistence"

var errInvalidDays = errors.New("days must be between 1 and 365")

type IngestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	IsNew   bool   `json:"is_new"`
	Total   int    `json:"total"`
}

type ListResponse struct {
	Status   string    `json:"status"`
	Workouts []Workout `json:"workouts"`
	Count    int       `json:"count"`
	Days     int       `json:"days"`
	Filter   *string   `json:"filter"`
}

type TodayResponse struct {
	Status   string    `json:"status"`
	Date     string    `json:"date"`
	Workouts []Workout `json:"workouts"`
	Count    int       `json:"count"`
	Timezone string    `json:"timezone"`
}

type ByDateResponse struct {
	Status   string    `json:"status"`
	Date     string    `json:"date"`
	Workouts []Workout `json:"workouts"`
	Count    int       `json:"count"`
}

type ByTypeResponse struct {
	Status      string    `json:"status"`
	WorkoutType string    `json:"workout_type"`
	Workouts    []Workout `json:"workouts"`
	Count       int       `json:"count"`
}

type SummaryResponse struct {
	Status      string   `json:"status"`
	Summary     *Summary `json:"summary"`
	GeneratedAt string   `json:"generated_at"`
	Timezone    string   `json:"timezone"`
}

type StatsResponse struct {
	Status               string `json:"status"`
	TotalWorkoutsStored  int    `json:"total_workouts_stored"`
	StorageType          string `json:"storage_type"`
	PersistenceHealthy   bool   `json:"persistence_healthy"`
	LastPersistenceError string `json:"last_persistence_error,omitempty"`
}

type ClearResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ingestRequest carries the canonical payload keys plus the retired
// schema's keys, so a client still sending the old shape gets an
// explicit rejection instead of a silently empty record.
type ingestRequest struct {
	Workout
	LegacyType  string `json:"workout_type"`
	LegacyStart string `json:"start_date"`
}

type Handler struct {
	store    workoutsStore
	analyzer *Analyzer
}

func NewHandler(store workoutsStore, analyzer *Analyzer) *Handler {
	return &Handler{
		store:    store,
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleIngestWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.ingest")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("ingest workout, unmarshal json params: %s", err)
		http.Error(w, "ingest workout failed", http.StatusBadRequest)
		return
	}

	if req.Type == "" && req.LegacyType != "" {
		http.Error(
			w,
			"legacy payload schema not accepted: send 'type', 'start' and 'end' instead of 'workout_type', 'start_date' and 'end_date'",
			http.StatusBadRequest,
		)
		return
	}
	if req.Type == "" || req.Start == "" {
		http.Error(w, "error, workout type and start required", http.StatusBadRequest)
		return
	}

	isNew := handler.store.Add(ctx, req.Workout)

	resp := IngestResponse{
		Status:  "success",
		Message: fmt.Sprintf("Workout '%s' ingested successfully", req.Type),
		IsNew:   isNew,
		Total:   handler.store.Count(ctx),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal ingest response: %s", err)
		http.Error(w, "error, failed to ingest workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout ingested: %s [%s], new: %t", req.Type, req.Start, isNew)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGetWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	days, err := daysParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var workouts []Workout
	var filter *string
	if workoutType := r.URL.Query().Get("workout_type"); workoutType != "" {
		workouts = handler.store.ByType(ctx, workoutType)
		filter = &workoutType
	} else {
		workouts = handler.store.Recent(ctx, days)
	}

	writeJsonOrError(w, ListResponse{
		Status:   "ok",
		Workouts: workoutsOrEmpty(workouts),
		Count:    len(workouts),
		Days:     days,
		Filter:   filter,
	})
}

func (handler *Handler) HandleGetTodaysWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.today")
	defer span.End()

	workouts := handler.store.Today(ctx)
	writeJsonOrError(w, TodayResponse{
		Status:   "ok",
		Date:     handler.store.TodayDate(),
		Workouts: workoutsOrEmpty(workouts),
		Count:    len(workouts),
		Timezone: DefaultTimezone,
	})
}

func (handler *Handler) HandleGetWorkoutsByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.byDate")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if date == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	workouts := handler.store.ByDate(ctx, date)
	writeJsonOrError(w, ByDateResponse{
		Status:   "ok",
		Date:     date,
		Workouts: workoutsOrEmpty(workouts),
		Count:    len(workouts),
	})
}

func (handler *Handler) HandleGetWorkoutsByType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.byType")
	defer span.End()

	vars := mux.Vars(r)
	workoutType := vars["workout_type"]
	if workoutType == "" {
		http.Error(w, "error, workout type empty", http.StatusBadRequest)
		return
	}

	workouts := handler.store.ByType(ctx, workoutType)
	writeJsonOrError(w, ByTypeResponse{
		Status:      "ok",
		WorkoutType: workoutType,
		Workouts:    workoutsOrEmpty(workouts),
		Count:       len(workouts),
	})
}

func (handler *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.summary")
	defer span.End()

	days, err := daysParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJsonOrError(w, SummaryResponse{
		Status:      "ok",
		Summary:     handler.analyzer.Summary(ctx, days),
		GeneratedAt: handler.store.Now().Format(time.RFC3339),
		Timezone:    DefaultTimezone,
	})
}

func (handler *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	lastPersistErr := handler.store.LastPersistenceError()
	writeJsonOrError(w, StatsResponse{
		Status:               "ok",
		TotalWorkoutsStored:  handler.store.Count(ctx),
		StorageType:          storageTypeDescription,
		PersistenceHealthy:   lastPersistErr == "",
		LastPersistenceError: lastPersistErr,
	})
}

func (handler *Handler) HandleClearWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.clear")
	defer span.End()

	count := handler.store.Clear(ctx)
	log.Warnf("cleared %d workouts", count)

	writeJsonOrError(w, ClearResponse{
		Status:  "success",
		Message: fmt.Sprintf("Cleared %d workouts", count),
	})
}

func daysParam(r *http.Request) (int, error) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return 7, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return 0, fmt.Errorf("error, days NaN: %s", daysStr)
	}
	if days < 1 || days > 365 {
		return 0, errInvalidDays
	}
	return days, nil
}

// workoutsOrEmpty keeps the workouts array in responses a JSON array
// instead of null when there are no results.
func workoutsOrEmpty(workouts []Workout) []Workout {
	if workouts == nil {
		return []Workout{}
	}
	return workouts
}

func writeJsonOrError(w http.ResponseWriter, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
