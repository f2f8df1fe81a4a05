package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vranjes/workoutsink/internal/telemetry/metrics"
	"github.com/vranjes/workoutsink/internal/telemetry/tracing"
	"github.com/vranjes/workoutsink/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Store keeps all workout records in memory, keyed for deduplication,
// and mirrors every mutation to a JSON file. The file is best effort:
// a failed write degrades the store to memory-only, the error is kept
// around so /data/stats can surface it.
type Store struct {
	filePath string
	location *time.Location
	now      func() time.Time
	metrics  *metrics.Manager

	mutex          sync.RWMutex
	workouts       map[Key]Workout
	lastPersistErr error

	// saveMutex serializes snapshot+write in persist. Without it a slow
	// earlier writer could finish last and leave a stale file behind.
	saveMutex sync.Mutex
}

type NewStoreParams struct {
	FilePath string
	Location *time.Location
	// Now is used for ingest timestamps and date cutoffs; defaults to time.Now
	Now     func() time.Time
	Metrics *metrics.Manager
}

func NewStore(params NewStoreParams) *Store {
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.Location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			log.Errorf("workouts store: load location %s: %s, falling back to UTC", DefaultTimezone, err)
			loc = time.UTC
		}
		params.Location = loc
	}

	s := &Store{
		filePath: params.FilePath,
		location: params.Location,
		now:      params.Now,
		metrics:  params.Metrics,
		workouts: make(map[Key]Workout),
	}
	s.loadFromFile()
	s.updateStoredGauge()

	return s
}

// Add upserts a workout record, last write wins. Returns true when the
// record was not seen before. The source device and the ingest timestamp
// are assigned here, clients cannot set them.
func (s *Store) Add(ctx context.Context, workout Workout) (isNew bool) {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.add")
	defer span.End()

	if workout.Source == "" {
		workout.Source = DefaultSource
	}
	workout.IngestedAt = s.now().In(s.location).Format(time.RFC3339)
	workout.startTime = parseStart(workout.Start)

	s.mutex.Lock()
	_, exists := s.workouts[workout.Key()]
	s.workouts[workout.Key()] = workout
	s.mutex.Unlock()

	span.SetAttributes(attribute.Bool("workout.is_new", !exists))

	if s.metrics != nil {
		s.metrics.CounterIngestedWorkouts.Inc()
		if exists {
			s.metrics.CounterDuplicateWorkouts.Inc()
		}
	}
	s.updateStoredGauge()

	s.persist(ctx)
	return !exists
}

// All returns every stored workout, most recent first.
func (s *Store) All(ctx context.Context) []Workout {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.all")
	defer span.End()

	all := s.snapshot()
	sort.Slice(all, func(i, j int) bool {
		return startsBefore(all[j], all[i])
	})
	return all
}

// ByDate returns workouts whose start begins with the given
// YYYY-MM-DD date, in chronological order.
func (s *Store) ByDate(ctx context.Context, date string) []Workout {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.byDate")
	defer span.End()

	var result []Workout
	for _, w := range s.snapshot() {
		if strings.HasPrefix(w.Start, date) {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return startsBefore(result[i], result[j])
	})
	return result
}

// ByType returns all workouts of the given type, case-insensitive,
// most recent first.
func (s *Store) ByType(ctx context.Context, workoutType string) []Workout {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.byType")
	defer span.End()

	var result []Workout
	for _, w := range s.snapshot() {
		if strings.EqualFold(w.Type, workoutType) {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return startsBefore(result[j], result[i])
	})
	return result
}

// Recent returns workouts from the last N days, most recent first.
// The cutoff compares the YYYY-MM-DD portion of the start string, so a
// record whose start is too short to carry a date never qualifies.
func (s *Store) Recent(ctx context.Context, days int) []Workout {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.recent")
	defer span.End()
	span.SetAttributes(attribute.Int("days", days))

	cutoff := s.now().In(s.location).AddDate(0, 0, -days).Format(time.DateOnly)

	var result []Workout
	for _, w := range s.snapshot() {
		if w.datePortion() >= cutoff && w.datePortion() != "" {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return startsBefore(result[j], result[i])
	})
	return result
}

// Today returns workouts whose start falls on today's date in the
// store timezone, in chronological order.
func (s *Store) Today(ctx context.Context) []Workout {
	return s.ByDate(ctx, s.TodayDate())
}

// TodayDate returns today's YYYY-MM-DD date in the store timezone.
func (s *Store) TodayDate() string {
	return s.now().In(s.location).Format(time.DateOnly)
}

// Now returns the current time in the store timezone.
func (s *Store) Now() time.Time {
	return s.now().In(s.location)
}

func (s *Store) Count(ctx context.Context) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.workouts)
}

// Clear drops every stored workout and persists the empty set.
// Returns the number of records that were dropped.
func (s *Store) Clear(ctx context.Context) int {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.clear")
	defer span.End()

	s.mutex.Lock()
	count := len(s.workouts)
	s.workouts = make(map[Key]Workout)
	s.mutex.Unlock()

	s.updateStoredGauge()
	s.persist(ctx)
	return count
}

// LastPersistenceError reports the most recent file save/load failure,
// or empty when persistence is healthy.
func (s *Store) LastPersistenceError() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.lastPersistErr == nil {
		return ""
	}
	return s.lastPersistErr.Error()
}

func (s *Store) snapshot() []Workout {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	all := make([]Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		all = append(all, w)
	}
	return all
}

func (s *Store) updateStoredGauge() {
	if s.metrics == nil {
		return
	}
	s.mutex.RLock()
	size := len(s.workouts)
	s.mutex.RUnlock()
	s.metrics.GaugeStoredWorkouts.Set(float64(size))
}

// persist writes the full record set to the storage file. Failures are
// swallowed on purpose, the service keeps serving from memory.
func (s *Store) persist(ctx context.Context) {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.persist")
	startedAt := time.Now()

	// the snapshot is taken under saveMutex too, so the writer that
	// finishes last always wrote the freshest state
	s.saveMutex.Lock()
	err := s.saveToFile()
	s.saveMutex.Unlock()

	if s.metrics != nil {
		s.metrics.HistStoreSaveDuration.Observe(time.Since(startedAt).Seconds())
		if err != nil {
			s.metrics.CounterStoreSaveErrors.Inc()
		}
	}

	s.mutex.Lock()
	s.lastPersistErr = err
	s.mutex.Unlock()

	if err != nil {
		log.Warnf("could not save workouts to %s: %s", s.filePath, err)
	}
	tracing.EndSpanWithErrCheck(span, err)
}

func (s *Store) saveToFile() error {
	all := s.snapshot()
	sort.Slice(all, func(i, j int) bool {
		return startsBefore(all[j], all[i])
	})

	workoutsJson, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}

	dst, err := os.Create(s.filePath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, bytes.NewReader(workoutsJson)); err != nil {
		return err
	}
	return nil
}

func (s *Store) loadFromFile() {
	exists, err := pkg.PathExists(s.filePath, false)
	if err != nil {
		log.Warnf("could not check workouts file %s: %s", s.filePath, err)
		s.lastPersistErr = err
		return
	}
	if !exists {
		log.Debugf("workouts file %s does not exist, starting empty", s.filePath)
		return
	}

	workoutsJson, err := os.ReadFile(s.filePath)
	if err != nil {
		log.Warnf("could not load workouts from %s: %s", s.filePath, err)
		s.lastPersistErr = err
		return
	}

	var loaded []Workout
	if err := json.Unmarshal(workoutsJson, &loaded); err != nil {
		log.Warnf("could not parse workouts from %s: %s", s.filePath, err)
		s.lastPersistErr = err
		return
	}

	// duplicate keys in the file collapse here, last one wins
	for _, w := range loaded {
		w.startTime = parseStart(w.Start)
		s.workouts[w.Key()] = w
	}
	log.Infof("loaded %d workouts from %s", len(s.workouts), s.filePath)
}
