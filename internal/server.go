package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vranjes/workoutsink/internal/config"
	"github.com/vranjes/workoutsink/internal/middleware"
	"github.com/vranjes/workoutsink/internal/misc"
	"github.com/vranjes/workoutsink/internal/telemetry/metrics"
	"github.com/vranjes/workoutsink/internal/telemetry/tracing"
	"github.com/vranjes/workoutsink/internal/workouts"
	workoutsmcp "github.com/vranjes/workoutsink/internal/workouts/mcp"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiSecret         string // shared with the phone automation client
	versionInfo       string

	config   *config.Config
	store    *workouts.Store
	analyzer *workouts.Analyzer

	redisClient *redis.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	APISecret               string
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("workoutsink", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook())

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workoutsink")
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", params.Config.Timezone, err)
	}

	store := workouts.NewStore(workouts.NewStoreParams{
		FilePath: params.Config.WorkoutsStoragePath,
		Location: location,
		Metrics:  metricsManager,
	})

	return &Server{
		config:      params.Config,
		apiSecret:   params.APISecret,
		versionInfo: params.VersionInfo,

		store:    store,
		analyzer: workouts.NewAnalyzer(store),

		redisClient: rdb,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	workoutsHandler := workouts.NewHandler(s.store, s.analyzer)

	// rate limit ingest to curb misbehaving phone automations
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	ingestRouter := r.PathPrefix("/ingest").Subrouter()
	ingestRouter.
		HandleFunc("/workout", workoutsHandler.HandleIngestWorkout).
		Methods("POST", "OPTIONS").Name("ingest-workout")
	ingestRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"ingest",
		s.config.IngestRateLimitAllowedPerMin,
		s.metricsManager,
	))

	dataRouter := r.PathPrefix("/data").Subrouter()
	dataRouter.HandleFunc("/workouts", workoutsHandler.HandleGetWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	dataRouter.HandleFunc("/workouts", workoutsHandler.HandleClearWorkouts).Methods("DELETE", "OPTIONS").Name("clear-workouts")
	dataRouter.HandleFunc("/workouts/today", workoutsHandler.HandleGetTodaysWorkouts).Methods("GET", "OPTIONS").Name("todays-workouts")
	dataRouter.HandleFunc("/workouts/summary", workoutsHandler.HandleGetSummary).Methods("GET", "OPTIONS").Name("workouts-summary")
	dataRouter.HandleFunc("/workouts/date/{date}", workoutsHandler.HandleGetWorkoutsByDate).Methods("GET", "OPTIONS").Name("workouts-by-date")
	dataRouter.HandleFunc("/workouts/type/{workout_type}", workoutsHandler.HandleGetWorkoutsByType).Methods("GET", "OPTIONS").Name("workouts-by-type")
	dataRouter.HandleFunc("/stats", workoutsHandler.HandleGetStats).Methods("GET", "OPTIONS").Name("stats")

	mcpHandler := workoutsmcp.NewHandler(
		workoutsmcp.NewContextService(s.store, s.analyzer),
	)
	mcpRouter := r.PathPrefix("/mcp").Subrouter()
	mcpRouter.HandleFunc("", mcpHandler.HandleDiscovery).Methods("GET", "OPTIONS").Name("mcp-discovery")
	mcpRouter.HandleFunc("/", mcpHandler.HandleDiscovery).Methods("GET", "OPTIONS")
	mcpRouter.HandleFunc("/tools/get_workouts", mcpHandler.HandleGetWorkouts).Methods("GET", "OPTIONS").Name("mcp-get-workouts")
	mcpRouter.HandleFunc("/tools/get_todays_workouts", mcpHandler.HandleGetTodaysWorkouts).Methods("GET", "OPTIONS").Name("mcp-todays-workouts")
	mcpRouter.HandleFunc("/tools/get_workout_summary", mcpHandler.HandleGetWorkoutSummary).Methods("GET", "OPTIONS").Name("mcp-workout-summary")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error
	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	}

	if shutdownErr != nil {
		log.Errorf(" >>> shutdown errors: %s", shutdownErr)
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
