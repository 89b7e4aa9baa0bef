package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/cache"
	"github.com/2beens/liftlog/internal/config"
	"github.com/2beens/liftlog/internal/db"
	"github.com/2beens/liftlog/internal/middleware"
	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/program"
	"github.com/2beens/liftlog/internal/reactions"
	"github.com/2beens/liftlog/internal/social"
	"github.com/2beens/liftlog/internal/store"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"
)

// dayPlanCacheSizeMB is the size of the freecache holding computed day plans.
const dayPlanCacheSizeMB = 8

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	localStore  *store.LocalStore
	program     *program.Program

	loginChecker *auth.LoginChecker
	authService  *auth.Service
	usersRepo    *auth.UsersRepo

	mirror          *store.Mirror
	milestonesRepo  *milestones.Repo
	publisher       *milestones.Publisher
	workoutsService *workouts.Service
	socialService   *social.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	prog, err := program.Load(cfg.ProgramTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("load program template: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		// the mirror serves reads from the local store while postgres is down
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("liftlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftlog", rdb)
	if err != nil {
		return nil, err
	}

	localStore, err := store.NewLocalStore(cfg.LocalStorePath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	mirror := store.NewMirror(localStore, store.NewPsqlStore(dbPool), metricsManager)

	milestonesRepo := milestones.NewRepo(dbPool)
	publisher := milestones.NewPublisher(
		milestones.NewDetector(mirror, milestonesRepo),
		metricsManager,
		milestones.PublisherParams{
			QueueSize: cfg.MilestoneQueueSize,
			Workers:   cfg.MilestoneWorkers,
		},
	)
	go func() {
		for err := range publisher.Errors() {
			log.Errorf("milestone detection: %s", err)
		}
	}()

	var engine *reactions.Engine
	if cfg.ReactionsSeed != 0 {
		engine = reactions.NewSeededEngine(reactions.DefaultCatalog(), cfg.ReactionsSeed)
	} else {
		engine = reactions.NewEngine(reactions.DefaultCatalog(), nil)
	}

	workoutsService := workouts.NewService(mirror, engine, publisher, metricsManager)
	usersRepo := auth.NewUsersRepo(dbPool)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		localStore:  localStore,
		program:     prog,

		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		usersRepo:    usersRepo,

		mirror:          mirror,
		milestonesRepo:  milestonesRepo,
		publisher:       publisher,
		workoutsService: workoutsService,
		socialService: social.NewService(social.ServiceParams{
			Repo:         social.NewRepo(dbPool),
			Users:        usersRepo,
			Settings:     workoutsService,
			Milestones:   milestonesRepo,
			NudgeLimiter: redis_rate.NewLimiter(rdb),
			NudgesPerDay: cfg.NudgesPerDay,
		}),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftlog-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	programHandler := program.NewHandler(s.program, s.workoutsService, cache.NewFreeCache(dayPlanCacheSizeMB))
	r.HandleFunc("/program", programHandler.HandleGetProgram).Methods("GET", "OPTIONS").Name("program")
	r.HandleFunc("/program/e1rm", programHandler.HandleE1RM).Methods("GET", "OPTIONS").Name("e1rm")
	r.HandleFunc("/program/week/{week}/day/{day}", programHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("program-day")

	authHandler := auth.NewHandler(s.usersRepo, s.authService, s.mirror)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/register", authHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	authRouter.Use(middleware.RateLimit(reqRateLimiter, "auth", s.config.LoginRateLimitAllowedPerMin, s.metricsManager))

	workoutsHandler := workouts.NewHandler(s.workoutsService)
	r.HandleFunc("/settings", workoutsHandler.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/settings", workoutsHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-settings")
	r.HandleFunc("/workouts", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/week/{week}/day/{day}", workoutsHandler.HandleListByWeekDay).Methods("GET", "OPTIONS").Name("list-workouts-day")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/complete", workoutsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")

	milestonesHandler := milestones.NewHandler(s.milestonesRepo)
	socialHandler := social.NewHandler(s.socialService)
	r.HandleFunc("/milestones", milestonesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-milestones")
	r.HandleFunc("/milestones/feed", socialHandler.HandleFeed).Methods("GET", "OPTIONS").Name("feed")
	r.HandleFunc("/milestones/{id}/celebrate", socialHandler.HandleCelebrate).Methods("POST", "OPTIONS").Name("celebrate")

	r.HandleFunc("/friends", socialHandler.HandleListFriends).Methods("GET", "OPTIONS").Name("list-friends")
	r.HandleFunc("/friends/{id}", socialHandler.HandleRemoveFriend).Methods("DELETE", "OPTIONS").Name("remove-friend")
	r.HandleFunc("/friends/requests", socialHandler.HandleSendFriendRequest).Methods("POST", "OPTIONS").Name("friend-request")
	r.HandleFunc("/friends/requests", socialHandler.HandleListFriendRequests).Methods("GET", "OPTIONS").Name("list-friend-requests")
	r.HandleFunc("/friends/requests/{id}/accept", socialHandler.HandleAcceptFriendRequest).Methods("POST", "OPTIONS").Name("accept-friend-request")
	r.HandleFunc("/friends/requests/{id}/decline", socialHandler.HandleDeclineFriendRequest).Methods("POST", "OPTIONS").Name("decline-friend-request")

	nudgesRateLimit := middleware.RateLimit(reqRateLimiter, "nudges", s.config.NudgeRateLimitAllowedPerMin, s.metricsManager)
	r.Handle("/nudges", nudgesRateLimit(http.HandlerFunc(socialHandler.HandleSendNudge))).Methods("POST", "OPTIONS").Name("send-nudge")
	r.HandleFunc("/nudges", socialHandler.HandleListNudges).Methods("GET", "OPTIONS").Name("list-nudges")
	r.HandleFunc("/nudges/{id}/seen", socialHandler.HandleNudgeSeen).Methods("POST", "OPTIONS").Name("nudge-seen")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, so no new milestone jobs arrive
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.publisher != nil {
		log.Debugln("draining milestone queue ...")
		s.publisher.Stop()
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.localStore != nil {
		if err := s.localStore.Close(); err != nil {
			log.Errorf("failed to close local store: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
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
