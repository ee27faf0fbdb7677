package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/mood-recall/internal/database"
	"github.com/sbilibin2017/mood-recall/internal/handlers"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/middlewares"
	"github.com/sbilibin2017/mood-recall/internal/navigation"
	"github.com/sbilibin2017/mood-recall/internal/repositories"
	"github.com/sbilibin2017/mood-recall/internal/services"
	"github.com/sbilibin2017/mood-recall/internal/session"
	"github.com/sbilibin2017/mood-recall/internal/state"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/mood-recall/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	appHost     string
	appPort     string
	logLevel    string
	timezone    string
	staticDir   string
	corsOrigins []string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey  string
	jwtExpSecond  int
	sessionSecret string
	sessionSecure bool

	submitGuardTTLSecond int
	stateIdleTTLSecond   int
}

// @title MoodRecall API
// @version 1.0.0
// @description Mood tracking service: daily mood entries, history, statistics, reminders and insights
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, session and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, s := range strings.Split(getEnv(key, defaultValue), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.timezone = getEnv("APP_TIMEZONE", "UTC")
	cfg.staticDir = getEnv("APP_STATIC_DIR", "static")
	cfg.corsOrigins = getList("APP_CORS_ORIGINS", "http://localhost:5173")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, publishing is off without brokers
	cfg.kafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "mood-entries")

	// JWT and session config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	cfg.sessionSecret = getEnv("SESSION_SECRET_KEY", "0123456789abcdef0123456789abcdef")
	if cfg.sessionSecure, err = strconv.ParseBool(getEnv("SESSION_SECURE", "false")); err != nil {
		err = fmt.Errorf("SESSION_SECURE: %w", err)
		return
	}

	if cfg.submitGuardTTLSecond, err = getInt("SUBMIT_GUARD_TTL_SECOND", "30"); err != nil {
		return
	}
	if cfg.stateIdleTTLSecond, err = getInt("STATE_IDLE_TTL_SECOND", "3600"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	loc, err := time.LoadLocation(cfg.timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.timezone, err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	if err := database.MigrateUp(dsn); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for entry events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("publishing entry events", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, entry events are not published")
	}

	// Session cookie and JWT
	jwtExp := time.Duration(cfg.jwtExpSecond) * time.Second
	sessions := session.New(session.NewCookieStore(cfg.sessionSecret, jwtExp, cfg.sessionSecure), "")
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(jwtExp),
		jwt.WithTokenFallback(sessions.Token),
	)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	entryReadRepo := repositories.NewMoodEntryReadRepository(db)
	entryWriteRepo := repositories.NewMoodEntryWriteRepository(db, middlewares.GetTxFromContext)
	insightReadRepo := repositories.NewInsightReadRepository(db)
	revocationRepo := repositories.NewTokenRevocationRepository(rdb)
	guardRepo := repositories.NewSubmissionGuardRepository(rdb, time.Duration(cfg.submitGuardTTLSecond)*time.Second)

	// Initialize services
	states := state.NewContainer(state.WithIdleTTL(time.Duration(cfg.stateIdleTTLSecond) * time.Second))
	go states.Run(ctx, time.Minute, func(removed int) {
		if removed > 0 {
			logger.Log.Infow("evicted idle session state", "count", removed)
		}
	})
	publisher := services.NewEventPublisher(kafkaWriter)

	authService := services.NewAuthService(
		accountReadRepo, accountWriteRepo,
		userReadRepo, userWriteRepo,
		tokens, revocationRepo, states,
	)
	entryService := services.NewEntryService(entryWriteRepo, entryReadRepo, guardRepo, publisher, states)
	statsService := services.NewStatsService(entryService, loc, time.Now)
	preferenceService := services.NewPreferenceService(userReadRepo, userWriteRepo, states)
	accountService := services.NewAccountService(userWriteRepo, accountWriteRepo, authService, middlewares.AfterCommit)
	insightService := services.NewInsightService(insightReadRepo)

	// Initialize handlers
	signUpHandler := handlers.NewSignUpHandler(authService, sessions)
	signInHandler := handlers.NewSignInHandler(authService, sessions)
	signOutHandler := handlers.NewSignOutHandler(authService, tokens, sessions)
	sessionHandler := handlers.NewSessionHandler(authService, tokens)
	createEntryHandler := handlers.NewCreateEntryHandler(entryService, tokens)
	listEntriesHandler := handlers.NewListEntriesHandler(statsService, tokens)
	submissionStateHandler := handlers.NewSubmissionStateHandler(entryService, tokens)
	statsHandler := handlers.NewProfileStatsHandler(statsService, tokens)
	getSettingsHandler := handlers.NewGetSettingsHandler(preferenceService, tokens)
	updateSettingHandler := handlers.NewUpdateSettingHandler(preferenceService, tokens)
	deleteAccountHandler := handlers.NewDeleteAccountHandler(accountService, tokens, sessions)
	insightsHandler := handlers.NewListInsightsHandler(insightService, tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.corsOrigins))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/sign-up", signUpHandler)
		r.Post("/auth/sign-in", signInHandler)
		r.Get("/navigation", navigation.NewMenuHandler())

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, revocationRepo))
			r.Get("/session", sessionHandler)
			r.Post("/auth/sign-out", signOutHandler)
			r.Post("/entries", createEntryHandler)
			r.Get("/entries", listEntriesHandler)
			r.Get("/entries/submission", submissionStateHandler)
			r.Get("/profile/stats", statsHandler)
			r.Get("/settings", getSettingsHandler)
			r.Patch("/settings", updateSettingHandler)
			r.Get("/insights", insightsHandler)
			r.With(middlewares.TxMiddleware(db)).Delete("/account", deleteAccountHandler)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	// Browser shell pages, unknown paths go home
	navigation.NewShell(cfg.staticDir).Register(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
