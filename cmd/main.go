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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/club-polls/docs"
	"github.com/sbilibin2017/club-polls/internal/db"
	"github.com/sbilibin2017/club-polls/internal/handlers"
	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/middlewares"
	"github.com/sbilibin2017/club-polls/internal/repositories"
	"github.com/sbilibin2017/club-polls/internal/router"
	"github.com/sbilibin2017/club-polls/internal/services"
	"github.com/sbilibin2017/club-polls/internal/templates"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title club-polls API
// @version 1.0.0
// @description Tennis club members and polls applications
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	appHost  string
	appPort  string
	logLevel string

	dbDriver       string
	dbDSN          string
	dbMaxOpenConns int
	dbMaxIdleConns int
	dbCreateSchema bool

	pgHost     string
	pgPort     int
	pgUser     string
	pgPassword string
	pgDB       string

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	cacheTTL      time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	corsAllowedOrigins []string
}

// dsn returns DB_DSN when set, otherwise the PostgreSQL DSN built from its parts.
func (c config) dsn() string {
	if c.dbDSN != "" {
		return c.dbDSN
	}
	return db.PostgresDSN(c.pgHost, c.pgPort, c.pgUser, c.pgPassword, c.pgDB)
}

// parseConfig loads environment variables from a file and returns
// the application, database, cache, broker, and HTTP configuration.
// Variables already present in the environment win over the file, even when empty.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	splitList := func(val string) []string {
		var out []string
		for _, item := range strings.Split(val, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	cfg.dbDriver = getEnv("DB_DRIVER", db.DriverPostgres)
	cfg.dbDSN = getEnv("DB_DSN", "")
	if cfg.dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	if cfg.dbCreateSchema, err = strconv.ParseBool(getEnv("DB_CREATE_SCHEMA", "false")); err != nil {
		return
	}
	if cfg.dbDriver == db.DriverSQLite && cfg.dbDSN == "" {
		err = fmt.Errorf("DB_DSN is required for driver %q", cfg.dbDriver)
		return
	}

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	var ttl int
	if ttl, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "30")); err != nil {
		return
	}
	cfg.cacheTTL = time.Duration(ttl) * time.Second

	// Kafka config
	cfg.kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "poll-votes")

	// HTTP config
	cfg.corsAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// It wires both applications into one router and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to the database
	log.Infow("Connecting to database", "driver", cfg.dbDriver)
	conn, err := db.Connect(ctx, cfg.dbDriver, cfg.dsn(), cfg.dbMaxOpenConns, cfg.dbMaxIdleConns)
	if err != nil {
		return err
	}
	defer conn.Close()

	if cfg.dbCreateSchema {
		if err := db.CreateSchema(ctx, conn); err != nil {
			return err
		}
		log.Info("Database schema ensured")
	}

	// Connect to Redis
	var questionCache services.QuestionCache
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		questionCache = repositories.NewQuestionCacheRepository(rdb, cfg.cacheTTL)
		log.Infow("Latest questions cache enabled", "ttl", cfg.cacheTTL)
	}

	// Kafka writer for vote intents
	var voteWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		voteWriter = w
		log.Infow("Vote intent publishing enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize repositories
	memberRepo := repositories.NewMemberReadRepository(conn)
	questionRepo := repositories.NewQuestionReadRepository(conn)

	// Initialize services
	memberService := services.NewMemberService(memberRepo)
	pollService := services.NewPollService(questionRepo, questionCache, voteWriter)

	// Initialize templates
	renderer, err := templates.New()
	if err != nil {
		return err
	}

	// Setup router
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)
	r := router.New(router.Handlers{
		Main:            handlers.NewMainHandler(renderer),
		Members:         handlers.NewMembersHandler(memberService, renderer),
		MemberDetails:   handlers.NewMemberDetailsHandler(memberService, renderer),
		Testing:         handlers.NewTestingHandler(memberService, renderer),
		PollsIndex:      handlers.NewPollsIndexHandler(pollService),
		QuestionDetail:  handlers.NewQuestionDetailHandler(),
		QuestionResults: handlers.NewQuestionResultsHandler(),
		Vote:            handlers.NewVoteHandler(pollService),
	}, router.Options{
		DB:             conn,
		Log:            log,
		Metrics:        middlewares.NewMetrics(),
		AllowedOrigins: cfg.corsAllowedOrigins,
		SwaggerURL:     fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
