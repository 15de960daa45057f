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
	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/loglit-app/loglit/internal/facades"
	"github.com/loglit-app/loglit/internal/handlers"
	"github.com/loglit-app/loglit/internal/jwt"
	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/middlewares"
	"github.com/loglit-app/loglit/internal/repositories"
	"github.com/loglit-app/loglit/internal/services"
	"github.com/loglit-app/loglit/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/loglit-app/loglit/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title LogLit API
// @version 1.0.0
// @description Reading-log social service: accounts, friendships, book libraries and recommendations
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, searchCacheTTL,
		kafkaBrokers, kafkaTopic,
		booksAPIKey, genAIKey, genAIModel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, searchCacheTTL,
		kafkaBrokers, kafkaTopic,
		booksAPIKey, genAIKey, genAIModel,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, external API and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, searchCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	booksAPIKey, genAIKey, genAIModel string,
	jwtSecretKey string, jwtExp time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "postgres")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "readinglog")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	searchCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config (optional; empty brokers disable event publishing)
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_ACTIVITY_TOPIC", "loglit-activity")

	// External API config
	booksAPIKey = getEnv("GOOGLE_BOOKS_API_KEY", "")
	genAIKey = getEnv("GEMINI_API_KEY", "")
	genAIModel = getEnv("GEMINI_MODEL", "gemini-2.5-flash")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	jwtExp = time.Duration(jwtExpSecond) * time.Second

	return
}

// runMigrations applies the SQL migrations shipped with the service.
func runMigrations(db *sqlx.DB) error {
	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "pgx5", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, searchCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	booksAPIKey, genAIKey, genAIModel string,
	jwtSecretKey string, jwtExp time.Duration,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := runMigrations(db); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}
	logger.Log.Info("Database migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for activity events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, jwtExp)

	// Initialize transaction runner and repositories
	runner := tx.NewDBRunner(db)
	userRepo := repositories.NewUserRepository(runner, nil)
	libraryRepo := repositories.NewLibraryRepository(runner)
	searchCache := repositories.NewSearchCacheRepository(rdb, searchCacheTTL)

	// Outbound facades
	booksFacade := facades.NewGoogleBooksFacade("", booksAPIKey)
	genAIFacade := facades.NewGenAIFacade("", genAIKey, genAIModel)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, jwtSvc)
	userService := services.NewUserService(userRepo, kafkaWriter)
	libraryService := services.NewLibraryService(libraryRepo, kafkaWriter)
	searchService := services.NewSearchService(booksFacade, searchCache)
	recommendService := services.NewRecommendationService(libraryRepo, booksFacade, genAIFacade)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService, jwtExp))
		r.Get("/users/{username}", handlers.NewProfileHandler(userService))
		r.Get("/users/{username}/followers", handlers.NewFollowersHandler(userService))
		r.Get("/users/{username}/following", handlers.NewFollowingHandler(userService))
		r.Get("/users/{username}/books", handlers.NewLibraryListHandler(libraryService))
		r.Get("/search", handlers.NewSearchHandler(searchService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Put("/user/username", handlers.NewRenameHandler(userService))
			r.Put("/user/description", handlers.NewDescriptionHandler(userService))
			r.Delete("/user", handlers.NewDeleteAccountHandler(userService))
			r.Post("/user/friends", handlers.NewFollowHandler(userService))
			r.Delete("/user/friends/{username}", handlers.NewUnfollowHandler(userService))
			r.Post("/books", handlers.NewLibraryAddHandler(libraryService))
			r.Delete("/books/{bookID}", handlers.NewLibraryRemoveHandler(libraryService))
			r.Post("/recommendation", handlers.NewRecommendHandler(recommendService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
