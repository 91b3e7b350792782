package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Directory   usecase.DoctorDirectoryUsecase
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	// Initialize Redis (optional response cache)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")
	} else {
		app.Log.Info("REDIS_HOST not set, response cache disabled")
	}

	// Initialize all layers
	app.Directory, app.Server = initializeServer(cfg, app.Log, app.RedisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, redisClient *redis.Client) (usecase.DoctorDirectoryUsecase, *http.Server) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	httpClient := &http.Client{Timeout: cfg.Source.Timeout}
	doctorRepo := repository.NewDoctorRepository(cfg.Source.URL, httpClient, log)

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo, cfg.App.SuggestionLimit)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	var cacheMiddleware *middleware.CacheMiddleware
	if redisClient != nil {
		responseCache := cache.NewRedisResponseCache(redisClient, "doctor-directory:http:")
		cacheMiddleware = middleware.NewCacheMiddleware(responseCache, directoryUsecase, cfg.Cache.TTL, log)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, directoryHandler, corsMiddleware, loggingMiddleware, cacheMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return directoryUsecase, &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server, loads the doctor directory and handles graceful shutdown
func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Initial fetch; a failure leaves the directory in the failed state
	// until a manual reload.
	go func() {
		app.Log.Infof("Fetching doctors from %s", app.Config.Source.URL)
		if err := app.Directory.Load(ctx); err != nil {
			app.Log.Errorf("Doctor directory unavailable: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown(cancel)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown(cancelLoad context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")
	cancelLoad()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
