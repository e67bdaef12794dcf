package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicare-plus/config"
	deliveryHttp "medicare-plus/internal/delivery/http"
	"medicare-plus/internal/delivery/http/handler"
	"medicare-plus/internal/delivery/http/middleware"
	domainRepo "medicare-plus/internal/domain/repository"
	"medicare-plus/internal/infrastructure/cache"
	"medicare-plus/internal/infrastructure/database"
	"medicare-plus/internal/repository"
	"medicare-plus/internal/service"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/jwt"
	"medicare-plus/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	locks   *service.SessionLockService
	sweeper *service.SessionSweeper
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Initialize Redis when a store needs it
	if cfg.Storage.SessionDriver == config.DriverRedis || cfg.Storage.ClientStorageDriver == config.DriverRedis {
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			return nil, err
		}
		app.RedisClient = redisClient
	}

	// Initialize database when client storage is durable
	if cfg.Storage.ClientStorageDriver == config.DriverPostgres {
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.TimeZone, app.Log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.DB = db
		if err := database.Migrate(db); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize all layers
	if err := app.initializeServer(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// newSessionRepository picks the booking session store. The in-memory store
// gets a sweeper since it does not expire entries by itself.
func (app *App) newSessionRepository() (domainRepo.BookingSessionRepository, error) {
	cfg := app.Config.Storage

	switch cfg.SessionDriver {
	case config.DriverRedis:
		return repository.NewRedisBookingSessionRepository(app.RedisClient, cfg.SessionTTL), nil
	case config.DriverMemory:
		repo := repository.NewMemoryBookingSessionRepository(cfg.SessionTTL)
		app.sweeper = service.NewSessionSweeper(repo, app.Log)
		if err := app.sweeper.Start(cfg.SweepSchedule); err != nil {
			return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.SessionDriver)
	}
}

func (app *App) newClientStorage() (domainRepo.ClientStorage, error) {
	switch driver := app.Config.Storage.ClientStorageDriver; driver {
	case config.DriverRedis:
		return repository.NewRedisClientStorage(app.RedisClient), nil
	case config.DriverPostgres:
		return repository.NewPostgresClientStorage(app.DB), nil
	case config.DriverMemory:
		return repository.NewMemoryClientStorage(), nil
	default:
		return nil, fmt.Errorf("unknown client storage driver %q", driver)
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() error {
	cfg := app.Config
	log := app.Log
	loc := cfg.App.Location()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Client)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	sessionRepo, err := app.newSessionRepository()
	if err != nil {
		return err
	}
	clientStorage, err := app.newClientStorage()
	if err != nil {
		return err
	}

	// Initialize services
	app.locks = service.NewSessionLockService(log)
	gateway := service.NewRandomGateway(cfg.Payment.SuccessRate, time.Now().UnixNano())
	dispatcher := service.NewPaymentDispatcher(cfg.Payment, gateway, service.SleepContext, customValidator)
	identifierService := service.NewReceiptIdentifierService(clientStorage, log)
	renderer := service.NewReceiptRenderer(cfg.Receipt)

	// Initialize usecases
	catalogUsecase := usecase.NewCatalogUsecase(log, loc, cfg.Receipt.VATRate)
	bookingUsecase := usecase.NewBookingUsecase(log, sessionRepo, app.locks, loc)
	paymentUsecase := usecase.NewPaymentUsecase(log, sessionRepo, app.locks, dispatcher, cfg.Payment.CompletionDelay, service.SleepContext)
	receiptUsecase := usecase.NewReceiptUsecase(log, sessionRepo, identifierService, renderer)
	careerUsecase := usecase.NewCareerUsecase(log)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase)
	receiptHandler := handler.NewReceiptHandler(receiptUsecase)
	careerHandler := handler.NewCareerHandler(careerUsecase, customValidator)

	// Initialize middleware
	clientMiddleware := middleware.NewClientMiddleware(jwtService, cfg.Client.CookieName, cfg.App.IsProduction(), log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(catalogHandler, bookingHandler, paymentHandler, receiptHandler, careerHandler, clientMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server. Payment requests block for the simulated processing
	// time, so the write timeout leaves room for the slowest method.
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout; in-flight payments need a few seconds
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background work and closes all connections
func (app *App) Close() {
	if app.sweeper != nil {
		app.sweeper.Stop()
	}

	if app.locks != nil {
		app.locks.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
