package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-api/config"
	deliveryHttp "clinica-api/internal/delivery/http"
	"clinica-api/internal/delivery/http/handler"
	"clinica-api/internal/delivery/http/middleware"
	"clinica-api/internal/infrastructure/cache"
	"clinica-api/internal/infrastructure/database"
	"clinica-api/internal/repository"
	"clinica-api/internal/service"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/jwt"
	"clinica-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
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

	SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHTTPHandler(cfg, db, redisClient, logrus.StandardLogger()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// SetupLogger configures the standard logrus logger. Unknown levels fall
// back to info.
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// NewHTTPHandler wires repositories, services, usecases and handlers into
// the routed HTTP handler.
func NewHTTPHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) http.Handler {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	cidadeRepo := repository.NewCidadeRepository()
	medicoRepo := repository.NewMedicoRepository()
	pacienteRepo := repository.NewPacienteRepository()
	medicoPacienteRepo := repository.NewMedicoPacienteRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	referenceService := service.NewReferenceService(cidadeRepo, medicoRepo, pacienteRepo)
	cidadeCache := service.NewCidadeCacheService(db, redisClient, log, cidadeRepo, cfg.Cache.TTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, customValidator, userRepo, auditService, jwtService, redisClient)
	cidadeUsecase := usecase.NewCidadeUsecase(db, log, customValidator, cidadeRepo, medicoRepo, cidadeCache, auditService)
	medicoUsecase := usecase.NewMedicoUsecase(db, log, customValidator, medicoRepo, medicoPacienteRepo, referenceService, auditService)
	pacienteUsecase := usecase.NewPacienteUsecase(db, log, customValidator, pacienteRepo, referenceService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, customValidator, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, log)
	cidadeHandler := handler.NewCidadeHandler(cidadeUsecase, log)
	medicoHandler := handler.NewMedicoHandler(medicoUsecase, log)
	pacienteHandler := handler.NewPacienteHandler(pacienteUsecase, log)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimit.PerMinute)
	metricsMiddleware := middleware.NewMetricsMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		cidadeHandler,
		medicoHandler,
		pacienteHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
		metricsMiddleware,
	)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
