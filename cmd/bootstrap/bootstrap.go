package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-appointment-service/config"
	deliveryHttp "hospital-appointment-service/internal/delivery/http"
	"hospital-appointment-service/internal/delivery/http/handler"
	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/infrastructure/cache"
	"hospital-appointment-service/internal/infrastructure/database"
	"hospital-appointment-service/internal/infrastructure/metrics"
	"hospital-appointment-service/internal/repository"
	"hospital-appointment-service/internal/service"
	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/jwt"
	"hospital-appointment-service/pkg/validator"

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
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	log := logrus.StandardLogger()
	app := &App{Log: log}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	setupLogger(log, cfg.Log)
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Redis is optional. Without it schedule windows are read from Postgres
	// on every lookup and token revocation is not checked.
	var scheduleCache service.ScheduleCache = service.NoopScheduleCache{}
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warnf("Redis unavailable, schedule cache disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			scheduleCache = service.NewRedisScheduleCache(redisClient, cfg.Redis.ScheduleCacheTTL, log)
		}
	}

	app.Server = initializeServer(cfg, db, app.RedisClient, scheduleCache, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(log *logrus.Logger, cfg config.LogConfig) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, scheduleCache service.ScheduleCache, log *logrus.Logger) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	collector := metrics.NewCollector()
	clock := usecase.Clock(time.Now)

	// Repositories
	txManager := repository.NewTxManager(db)
	doctorRepo := repository.NewDoctorRepository()
	departmentRepo := repository.NewDepartmentRepository()
	patientRepo := repository.NewPatientRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	itemRepo := repository.NewItemRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	visitRepo := repository.NewVisitRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(txManager, log, scheduleRepo, doctorRepo, scheduleCache, auditService, collector)
	patientAppointmentUsecase := usecase.NewPatientAppointmentUsecase(txManager, log, cfg.Booking, clock, appointmentRepo, doctorRepo, departmentRepo, scheduleUsecase, auditService, collector)
	doctorAppointmentUsecase := usecase.NewDoctorAppointmentUsecase(txManager, log, clock, appointmentRepo, visitRepo, itemRepo, patientRepo, doctorRepo, departmentRepo, auditService, collector)
	doctorUsecase := usecase.NewDoctorUsecase(txManager, log, doctorRepo, auditService)
	directoryUsecase := usecase.NewDirectoryUsecase(txManager, log, departmentRepo, doctorRepo)
	visitUsecase := usecase.NewPatientVisitUsecase(txManager, log, visitRepo)
	itemUsecase := usecase.NewItemUsecase(txManager, log, itemRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(txManager, log, auditLogRepo)

	// Handlers
	appointmentHandler := handler.NewAppointmentHandler(patientAppointmentUsecase, customValidator)
	doctorAppointmentHandler := handler.NewDoctorAppointmentHandler(doctorAppointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, scheduleUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	scheduleHandler := handler.NewDoctorScheduleHandler(scheduleUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase)
	itemHandler := handler.NewItemHandler(itemUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	router := deliveryHttp.NewRouter(
		appointmentHandler,
		doctorAppointmentHandler,
		doctorHandler,
		directoryHandler,
		scheduleHandler,
		visitHandler,
		itemHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		collector,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the database pool and the Redis client
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		_ = app.RedisClient.Close()
	}
}
