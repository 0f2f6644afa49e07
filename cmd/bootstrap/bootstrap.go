package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-portal/config"
	deliveryHttp "hospital-portal/internal/delivery/http"
	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"
	"hospital-portal/internal/infrastructure/cache"
	"hospital-portal/internal/infrastructure/database"
	"hospital-portal/internal/infrastructure/metrics"
	"hospital-portal/internal/infrastructure/storage"
	"hospital-portal/internal/repository"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/jwt"
	"hospital-portal/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CachePrefix namespaces every key this application writes to Redis.
const CachePrefix = "hospital_portal:"

// PlaceholderPhotoPath is served for doctors without an uploaded photo.
const PlaceholderPhotoPath = "/images/doctor-placeholder.jpg"

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

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("Unknown log level %q, using info", level)
		return
	}
	logrus.SetLevel(parsed)
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.Warnf("Failed to load timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	ctx := context.Background()
	log := logrus.StandardLogger()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	storageMetrics := metrics.NewStorageMetrics(registry)

	// Storage
	disk, err := storage.NewDisk(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	var storageHandler http.Handler
	if local, ok := disk.(*storage.LocalDisk); ok {
		storageHandler = local.Handler()
	}
	disk = storage.Instrument(disk, cfg.Storage.Driver, storageMetrics)
	logrus.Infof("Storage driver: %s", cfg.Storage.Driver)

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	tokenStore := cache.NewRedisTokenStore(redisClient)
	jsonCache := cache.NewJSONCache(redisClient, CachePrefix)

	// Services
	matcher := service.NewScheduleMatcher(cfg.Schedule.DayNames, loadLocation(cfg.App.Timezone))
	gallery := service.NewGalleryReconciler(disk, log, storageMetrics)
	placeholderPhoto := cfg.App.BaseURL + PlaceholderPhotoPath

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	contentRepo := repository.NewContentRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	visitingHourRepo := repository.NewVisitingHourRepository(db)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, customValidator, adminRepo, jwtService, tokenStore)
	contentUsecase := usecase.NewContentUsecase(log, customValidator, contentRepo, gallery, disk)
	doctorUsecase := usecase.NewDoctorUsecase(log, customValidator, doctorRepo, gallery, disk)
	visitingHourUsecase := usecase.NewVisitingHourUsecase(log, customValidator, visitingHourRepo, jsonCache, cfg.Cache.TTL)
	dashboardUsecase := usecase.NewDashboardUsecase(log, contentRepo, doctorRepo, visitingHourUsecase, matcher, disk, placeholderPhoto)
	guestUsecase := usecase.NewGuestUsecase(log, contentRepo, doctorRepo, visitingHourUsecase, matcher, disk, placeholderPhoto)

	if err := authUsecase.SeedAdmin(ctx, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Handlers
	uploads := handler.NewUploadPolicy(cfg.Upload)
	authHandler := handler.NewAuthHandler(authUsecase, log)
	contentHandler := handler.NewContentHandler(contentUsecase, uploads, log)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, uploads, log)
	visitingHourHandler := handler.NewVisitingHourHandler(visitingHourUsecase, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, log)
	guestHandler := handler.NewGuestHandler(guestUsecase, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	metricsMiddleware := middleware.NewMetricsMiddleware(httpMetrics, log)

	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		AuthHandler:         authHandler,
		ContentHandler:      contentHandler,
		DoctorHandler:       doctorHandler,
		VisitingHourHandler: visitingHourHandler,
		DashboardHandler:    dashboardHandler,
		GuestHandler:        guestHandler,
		AuthMiddleware:      authMiddleware,
		CORSMiddleware:      corsMiddleware,
		MetricsMiddleware:   metricsMiddleware,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		StorageHandler:      storageHandler,
	})

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
