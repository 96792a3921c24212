package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/adapters/ratelimit"
	"github.com/khoahotran/portfolio-api/internal/application/portfolio"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio API Server...", zap.String("env", cfg.App.Env), zap.String("db_driver", cfg.DB.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(ctx, cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("Cannot initialize tracer", err)
	}
	if tp != nil {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("Failed to shutdown tracer provider", err)
			}
		}()
	}

	checks := map[string]httpAdapter.Pinger{}

	// Stores
	var stores portfolio.Stores
	switch cfg.DB.Driver {
	case config.DriverMemory:
		mem := memstore.NewPortfolio()
		if err := seedMemoryOwner(cfg, mem.Users); err != nil {
			appLogger.Fatal("Cannot seed owner account", err)
		}
		stores = portfolio.MemoryStores(mem)
		appLogger.Warn("Using in-memory store: content is lost on restart")
	default:
		if cfg.DB.AutoMigrate {
			if err := persistence.Migrate(cfg.DB.DSN, appLogger); err != nil {
				appLogger.Fatal("Cannot migrate database", err)
			}
		}
		dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Postgres", err)
		}
		defer dbPool.Close()
		stores = portfolio.PostgresStores(dbPool, appLogger)
		checks["postgres"] = dbPool
	}

	// Login throttling
	var limiter authUC.AttemptLimiter
	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLoginLimiter(redisClient, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)
		checks["redis"] = httpAdapter.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	} else {
		appLogger.Info("Redis not configured: login attempts are not throttled")
	}

	// Change events
	var events service.EventPublisher = event.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		events = kafkaClient
	} else {
		appLogger.Info("Kafka not configured: content events are not published")
	}

	// Media storage
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if errors.Is(err, media_storage.ErrNotConfigured) {
		appLogger.Info("Cloudinary not configured: uploads are disabled")
		uploader = nil
	} else if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use cases
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan, cfg.Auth.Issuer)
	useCases := portfolio.NewUseCases(stores, events, appLogger)
	loginUseCase := authUC.NewLoginUseCase(stores.Users, jwtSvc, limiter, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Log:            appLogger,
		JWT:            jwtSvc,
		AuthEnabled:    cfg.Auth.Enabled,
		DetailedStatus: cfg.HTTP.DetailedStatus,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Metrics:        httpAdapter.NewMetrics(),

		Health:         httpAdapter.NewHealthHandler(checks, appLogger),
		Auth:           httpAdapter.NewAuthHandler(loginUseCase),
		Awards:         httpAdapter.NewAwardHandler(useCases.Awards),
		Certifications: httpAdapter.NewCertificationHandler(useCases.Certifications),
		Education:      httpAdapter.NewEducationHandler(useCases.Education),
		Experiences:    httpAdapter.NewExperienceHandler(useCases.Experiences),
		Skills:         httpAdapter.NewSkillHandler(useCases.Skills),
		SocialLinks:    httpAdapter.NewSocialLinkHandler(useCases.SocialLinks),
		Settings:       httpAdapter.NewSettingsHandler(useCases.Settings),
		Upload:         httpAdapter.NewUploadHandler(uploader),
	})
	if !cfg.Auth.Enabled {
		appLogger.Warn("Admin auth disabled: writes are open")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}

// seedMemoryOwner gives the in-memory driver an owner account from config.
func seedMemoryOwner(cfg config.Config, users *memstore.Users) error {
	if cfg.Auth.OwnerEmail == "" || cfg.Auth.OwnerPassword == "" {
		return nil
	}
	hash, err := auth.HashPassword(cfg.Auth.OwnerPassword)
	if err != nil {
		return err
	}
	users.Put(&user.User{Email: cfg.Auth.OwnerEmail, PasswordHash: hash})
	return nil
}
