package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"community-hub.backend/internal/config"
	"community-hub.backend/internal/infrastructure/datasources/postgres"
	"community-hub.backend/internal/infrastructure/jobs"
	"community-hub.backend/internal/infrastructure/models"
	"community-hub.backend/internal/infrastructure/repositories"
	"community-hub.backend/internal/interfaces/http/handlers"
	"community-hub.backend/internal/interfaces/http/middleware"
	"community-hub.backend/internal/metrics"
	"community-hub.backend/internal/usecases"
	"community-hub.backend/pkg/jwt"
	"community-hub.backend/pkg/logger"
	"community-hub.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = postgres.NewConnection
	newSessionStore = redis.NewSessionStore
	runServer       = serve
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer func() { _ = redis.Close() }()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(ctx, "Database schema migrated")
	}

	sessionStore, err := newSessionStore(cfg.Identity.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewRegistry(promRegistry)

	app := buildApp(cfg, db, sessionStore, m)

	scheduler := jobs.NewScheduler()
	if err := scheduler.Register(cfg.Verification.PurgeSchedule, jobs.NewVerificationPurgeJob(app.verificationRepo, m)); err != nil {
		return err
	}
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		scheduler.Stop(stopCtx)
	}()

	r := newRouter(cfg, app.routes, promRegistry, m)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "Community Hub backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	logger.Info(context.Background(), "Server exited")
	return nil
}

type app struct {
	routes           routeDeps
	verificationRepo *repositories.VerificationRepository
}

func buildApp(cfg *config.Config, db *gorm.DB, sessionStore *redis.SessionStore, m *metrics.Registry) app {
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	positionRepo := repositories.NewPositionRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	reactionRepo := repositories.NewReactionRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	studyGroupRepo := repositories.NewStudyGroupRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.Identity.SessionTTL)
	verificationUsecase := usecases.NewVerificationUsecase(uow, userRepo, verificationRepo, m, cfg.Verification.ChallengeTTL)
	startupUsecase := usecases.NewStartupUsecase(startupRepo, positionRepo, applicationRepo, reactionRepo, commentRepo, userRepo)
	interactionUsecase := usecases.NewInteractionUsecase(uow, userRepo, startupRepo, positionRepo, applicationRepo, reactionRepo, commentRepo, m)
	studyGroupUsecase := usecases.NewStudyGroupUsecase(uow, studyGroupRepo, userRepo)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, catalogRepo)
	catalogUsecase := usecases.NewCatalogUsecase(catalogRepo, cfg.Cache.CatalogTTL, m)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	return app{
		verificationRepo: verificationRepo,
		routes: routeDeps{
			authHandler:         handlers.NewAuthHandler(authUsecase),
			verificationHandler: handlers.NewVerificationHandler(verificationUsecase),
			startupHandler:      handlers.NewStartupHandler(startupUsecase),
			interactionHandler:  handlers.NewInteractionHandler(interactionUsecase),
			studyGroupHandler:   handlers.NewStudyGroupHandler(studyGroupUsecase),
			profileHandler:      handlers.NewProfileHandler(profileUsecase),
			catalogHandler:      handlers.NewCatalogHandler(catalogUsecase),
			authMiddleware:      middleware.AuthMiddleware(authUsecase, cfg.Identity.ProxySecret),
			trustedProxy:        middleware.RequireTrustedProxy(cfg.Identity.ProxySecret),
			rateLimit:           rateLimiter.Middleware(),
			healthCheck:         dbHealthCheck(db),
		},
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within timeout
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
