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
	"go.uber.org/zap"
	"gorm.io/gorm"

	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/infrastructure/datasources"
	"justice-airdrop.backend/internal/infrastructure/jobs"
	"justice-airdrop.backend/internal/infrastructure/metrics"
	"justice-airdrop.backend/internal/infrastructure/models"
	"justice-airdrop.backend/internal/infrastructure/repositories"
	"justice-airdrop.backend/internal/infrastructure/storage"
	"justice-airdrop.backend/internal/infrastructure/telegram"
	"justice-airdrop.backend/internal/interfaces/http/handlers"
	"justice-airdrop.backend/internal/interfaces/http/middleware"
	"justice-airdrop.backend/internal/usecases"
	"justice-airdrop.backend/pkg/jwt"
	"justice-airdrop.backend/pkg/logger"
	"justice-airdrop.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv  = godotenv.Load
	loadCfg     = config.Load
	initLog     = logger.Init
	initRedis   = redis.Init
	openDB      = datasources.Open
	newTelegram = telegram.NewClient
	runServer   = serve
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

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
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
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	store, err := storage.NewLocalStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to prepare storage: %w", err)
	}

	bot, err := newTelegram(cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("failed to initialize telegram: %w", err)
	}
	if !bot.Enabled() {
		logger.Warn(ctx, "BOT_TOKEN not set, Telegram delivery disabled")
	}

	m := metrics.New()
	dispatcher := jobs.NewNotificationDispatcher(bot, m, cfg.Dispatcher.QueueSize, cfg.Dispatcher.Workers)
	dispatchCtx, cancelDispatch := context.WithCancel(ctx)
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		dispatcher.Start(dispatchCtx)
	}()
	defer func() {
		dispatcher.Stop()
		select {
		case <-dispatchDone:
		case <-time.After(shutdownTimeout):
			logger.Warn(ctx, "Notification dispatcher did not drain in time")
		}
		cancelDispatch()
	}()

	r := buildRouter(cfg, db, store, bot, dispatcher, m)

	logger.Info(ctx, "Justice airdrop backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", cfg.Server.BackendURL+"/api/v1"))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func buildRouter(
	cfg *config.Config,
	db *gorm.DB,
	store *storage.LocalStore,
	bot *telegram.Client,
	dispatcher *jobs.NotificationDispatcher,
	m *metrics.Metrics,
) *gin.Engine {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	notifRepo := repositories.NewNotificationRepository(db)
	referralRepo := repositories.NewReferralRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authorization := usecases.NewAuthorizationUsecase(userRepo, adminRepo, jwtService, cfg.Security)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	taskUsecase := usecases.NewTaskUsecase(taskRepo, dispatcher, cfg.Telegram.ReviewChannelID)
	submissionUsecase := usecases.NewSubmissionUsecase(uow, userRepo, taskRepo, submissionRepo, txRepo, notifRepo, dispatcher, bot, store, cfg.Telegram)
	walletUsecase := usecases.NewWalletUsecase(uow, userRepo, withdrawalRepo, txRepo, settingsRepo)
	referralUsecase := usecases.NewReferralUsecase(uow, userRepo, referralRepo, txRepo, cfg.Airdrop.ReferralBaseURL)
	notificationUsecase := usecases.NewNotificationUsecase(notifRepo, dispatcher)
	adminUsecase := usecases.NewAdminUsecase(adminRepo, userRepo)
	statsUsecase := usecases.NewStatsUsecase(userRepo, taskRepo, submissionRepo, withdrawalRepo)
	mediaUsecase := usecases.NewMediaUsecase(store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r, m)
	registerRootRoute(r, cfg.Server.BackendURL)
	uploads, logo, video := store.Dirs()
	registerStaticRoutes(r, uploads, logo, video)

	registerAPIV1Routes(r, routeDeps{
		authHandler:         handlers.NewAuthHandler(authUsecase),
		taskHandler:         handlers.NewTaskHandler(taskUsecase, submissionUsecase),
		reviewHandler:       handlers.NewReviewHandler(submissionUsecase),
		walletHandler:       handlers.NewWalletHandler(walletUsecase),
		referralHandler:     handlers.NewReferralHandler(referralUsecase),
		notificationHandler: handlers.NewNotificationHandler(notificationUsecase),
		statsHandler:        handlers.NewStatsHandler(statsUsecase),
		adminHandler:        handlers.NewAdminHandler(adminUsecase),
		mediaHandler:        handlers.NewMediaHandler(mediaUsecase),
		identity:            middleware.IdentityMiddleware(authorization),
		idempotency:         middleware.IdempotencyMiddleware(),
	})
	return r
}

// serve runs the HTTP server until SIGINT or SIGTERM, then shuts down gracefully
func serve(r *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
