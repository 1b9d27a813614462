package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio-api/config"
	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/application/services"
	"portfolio-api/internal/application/upload"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/imaging"
	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/infrastructure/db/postgres"
	chatDB "portfolio-api/internal/infrastructure/db/postgres/chat"
	messageDB "portfolio-api/internal/infrastructure/db/postgres/message"
	profileDB "portfolio-api/internal/infrastructure/db/postgres/profile"
	uploadDB "portfolio-api/internal/infrastructure/db/postgres/upload"
	userDB "portfolio-api/internal/infrastructure/db/postgres/user"
	"portfolio-api/internal/infrastructure/jwt"
	"portfolio-api/internal/infrastructure/llm"
	"portfolio-api/internal/infrastructure/logger"
	"portfolio-api/internal/infrastructure/metrics"
	"portfolio-api/internal/infrastructure/mq"
	"portfolio-api/internal/infrastructure/storage"
	"portfolio-api/internal/interface/api/rest"
	"portfolio-api/internal/interface/api/rest/middleware"
	"portfolio-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	storage    ports.Storage
	redis      *redis.Client
	cache      ports.ProfileCache
	completion ports.ChatCompletion
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mDuration  *prometheus.HistogramVec
	// mq and mqConsumer stay nil when RabbitMQ is not configured
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	envErr := godotenv.Load(".env")
	cfg := config.Load()

	// logger
	lg, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize logger: %w", err)
	}
	if envErr != nil {
		lg.Warn("no .env file loaded, using process environment", zap.Error(envErr))
	}
	for _, p := range []string{cfg.Upload.AvatarUnprocessable, cfg.Upload.SkillPhotoUnprocessable} {
		if err = config.ValidatePolicy(p); err != nil {
			lg.Fatal("upload config error", zap.Error(err))
		}
	}

	// metrics
	mCounter := metrics.NewCounter()
	mDuration := metrics.NewUploadDuration()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(lg, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    cfg.App.Host + ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		lg.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, lg, dbDsn)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}

	// storage
	var store ports.Storage
	switch cfg.Storage.Backend {
	case config.StorageMinIO:
		store, err = storage.NewMinIO(ctx, lg, cfg.S3)
		if err != nil {
			lg.Fatal("failed to connect to object storage", zap.Error(err))
		}
	case config.StorageFS:
		fs, err := storage.NewFileSystem(cfg.Storage.Root, cfg.Storage.BaseURL, lg)
		if err != nil {
			lg.Fatal("failed to init media directory", zap.Error(err))
		}
		store = fs
		if strings.HasPrefix(cfg.Storage.BaseURL, "/") {
			r.Static(strings.TrimSuffix(cfg.Storage.BaseURL, "/"), cfg.Storage.Root)
		}
	default:
		lg.Fatal("unknown storage backend", zap.String("backend", cfg.Storage.Backend))
	}

	// redis (optional)
	var (
		profileCache ports.ProfileCache
		rdb          *redis.Client
	)
	if cfg.Redis.Addr != "" {
		pc, client, err := cache.New(ctx, lg, cfg.Redis)
		if err != nil {
			lg.Warn("profile cache disabled", zap.Error(err))
		} else {
			profileCache, rdb = pc, client
		}
	}

	// chat completion (optional)
	var completion ports.ChatCompletion
	if cfg.Chat.APIKey != "" {
		c, err := llm.New(cfg.Chat, lg)
		if err != nil {
			lg.Fatal("chat config error", zap.Error(err))
		}
		completion = c
	} else {
		lg.Warn("CHAT_API_KEY is not set, ai chat will answer 503")
	}

	app := &App{
		logger:     lg,
		cfg:        cfg,
		db:         dbPool,
		storage:    store,
		redis:      rdb,
		cache:      profileCache,
		completion: completion,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mDuration:  mDuration,
	}

	// rabbitMQ (optional)
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		lg.Warn("RabbitMQ is not configured, events are disabled", zap.Error(err))
		return app, nil
	}
	rbMQ := mq.New(cfg.MQ, lg)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		lg.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		lg.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, lg, rbMQ.GetConn(), mq.Actions)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		lg.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		lg.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}
	app.mq = rbMQ
	app.mqConsumer = rmqConsumer

	return app, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := userDB.NewRepository(a.db)
	profileRepo := profileDB.NewRepository(a.db)
	messageRepo := messageDB.NewRepository(a.db)
	chatRepo := chatDB.NewRepository(a.db)
	uploadRepo := uploadDB.NewRepository(a.db)

	// upload fields
	generator := imaging.NewGenerator(imaging.NewTranscoder())
	avatarField := upload.NewField(upload.Config{
		OwnerField:    "profile.avatar",
		UploadPath:    a.cfg.Upload.AvatarPath,
		Unprocessable: upload.Policy(a.cfg.Upload.AvatarUnprocessable),
	}, a.storage, uploadRepo, generator, a.logger, a.mCounter, a.mDuration)
	skillPhotoField := upload.NewField(upload.Config{
		OwnerField:    "skill_category.photo",
		UploadPath:    a.cfg.Upload.SkillPhotoPath,
		Unprocessable: upload.Policy(a.cfg.Upload.SkillPhotoUnprocessable),
	}, a.storage, uploadRepo, generator, a.logger, a.mCounter, a.mDuration)
	skillPhotos := func(id profile.SkillID) services.ImageField {
		return skillPhotoField.Slot(strconv.FormatUint(uint64(id), 10))
	}

	// events
	var publisher ports.EventPublisher
	if a.mq != nil {
		publisher = a.mq
	}

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtService)
	profileService := services.NewProfileService(
		profileRepo, avatarField, skillPhotos, a.cache, publisher, a.logger, a.mCounter,
	)
	messageService := services.NewMessageService(messageRepo, publisher, a.mCounter)
	chatService := services.NewChatService(
		chatRepo, profileRepo, a.completion, a.cfg.Chat.HistoryLimit, a.logger, a.mCounter,
	)

	// controllers
	admin := a.router.Group("",
		middleware.AuthMiddleware(jwtService),
		middleware.ActorMiddleware(userRepo, a.logger),
	)
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewProfileController(a.router, admin, profileService, a.logger)
	rest.NewMessageController(a.router, admin, messageService, a.logger)
	rest.NewChatController(a.router, chatService, a.logger)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
