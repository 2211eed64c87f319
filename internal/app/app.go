package app

import (
	"context"
	"errors"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/controller"
	"event_passport_backend/internal/kafka"
	"event_passport_backend/internal/repository"
	"event_passport_backend/internal/service"
	"event_passport_backend/pkg/database"
	"event_passport_backend/pkg/logger"
	"event_passport_backend/pkg/monitoring"
	"event_passport_backend/pkg/security"
	"event_passport_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	producer *kafka.Producer
	tracer   *sdktrace.TracerProvider
	cors     *security.CORSPolicy
}

// Dependencies 外部资源，测试中可替换为内存实现
type Dependencies struct {
	DB        *gorm.DB
	Sessions  service.SessionStore
	Publisher service.VisitEventPublisher
	Storage   *service.StorageService
}

type repositories struct {
	attendee *repository.AttendeeRepository
	booth    *repository.BoothRepository
	visit    *repository.VisitRepository
	stats    *repository.StatsRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	qr       *service.QRService
	booth    *service.BoothService
	attendee *service.AttendeeService
	visit    *service.VisitService
	checkin  *service.CheckinService
	stats    *service.StatsService
}

type controllers struct {
	auth     *controller.AuthController
	booth    *controller.BoothController
	attendee *controller.AttendeeController
	visit    *controller.VisitController
	health   *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		attendee: repository.NewAttendeeRepository(db),
		booth:    repository.NewBoothRepository(db),
		visit:    repository.NewVisitRepository(db),
		stats:    repository.NewStatsRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, deps Dependencies) (*services, error) {
	s := &services{}

	auth, err := service.NewAuthService(cfg, deps.Sessions)
	if err != nil {
		return nil, err
	}
	s.auth = auth

	s.storage = deps.Storage
	if s.storage == nil {
		s.storage = service.NewStorageService(&cfg.Storage)
	}
	s.qr = service.NewQRService(s.storage)
	s.booth = service.NewBoothService(repos.booth, s.qr)
	s.attendee = service.NewAttendeeService(repos.attendee, repos.visit)
	s.visit = service.NewVisitService(repos.visit)
	s.checkin = service.NewCheckinService(repos.attendee, repos.booth, repos.visit, deps.Publisher)
	s.stats = service.NewStatsService(repos.stats, repos.attendee, repos.booth)

	return s, nil
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		booth:    controller.NewBoothController(s.booth),
		attendee: controller.NewAttendeeController(s.attendee),
		visit:    controller.NewVisitController(s.checkin, s.stats, s.attendee, s.visit),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.cors))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// Build 在已就绪的依赖上组装服务与路由
func Build(cfg *config.Config, deps Dependencies) (*App, error) {
	if deps.DB == nil {
		return nil, errors.New("database is required")
	}
	if deps.Sessions == nil {
		deps.Sessions = service.NewMemorySessionStore()
	}
	if deps.Publisher == nil {
		deps.Publisher = service.NoopPublisher{}
	}

	app := &App{
		Config: cfg,
		DB:     deps.DB,
		cors:   security.NewCORSPolicy(cfg.CORS.AllowedOrigins),
	}

	repos := initRepositories(deps.DB)
	svcs, err := initServices(repos, cfg, deps)
	if err != nil {
		return nil, err
	}
	ctrls := initControllers(svcs, deps.DB)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, svcs, cfg)

	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath != "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下只在显式指定 -migrate 时建表
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	deps := Dependencies{DB: db}
	var rdb *redis.Client
	var producer *kafka.Producer
	var tp *sdktrace.TracerProvider

	if !cfg.MigrateOnly {
		switch cfg.Session.Store {
		case "memory":
			logger.Log.Warn("Using in-memory admin sessions; sessions are lost on restart")
			deps.Sessions = service.NewMemorySessionStore()
		default:
			rdb, err = database.InitRedis(&cfg.Redis)
			if err != nil {
				logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
			}
			deps.Sessions = service.NewRedisSessionStore(rdb)
		}

		if cfg.Kafka.Enabled {
			producer, err = kafka.NewProducer(&cfg.Kafka)
			if err != nil {
				logger.Log.Fatal("Failed to initialize kafka producer", zap.Error(err))
			}
			deps.Publisher = producer
		}

		if cfg.Tracing.Enabled {
			tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
			if err != nil {
				logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
			}
		}
	}

	app, err := Build(cfg, deps)
	if err != nil {
		logger.Log.Fatal("Failed to build application", zap.Error(err))
	}
	app.Redis = rdb
	app.producer = producer
	app.tracer = tp

	return app
}

// ApplyConfig 配置热更新：日志级别与 CORS 白名单
func (a *App) ApplyConfig(cfg *config.Config) {
	logger.ApplyConfig(cfg)
	a.cors.Update(cfg.CORS.AllowedOrigins)
	logger.Log.Info("Runtime config applied",
		zap.String("mode", cfg.Server.Mode),
		zap.Strings("cors_allowed_origins", cfg.CORS.AllowedOrigins),
	)
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	log.Println("Server exiting")
}

// Close 释放外部连接
func (a *App) Close(ctx context.Context) {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			logger.Log.Error("Failed to close kafka producer", zap.Error(err))
		}
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
