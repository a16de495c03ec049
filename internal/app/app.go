package app

import (
	"context"
	"log"
	"mathquest_backend/internal/config"
	"mathquest_backend/internal/controller"
	"mathquest_backend/internal/repository"
	"mathquest_backend/internal/service"
	"mathquest_backend/pkg/configwatcher"
	"mathquest_backend/pkg/database"
	"mathquest_backend/pkg/logger"
	"mathquest_backend/pkg/monitoring"
	"mathquest_backend/pkg/security"
	"mathquest_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Rules           *service.Ruleset
	configCallbacks []func(*config.Config)
}

type repositories struct {
	progress *repository.ProgressRepository
	skill    *repository.SkillRepository
	points   *repository.PointsRepository
	attempt  *repository.AttemptRepository
	badge    *repository.BadgeRepository
	shop     *repository.ShopRepository
	checkin  *repository.CheckinRepository
}

type services struct {
	storage     *service.StorageService
	placement   *service.PlacementService
	progression *service.ProgressionService
	mastery     *service.MasteryService
	points      *service.PointsService
	badge       *service.BadgeService
	shop        *service.ShopService
	checkin     *service.CheckinService
}

type controllers struct {
	progression *controller.ProgressionController
	skill       *controller.SkillController
	points      *controller.PointsController
	badge       *controller.BadgeController
	shop        *controller.ShopController
	checkin     *controller.CheckinController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		progress: repository.NewProgressRepository(db),
		skill:    repository.NewSkillRepository(db),
		points:   repository.NewPointsRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		badge:    repository.NewBadgeRepository(db, rdb),
		shop:     repository.NewShopRepository(db),
		checkin:  repository.NewCheckinRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.points = service.NewPointsService(repos.points, repos.progress, rdb, db)
	s.badge = service.NewBadgeService(repos.badge, db)
	s.mastery = service.NewMasteryService(repos.skill, repos.progress, a.Rules, db)
	s.placement = service.NewPlacementService(repos.progress, repos.skill, a.Rules, db)
	s.progression = service.NewProgressionService(
		repos.progress,
		repos.attempt,
		repos.checkin,
		s.mastery,
		s.points,
		s.badge,
		a.Rules,
		db,
	)
	s.shop = service.NewShopService(repos.shop, repos.progress, s.points, db)
	s.checkin = service.NewCheckinService(repos.checkin, repos.progress, s.badge, db)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		progression: controller.NewProgressionController(s.placement, s.progression),
		skill:       controller.NewSkillController(s.mastery),
		points:      controller.NewPointsController(s.points),
		badge:       controller.NewBadgeController(s.badge, s.progression, s.storage),
		shop:        controller.NewShopController(s.shop, s.storage),
		checkin:     controller.NewCheckinController(s.checkin),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchProgressionConfig 监听配置文件变化，热更新进阶规则表
func (a *App) watchProgressionConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		if err := a.Rules.Update(newCfg.Progression); err != nil {
			logger.Log.Error("progression config rejected", zap.Error(err))
			return
		}
		logger.Log.Info("progression config reloaded",
			zap.Float64("advanceThreshold", newCfg.Progression.AdvanceThreshold),
			zap.Float64("failThreshold", newCfg.Progression.FailThreshold),
			zap.Int("demoteStreak", newCfg.Progression.DemoteStreak),
		)
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Rules:  service.NewRuleset(cfg.Progression),
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mathquest-progression", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchProgressionConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
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
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
