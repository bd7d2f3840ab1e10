package app

import (
	"context"
	"course_dash_backend/internal/config"
	"course_dash_backend/internal/controller"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/service"
	"course_dash_backend/pkg/database"
	"course_dash_backend/pkg/logger"
	"course_dash_backend/pkg/monitoring"
	"course_dash_backend/pkg/security"
	"course_dash_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Tracer *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	course  *repository.CourseRepository
	chapter *repository.ChapterRepository
	lesson  *repository.LessonRepository
	quiz    *repository.QuizRepository
	exam    *repository.ExamRepository
}

type services struct {
	auth    *service.AuthService
	course  *service.CourseService
	quiz    *service.QuizService
	exam    *service.ExamService
	reorder *service.ReorderService
	storage *service.StorageService
	upload  *service.UploadService
}

type controllers struct {
	auth    *controller.AuthController
	course  *controller.CourseController
	quiz    *controller.QuizController
	exam    *controller.ExamController
	reorder *controller.ReorderController
	upload  *controller.UploadController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies the settings that can change without a restart and
// notifies registered callbacks.
func (a *App) ReloadConfig(cfg *config.Config) {
	logger.SetMode(cfg.Server.Mode)

	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		course:  repository.NewCourseRepository(db),
		chapter: repository.NewChapterRepository(db),
		lesson:  repository.NewLessonRepository(db),
		quiz:    repository.NewQuizRepository(db),
		exam:    repository.NewExamRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	var tokens service.TokenStore = service.NoopTokenStore{}
	if rdb != nil {
		tokens = service.NewRedisTokenStore(rdb)
	}
	s.auth = service.NewAuthService(repos.user, tokens, cfg)
	s.course = service.NewCourseService(repos.course, repos.chapter, repos.lesson)
	s.quiz = service.NewQuizService(repos.quiz, s.course)
	s.exam = service.NewExamService(repos.exam, s.course)
	s.reorder = service.NewReorderService(repos.quiz, repos.exam)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.upload = service.NewUploadService(s.storage, &cfg.Storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		course:  controller.NewCourseController(s.course),
		quiz:    controller.NewQuizController(s.quiz),
		exam:    controller.NewExamController(s.exam),
		reorder: controller.NewReorderController(s.reorder),
		upload:  controller.NewUploadController(s.upload),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	limiter := security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	a.RegisterConfigCallback(func(next *config.Config) {
		limiter.Update(next.RateLimit.MaxRequests, next.RateLimit.Window())
	})
	router.Use(limiter.Handler())

	if a.Tracer != nil {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New wires the HTTP stack on top of an open database. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(context.Background(), &cfg.Tracing)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.Tracer = tp
		}
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos, services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	return New(cfg, db, rdb)
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Tracer != nil {
		if err := a.Tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
