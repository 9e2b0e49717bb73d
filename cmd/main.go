// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"go_4_trade_practice/internal/cache"
	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/handlers"
	"go_4_trade_practice/internal/repository"
	"go_4_trade_practice/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "../configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// DB
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error running auto migration", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Auto migration completed")
	}

	// コンテンツキャッシュ。Redis に繋がらなければキャッシュ無しで起動する
	var contentCache cache.Cache = cache.Noop{}
	if config.Cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(context.Background(), cache.RedisOptions{
			Addr:     config.Cfg.Redis.Addr,
			Password: config.Cfg.Redis.Password,
			DB:       config.Cfg.Redis.DB,
			TTL:      config.Cfg.Redis.TTL,
		})
		if err != nil {
			slog.Warn("Redis unavailable, content cache disabled", slog.Any("error", err))
		} else {
			contentCache = redisCache
			defer redisCache.Close()
			slog.Info("Content cache enabled", slog.String("addr", config.Cfg.Redis.Addr))
		}
	}

	// Dependency Injection
	clk := clock.System{}
	contentRepo := repository.NewCachedContentRepository(repository.NewGormContentRepository(), contentCache)
	quizRepo := repository.NewGormQuizRepository()
	progressRepo := repository.NewGormProgressRepository()
	masteryRepo := repository.NewGormMasteryRepository()
	reviewRepo := repository.NewGormReviewRepository()
	drillRepo := repository.NewGormDrillRepository()

	masteryTracker := service.NewMasteryTracker(masteryRepo)
	scheduler := service.NewReviewScheduler(reviewRepo)

	quizService := service.NewQuizService(db, contentRepo, quizRepo, progressRepo, masteryTracker, scheduler, clk, &config.Cfg)
	practiceService := service.NewPracticeService(db, contentRepo, masteryRepo, scheduler, clk, nil, &config.Cfg)
	drillService := service.NewDrillService(db, contentRepo, drillRepo, clk)

	router := handlers.NewRouter(&config.Cfg, logger, handlers.Handlers{
		Quiz:     handlers.NewQuizHandler(quizService, logger),
		Practice: handlers.NewPracticeHandler(practiceService, logger),
		Drill:    handlers.NewDrillHandler(drillService, logger),
		Health:   handlers.NewHealthHandler(sqlDB, logger),
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定のログレベルと APP_ENV からハンドラを選びます。dev なら tint、それ以外は JSON。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	log.Println("Log Config Loaded...")
	return slog.New(handler)
}
