package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は設定のドライバで接続し、疎通確認まで行います。
func NewDB(dbCfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	// APP_ENV=dev のときだけ SQL を全て出す
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	var dialector gorm.Dialector
	switch strings.ToLower(dbCfg.Driver) {
	case "", "postgres", "postgresql":
		dialector = postgres.Open(dbCfg.URL)
	case "sqlite":
		dialector = sqlite.Open(dbCfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         slogGormLogger.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if dialector.Name() == "sqlite" {
		// SQLite は書き込みが直列なので接続は1本
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", dialector.Name()))
	return db, nil
}

// Models はマイグレーション対象のモデル一覧です。
func Models() []interface{} {
	return []interface{}{
		&model.Lesson{},
		&model.Question{},
		&model.Drill{},
		&model.QuizAttempt{},
		&model.QuizAttemptAnswer{},
		&model.MasteryScore{},
		&model.LessonProgress{},
		&model.ReviewQueueEntry{},
		&model.DrillAttempt{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
