// internal/repository/progress_repository.go
package repository

import (
	"context"
	"time"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	MarkCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, at time.Time) error // トランザクション対応
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint) (*model.LessonProgress, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) MarkCompleted(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, at time.Time) error {
	row := model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Status:      model.StatusCompleted,
		CompletedAt: &at,
	}
	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       model.StatusCompleted,
			"completed_at": at,
			"updated_at":   time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return translateError("gormProgressRepository.MarkCompleted", err)
	}
	return nil
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	err := db.WithContext(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, translateError("gormProgressRepository.Find", err)
	}
	return &progress, nil
}
