// internal/repository/mastery_repository.go
package repository

import (
	"context"
	"time"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MasteryRepository interface {
	// Upsert は初回は AttemptsCount=1 で作成し、以降は Score を置き換えて AttemptsCount を1増やす
	Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, score int) (*model.MasteryScore, error)
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint) (*model.MasteryScore, error)
	// FindBelow はスコアが threshold 未満のレッスンをスコアの低い順に返す
	FindBelow(ctx context.Context, db *gorm.DB, userID uuid.UUID, threshold int) ([]model.MasteryScore, error)
}

type gormMasteryRepository struct{}

func NewGormMasteryRepository() MasteryRepository {
	return &gormMasteryRepository{}
}

func (r *gormMasteryRepository) Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, score int) (*model.MasteryScore, error) {
	now := time.Now()
	row := model.MasteryScore{
		UserID:        userID,
		LessonID:      lessonID,
		Score:         score,
		AttemptsCount: 1,
		UpdatedAt:     now,
	}

	// 一意制約 (user_id, lesson_id) で競合したら更新する
	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":          score,
			"attempts_count": gorm.Expr("mastery_scores.attempts_count + 1"),
			"updated_at":     now,
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, translateError("gormMasteryRepository.Upsert", err)
	}

	return r.Find(ctx, tx, userID, lessonID)
}

func (r *gormMasteryRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint) (*model.MasteryScore, error) {
	var row model.MasteryScore
	err := db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&row).Error
	if err != nil {
		return nil, translateError("gormMasteryRepository.Find", err)
	}
	return &row, nil
}

func (r *gormMasteryRepository) FindBelow(ctx context.Context, db *gorm.DB, userID uuid.UUID, threshold int) ([]model.MasteryScore, error) {
	var rows []model.MasteryScore
	err := db.WithContext(ctx).
		Where("user_id = ? AND score < ?", userID, threshold).
		Order("score ASC, lesson_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError("gormMasteryRepository.FindBelow", err)
	}
	return rows, nil
}
