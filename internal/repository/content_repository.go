// internal/repository/content_repository.go
package repository

import (
	"context"

	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"

	"gorm.io/gorm"
)

// ContentRepository はレッスン・問題・ドリルの読み取り専用アクセスです。
type ContentRepository interface {
	FindQuestionsByLesson(ctx context.Context, db *gorm.DB, lessonID uint) ([]model.Question, error)
	FindQuestionsByLessons(ctx context.Context, db *gorm.DB, lessonIDs []uint) ([]model.Question, error)
	FindQuestionsByIDs(ctx context.Context, db *gorm.DB, questionIDs []uint) ([]model.Question, error)
	FindDrill(ctx context.Context, db *gorm.DB, drillID uint) (*model.Drill, error)
	ListDrills(ctx context.Context, db *gorm.DB) ([]model.Drill, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) FindQuestionsByLesson(ctx context.Context, db *gorm.DB, lessonID uint) ([]model.Question, error) {
	var questions []model.Question
	err := db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("order_num ASC, question_id ASC").
		Find(&questions).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to find questions by lesson", "lesson_id", lessonID, "error", err)
		return nil, translateError("gormContentRepository.FindQuestionsByLesson", err)
	}
	return questions, nil
}

func (r *gormContentRepository) FindQuestionsByLessons(ctx context.Context, db *gorm.DB, lessonIDs []uint) ([]model.Question, error) {
	if len(lessonIDs) == 0 {
		return []model.Question{}, nil
	}
	var questions []model.Question
	err := db.WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Order("lesson_id ASC, order_num ASC, question_id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, translateError("gormContentRepository.FindQuestionsByLessons", err)
	}
	return questions, nil
}

func (r *gormContentRepository) FindQuestionsByIDs(ctx context.Context, db *gorm.DB, questionIDs []uint) ([]model.Question, error) {
	if len(questionIDs) == 0 {
		return []model.Question{}, nil
	}
	var questions []model.Question
	err := db.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Find(&questions).Error
	if err != nil {
		return nil, translateError("gormContentRepository.FindQuestionsByIDs", err)
	}
	return questions, nil
}

func (r *gormContentRepository) FindDrill(ctx context.Context, db *gorm.DB, drillID uint) (*model.Drill, error) {
	var drill model.Drill
	if err := db.WithContext(ctx).First(&drill, "drill_id = ?", drillID).Error; err != nil {
		return nil, translateError("gormContentRepository.FindDrill", err)
	}
	return &drill, nil
}

func (r *gormContentRepository) ListDrills(ctx context.Context, db *gorm.DB) ([]model.Drill, error) {
	var drills []model.Drill
	err := db.WithContext(ctx).
		Order("level_required ASC, drill_id ASC").
		Find(&drills).Error
	if err != nil {
		return nil, translateError("gormContentRepository.ListDrills", err)
	}
	return drills, nil
}
