// internal/repository/quiz_repository.go
package repository

import (
	"context"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error
	CreateAnswers(ctx context.Context, tx *gorm.DB, answers []model.QuizAttemptAnswer) error
	// RecentScores は新しい順に最大 limit 件のスコアを返す
	RecentScores(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint, limit int) ([]int, error)
	History(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint, limit int) ([]model.QuizAttempt, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error {
	if err := tx.WithContext(ctx).Create(attempt).Error; err != nil {
		return translateError("gormQuizRepository.CreateAttempt", err)
	}
	return nil
}

func (r *gormQuizRepository) CreateAnswers(ctx context.Context, tx *gorm.DB, answers []model.QuizAttemptAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&answers).Error; err != nil {
		return translateError("gormQuizRepository.CreateAnswers", err)
	}
	return nil
}

func (r *gormQuizRepository) RecentScores(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint, limit int) ([]int, error) {
	var scores []int
	err := db.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Pluck("score", &scores).Error
	if err != nil {
		return nil, translateError("gormQuizRepository.RecentScores", err)
	}
	return scores, nil
}

func (r *gormQuizRepository) History(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, translateError("gormQuizRepository.History", err)
	}
	return attempts, nil
}
