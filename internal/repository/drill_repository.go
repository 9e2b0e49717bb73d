// internal/repository/drill_repository.go
package repository

import (
	"context"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DrillRepository interface {
	CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.DrillAttempt) error
	// FindLastAttempt は最新の受験を返す。無ければ ErrNotFound
	FindLastAttempt(ctx context.Context, db *gorm.DB, userID uuid.UUID, drillID uint) (*model.DrillAttempt, error)
	StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (map[uint]model.DrillStat, error)
}

type gormDrillRepository struct{}

func NewGormDrillRepository() DrillRepository {
	return &gormDrillRepository{}
}

func (r *gormDrillRepository) CreateAttempt(ctx context.Context, tx *gorm.DB, attempt *model.DrillAttempt) error {
	if err := tx.WithContext(ctx).Create(attempt).Error; err != nil {
		return translateError("gormDrillRepository.CreateAttempt", err)
	}
	return nil
}

func (r *gormDrillRepository) FindLastAttempt(ctx context.Context, db *gorm.DB, userID uuid.UUID, drillID uint) (*model.DrillAttempt, error) {
	var attempt model.DrillAttempt
	err := db.WithContext(ctx).
		Where("user_id = ? AND drill_id = ?", userID, drillID).
		Order("created_at DESC, id DESC").
		First(&attempt).Error
	if err != nil {
		return nil, translateError("gormDrillRepository.FindLastAttempt", err)
	}
	return &attempt, nil
}

func (r *gormDrillRepository) StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (map[uint]model.DrillStat, error) {
	var rows []struct {
		DrillID uint
		Score   int
	}
	err := db.WithContext(ctx).
		Model(&model.DrillAttempt{}).
		Select("drill_id, score").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("gormDrillRepository.StatsByUser", err)
	}

	stats := make(map[uint]model.DrillStat)
	for _, row := range rows {
		s, seen := stats[row.DrillID]
		if !seen {
			score := row.Score
			s = model.DrillStat{DrillID: row.DrillID, LastScore: &score}
		}
		s.AttemptCount++
		stats[row.DrillID] = s
	}
	return stats, nil
}
