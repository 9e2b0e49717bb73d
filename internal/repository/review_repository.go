// internal/repository/review_repository.go
package repository

import (
	"context"
	"time"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	// InsertIfAbsent は (user, question) が未登録なら entry を作成する。
	// 既に存在する場合は何も変更せず既存行を entry に読み込み、created=false を返す。
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry) (created bool, err error)
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID, queueID uint) (*model.ReviewQueueEntry, error)
	// FindDue は NextReviewDate <= today のエントリを古い順 (同日は QueueID 順) に返す
	FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) ([]model.ReviewQueueEntry, error)
	FindAllByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.ReviewQueueEntry, error)
	// UpdateSchedule は間隔・係数・復習日を上書きする (後勝ち)
	UpdateSchedule(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) InsertIfAbsent(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry) (bool, error) {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return false, translateError("gormReviewRepository.InsertIfAbsent", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var existing model.ReviewQueueEntry
	err := tx.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", entry.UserID, entry.QuestionID).
		First(&existing).Error
	if err != nil {
		return false, translateError("gormReviewRepository.InsertIfAbsent", err)
	}
	*entry = existing
	return false, nil
}

func (r *gormReviewRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID, queueID uint) (*model.ReviewQueueEntry, error) {
	var entry model.ReviewQueueEntry
	// 他ユーザーのエントリは存在しないものとして扱う
	err := db.WithContext(ctx).
		Where("queue_id = ? AND user_id = ?", queueID, userID).
		First(&entry).Error
	if err != nil {
		return nil, translateError("gormReviewRepository.FindByID", err)
	}
	return &entry, nil
}

func (r *gormReviewRepository) FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) ([]model.ReviewQueueEntry, error) {
	var entries []model.ReviewQueueEntry
	err := db.WithContext(ctx).
		Where("user_id = ? AND next_review_date <= ?", userID, today).
		Order("next_review_date ASC, queue_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translateError("gormReviewRepository.FindDue", err)
	}
	return entries, nil
}

func (r *gormReviewRepository) FindAllByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.ReviewQueueEntry, error) {
	var entries []model.ReviewQueueEntry
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_review_date ASC, queue_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translateError("gormReviewRepository.FindAllByUser", err)
	}
	return entries, nil
}

func (r *gormReviewRepository) UpdateSchedule(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry) error {
	result := tx.WithContext(ctx).
		Model(&model.ReviewQueueEntry{}).
		Where("queue_id = ? AND user_id = ?", entry.QueueID, entry.UserID).
		Updates(map[string]interface{}{
			"interval_days":    entry.IntervalDays,
			"ease_factor":      entry.EaseFactor,
			"next_review_date": entry.NextReviewDate,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return translateError("gormReviewRepository.UpdateSchedule", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
