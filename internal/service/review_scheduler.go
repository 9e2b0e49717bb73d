// internal/service/review_scheduler.go
package service

import (
	"context"
	"errors"
	"time"

	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"
	"go_4_trade_practice/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewScheduler は復習キューのエントリを管理します。
// 更新系は呼び出し側のトランザクション tx 上で実行する。
type ReviewScheduler interface {
	// Grade はエントリを再スケジュールして保存する。同時更新は後勝ち。
	Grade(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry, isCorrect bool, today time.Time) (*model.ReviewQueueEntry, error)
	// GradeByID は queueID のエントリを読み込み、questionID と一致する場合のみ Grade する。
	GradeByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, queueID, questionID uint, isCorrect bool, today time.Time) (*model.ReviewQueueEntry, error)
	// EnqueueIfAbsent は未登録なら初期値で作成する。既存のエントリは変更しない。
	EnqueueIfAbsent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID, questionID uint, today time.Time) (*model.ReviewQueueEntry, bool, error)
	DueEntries(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) ([]model.ReviewQueueEntry, error)
	Summary(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (*model.ReviewSummary, error)
}

type reviewScheduler struct {
	repo repository.ReviewRepository
}

func NewReviewScheduler(repo repository.ReviewRepository) ReviewScheduler {
	return &reviewScheduler{repo: repo}
}

func (s *reviewScheduler) Grade(ctx context.Context, tx *gorm.DB, entry *model.ReviewQueueEntry, isCorrect bool, today time.Time) (*model.ReviewQueueEntry, error) {
	logger := middleware.GetLogger(ctx).With("queue_id", entry.QueueID, "question_id", entry.QuestionID)

	next := srs.Grade(*entry, isCorrect, today)
	if err := s.repo.UpdateSchedule(ctx, tx, &next); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Review entry disappeared before update")
			return nil, model.NewNotFoundError("復習キューのエントリが見つかりません。")
		}
		logger.Error("Failed to update review entry", "error", err)
		return nil, wrapStorage("復習スケジュールの更新に失敗しました。", err)
	}

	logger.Debug("Review entry graded",
		"is_correct", isCorrect,
		"interval_days", next.IntervalDays,
		"ease_factor", next.EaseFactor,
		"next_review_date", clock.FormatDate(next.NextReviewDate),
	)
	return &next, nil
}

func (s *reviewScheduler) GradeByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, queueID, questionID uint, isCorrect bool, today time.Time) (*model.ReviewQueueEntry, error) {
	entry, err := s.repo.FindByID(ctx, tx, userID, queueID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewNotFoundError("復習キューのエントリが見つかりません。")
		}
		return nil, wrapStorage("復習キューの取得に失敗しました。", err)
	}
	if entry.QuestionID != questionID {
		middleware.GetLogger(ctx).Warn("Queue entry does not belong to the answered question",
			"queue_id", queueID, "entry_question_id", entry.QuestionID, "question_id", questionID)
		return nil, model.NewNotFoundError("指定された問題の復習キューのエントリが見つかりません。")
	}
	return s.Grade(ctx, tx, entry, isCorrect, today)
}

func (s *reviewScheduler) EnqueueIfAbsent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID, questionID uint, today time.Time) (*model.ReviewQueueEntry, bool, error) {
	entry := srs.NewEntry(userID, lessonID, questionID, today)
	created, err := s.repo.InsertIfAbsent(ctx, tx, &entry)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to enqueue review entry", "question_id", questionID, "error", err)
		return nil, false, wrapStorage("復習キューへの追加に失敗しました。", err)
	}
	return &entry, created, nil
}

func (s *reviewScheduler) DueEntries(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) ([]model.ReviewQueueEntry, error) {
	entries, err := s.repo.FindDue(ctx, db, userID, today)
	if err != nil {
		return nil, wrapStorage("復習対象の取得に失敗しました。", err)
	}
	return entries, nil
}

func (s *reviewScheduler) Summary(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (*model.ReviewSummary, error) {
	entries, err := s.repo.FindAllByUser(ctx, db, userID)
	if err != nil {
		return nil, wrapStorage("復習キューの取得に失敗しました。", err)
	}

	summary := &model.ReviewSummary{Total: int64(len(entries)), Date: clock.FormatDate(today)}
	for i := range entries {
		switch srs.Classify(&entries[i], today) {
		case srs.StateDue:
			summary.Due++
		case srs.StateScheduled:
			summary.Scheduled++
		}
	}
	return summary, nil
}
