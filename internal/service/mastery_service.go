// internal/service/mastery_service.go
package service

import (
	"context"
	"fmt"
	"math"

	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasteryTracker は (user, lesson) ごとのマスタリースコアを管理します。
type MasteryTracker interface {
	// UpdateMastery は呼び出し側で保存済みの直近スコア (新しい順, 最大3件) から
	// スコアを再計算して upsert する。tx は呼び出し側のトランザクション。
	UpdateMastery(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, latestAttempts []int) (*model.MasteryScore, error)
}

type masteryTracker struct {
	repo repository.MasteryRepository
}

func NewMasteryTracker(repo repository.MasteryRepository) MasteryTracker {
	return &masteryTracker{repo: repo}
}

func (m *masteryTracker) UpdateMastery(ctx context.Context, tx *gorm.DB, userID uuid.UUID, lessonID uint, latestAttempts []int) (*model.MasteryScore, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "lesson_id", lessonID)

	score, err := ComputeMastery(latestAttempts)
	if err != nil {
		return nil, err
	}

	row, err := m.repo.Upsert(ctx, tx, userID, lessonID, score)
	if err != nil {
		logger.Error("Failed to upsert mastery score", "error", err)
		return nil, wrapStorage("マスタリースコアの更新に失敗しました。", err)
	}

	logger.Debug("Mastery updated", "score", row.Score, "attempts_count", row.AttemptsCount, "window", latestAttempts)
	return row, nil
}

// ComputeMastery は 1〜3 件のスコア (0〜100) の平均を四捨五入して返します。
// 減衰はなく、古い受験は窓から外れるだけ。
func ComputeMastery(latestAttempts []int) (int, error) {
	if len(latestAttempts) == 0 || len(latestAttempts) > model.MasteryWindow {
		return 0, model.NewValidationError(fmt.Sprintf("直近の受験スコアは1〜%d件で指定してください。", model.MasteryWindow), "latest_attempts")
	}
	sum := 0
	for _, s := range latestAttempts {
		if s < 0 || s > 100 {
			return 0, model.NewValidationError("受験スコアは0〜100の範囲で指定してください。", "latest_attempts")
		}
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(latestAttempts)))), nil
}
