package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_trade_practice/internal/cache"
	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"

	"gorm.io/gorm"
)

// cachedContentRepository はコンテンツの読み取りをキャッシュします。
// コンテンツは不変なので無効化はせず TTL に任せる。
// キャッシュの障害は読み取りを失敗させず、DB にフォールバックする。
type cachedContentRepository struct {
	next  ContentRepository
	cache cache.Cache
}

func NewCachedContentRepository(next ContentRepository, c cache.Cache) ContentRepository {
	if c == nil {
		return next
	}
	return &cachedContentRepository{next: next, cache: c}
}

func (r *cachedContentRepository) FindQuestionsByLesson(ctx context.Context, db *gorm.DB, lessonID uint) ([]model.Question, error) {
	key := fmt.Sprintf("lesson:%d:questions", lessonID)
	var questions []model.Question
	if r.load(ctx, key, &questions) {
		return questions, nil
	}
	questions, err := r.next.FindQuestionsByLesson(ctx, db, lessonID)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, questions)
	return questions, nil
}

func (r *cachedContentRepository) FindQuestionsByLessons(ctx context.Context, db *gorm.DB, lessonIDs []uint) ([]model.Question, error) {
	return r.next.FindQuestionsByLessons(ctx, db, lessonIDs)
}

func (r *cachedContentRepository) FindQuestionsByIDs(ctx context.Context, db *gorm.DB, questionIDs []uint) ([]model.Question, error) {
	return r.next.FindQuestionsByIDs(ctx, db, questionIDs)
}

func (r *cachedContentRepository) FindDrill(ctx context.Context, db *gorm.DB, drillID uint) (*model.Drill, error) {
	key := fmt.Sprintf("drill:%d", drillID)
	var drill model.Drill
	if r.load(ctx, key, &drill) {
		return &drill, nil
	}
	found, err := r.next.FindDrill(ctx, db, drillID)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, found)
	return found, nil
}

func (r *cachedContentRepository) ListDrills(ctx context.Context, db *gorm.DB) ([]model.Drill, error) {
	const key = "drills"
	var drills []model.Drill
	if r.load(ctx, key, &drills) {
		return drills, nil
	}
	drills, err := r.next.ListDrills(ctx, db)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, drills)
	return drills, nil
}

func (r *cachedContentRepository) load(ctx context.Context, key string, dst any) bool {
	err := r.cache.Get(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		middleware.GetLogger(ctx).Warn("Content cache read failed", "key", key, "error", err)
	}
	return false
}

func (r *cachedContentRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.Set(ctx, key, value); err != nil {
		middleware.GetLogger(ctx).Warn("Content cache write failed", "key", key, "error", err)
	}
}
