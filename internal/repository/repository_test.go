package repository

import (
	"context"
	"testing"
	"time"

	"go_4_trade_practice/internal/cache"
	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

var today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestReviewRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()

	first := &model.ReviewQueueEntry{UserID: userID, LessonID: 1, QuestionID: 10, IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: today.AddDate(0, 0, 1)}
	created, err := repo.InsertIfAbsent(ctx, db, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.QueueID)

	// 進行中のスケジュールを変更してから同じ問題を再投入しても上書きされない
	first.IntervalDays = 7
	first.EaseFactor = 2.7
	first.NextReviewDate = today.AddDate(0, 0, 7)
	require.NoError(t, repo.UpdateSchedule(ctx, db, first))

	second := &model.ReviewQueueEntry{UserID: userID, LessonID: 1, QuestionID: 10, IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: today.AddDate(0, 0, 1)}
	created, err = repo.InsertIfAbsent(ctx, db, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.QueueID, second.QueueID)
	assert.Equal(t, 7, second.IntervalDays)
	assert.InDelta(t, 2.7, second.EaseFactor, 1e-9)

	var count int64
	require.NoError(t, db.Model(&model.ReviewQueueEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 別ユーザーは独立
	other := &model.ReviewQueueEntry{UserID: uuid.New(), LessonID: 1, QuestionID: 10, IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: today}
	created, err = repo.InsertIfAbsent(ctx, db, other)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestReviewRepository_FindDueOrdering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()

	dates := []time.Time{
		today,                   // q1
		today.AddDate(0, 0, -2), // q2
		today.AddDate(0, 0, 1),  // q3 (未来)
		today.AddDate(0, 0, -2), // q4 (q2 と同日)
	}
	for i, d := range dates {
		e := &model.ReviewQueueEntry{UserID: userID, LessonID: 1, QuestionID: uint(i + 1), IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: d}
		_, err := repo.InsertIfAbsent(ctx, db, e)
		require.NoError(t, err)
	}
	_, err := repo.InsertIfAbsent(ctx, db, &model.ReviewQueueEntry{UserID: uuid.New(), LessonID: 1, QuestionID: 1, IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: today})
	require.NoError(t, err)

	due, err := repo.FindDue(ctx, db, userID, today)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, []uint{2, 4, 1}, []uint{due[0].QuestionID, due[1].QuestionID, due[2].QuestionID})
	assert.True(t, due[0].NextReviewDate.Equal(today.AddDate(0, 0, -2)))

	all, err := repo.FindAllByUser(ctx, db, userID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReviewRepository_FindByIDScopedToUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	owner := uuid.New()

	e := &model.ReviewQueueEntry{UserID: owner, LessonID: 1, QuestionID: 5, IntervalDays: 1, EaseFactor: 2.5, NextReviewDate: today}
	_, err := repo.InsertIfAbsent(ctx, db, e)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, db, owner, e.QueueID)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.QuestionID)

	_, err = repo.FindByID(ctx, db, uuid.New(), e.QueueID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	stranger := *got
	stranger.UserID = uuid.New()
	assert.ErrorIs(t, repo.UpdateSchedule(ctx, db, &stranger), model.ErrNotFound)
}

func TestMasteryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMasteryRepository()
	userID := uuid.New()

	m, err := repo.Upsert(ctx, db, userID, 3, 75)
	require.NoError(t, err)
	assert.Equal(t, 75, m.Score)
	assert.Equal(t, 1, m.AttemptsCount)

	m, err = repo.Upsert(ctx, db, userID, 3, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, m.Score)
	assert.Equal(t, 2, m.AttemptsCount)

	_, err = repo.Upsert(ctx, db, userID, 4, 90)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, db, userID, 5, 10)
	require.NoError(t, err)

	weak, err := repo.FindBelow(ctx, db, userID, model.PassingScore)
	require.NoError(t, err)
	require.Len(t, weak, 2)
	assert.Equal(t, uint(5), weak[0].LessonID)
	assert.Equal(t, uint(3), weak[1].LessonID)

	_, err = repo.Find(ctx, db, uuid.New(), 3)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestQuizRepository_RecentScoresAndHistory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormQuizRepository()
	userID := uuid.New()

	for _, score := range []int{10, 20, 30, 40} {
		a := &model.QuizAttempt{UserID: userID, LessonID: 1, Score: score, TotalQuestions: 10, CorrectCount: score / 10}
		require.NoError(t, repo.CreateAttempt(ctx, db, a))
		require.NoError(t, repo.CreateAnswers(ctx, db, []model.QuizAttemptAnswer{{AttemptID: a.ID, QuestionID: 1, UserAnswer: "x"}}))
	}
	require.NoError(t, repo.CreateAttempt(ctx, db, &model.QuizAttempt{UserID: userID, LessonID: 2, Score: 99}))

	scores, err := repo.RecentScores(ctx, db, userID, 1, model.MasteryWindow)
	require.NoError(t, err)
	assert.Equal(t, []int{40, 30, 20}, scores)

	history, err := repo.History(ctx, db, userID, 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, 40, history[0].Score)

	var answers int64
	require.NoError(t, db.Model(&model.QuizAttemptAnswer{}).Count(&answers).Error)
	assert.Equal(t, int64(4), answers)
}

func TestProgressRepository_MarkCompleted(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	userID := uuid.New()

	require.NoError(t, repo.MarkCompleted(ctx, db, userID, 1, today))
	require.NoError(t, repo.MarkCompleted(ctx, db, userID, 1, today.Add(time.Hour)))

	p, err := repo.Find(ctx, db, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, p.Status)
	require.NotNil(t, p.CompletedAt)
	assert.True(t, p.CompletedAt.Equal(today.Add(time.Hour)))

	var count int64
	require.NoError(t, db.Model(&model.LessonProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDrillRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormDrillRepository()
	userID := uuid.New()

	_, err := repo.FindLastAttempt(ctx, db, userID, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	input := model.DrillInput{Zones: []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 1, PriceTo: 2}}}
	for _, score := range []int{40, 100} {
		require.NoError(t, repo.CreateAttempt(ctx, db, &model.DrillAttempt{
			UserID:    userID,
			DrillID:   1,
			UserInput: datatypes.NewJSONType(input),
			Score:     score,
			Feedback:  datatypes.NewJSONSlice([]model.ElementFeedback{{Element: "support_zone_1", Correct: score == 100}}),
		}))
	}
	require.NoError(t, repo.CreateAttempt(ctx, db, &model.DrillAttempt{UserID: userID, DrillID: 2, Score: 0}))

	last, err := repo.FindLastAttempt(ctx, db, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, last.Score)
	assert.Equal(t, input, last.UserInput.Data())
	require.Len(t, last.Feedback, 1)
	assert.True(t, last.Feedback[0].Correct)

	stats, err := repo.StatsByUser(ctx, db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats[1].AttemptCount)
	assert.Equal(t, 100, *stats[1].LastScore)
	assert.Equal(t, int64(1), stats[2].AttemptCount)
	_, ok := stats[3]
	assert.False(t, ok)
}

func seedContent(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Lesson{LessonID: 1, Title: "Support & Resistance", OrderNum: 1}).Error)
	require.NoError(t, db.Create(&[]model.Question{
		{QuestionID: 2, LessonID: 1, Kind: model.KindTrueFalse, Prompt: "b", CorrectAnswer: "true", OrderNum: 2},
		{QuestionID: 1, LessonID: 1, Kind: model.KindMultipleChoice, Prompt: "a", Options: datatypes.NewJSONSlice([]string{"x", "y"}), CorrectAnswer: "x", OrderNum: 1},
	}).Error)
	require.NoError(t, db.Create(&model.Drill{
		DrillID:       7,
		Title:         "Find support",
		LevelRequired: 1,
		ChartData:     datatypes.NewJSONSlice([]model.Candle{{Time: 1, Open: 100, High: 105, Low: 98, Close: 104}}),
		AnswerSet:     datatypes.NewJSONType(model.AnswerSet{Zones: []model.AnswerZone{{Type: model.ZoneSupport, PriceFrom: 98, PriceTo: 100}}}),
		Explanation:   datatypes.NewJSONSlice([]string{"step 1"}),
	}).Error)
}

func TestContentRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedContent(t, db)
	repo := NewGormContentRepository()

	qs, err := repo.FindQuestionsByLesson(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, uint(1), qs[0].QuestionID)
	assert.Equal(t, []string{"x", "y"}, []string(qs[0].Options))

	qs, err = repo.FindQuestionsByLesson(ctx, db, 99)
	require.NoError(t, err)
	assert.Empty(t, qs)

	d, err := repo.FindDrill(ctx, db, 7)
	require.NoError(t, err)
	assert.Len(t, d.AnswerSet.Data().Zones, 1)

	_, err = repo.FindDrill(ctx, db, 8)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// memCache はテスト用のインメモリ Cache
type memCache struct {
	inner map[string]any
}

func (m *memCache) Get(_ context.Context, key string, dst any) error {
	v, ok := m.inner[key]
	if !ok {
		return cache.ErrMiss
	}
	switch d := dst.(type) {
	case *[]model.Question:
		*d = v.([]model.Question)
	case *model.Drill:
		*d = *v.(*model.Drill)
	case *[]model.Drill:
		*d = v.([]model.Drill)
	}
	return nil
}

func (m *memCache) Set(_ context.Context, key string, value any) error {
	m.inner[key] = value
	return nil
}

func TestCachedContentRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedContent(t, db)
	c := &memCache{inner: map[string]any{}}
	repo := NewCachedContentRepository(NewGormContentRepository(), c)

	first, err := repo.FindQuestionsByLesson(ctx, db, 1)
	require.NoError(t, err)
	assert.Contains(t, c.inner, "lesson:1:questions")

	// DB から消えてもキャッシュから返る
	require.NoError(t, db.Where("1 = 1").Delete(&model.Question{}).Error)
	second, err := repo.FindQuestionsByLesson(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = repo.FindDrill(ctx, db, 7)
	require.NoError(t, err)
	_, err = repo.FindDrill(ctx, db, 7)
	require.NoError(t, err)
	assert.Contains(t, c.inner, "drill:7")

	_, err = repo.FindDrill(ctx, db, 8)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NotContains(t, c.inner, "drill:8")
}
