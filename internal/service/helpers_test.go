// internal/service/helpers_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// トランザクション中に別接続から読めないよう1本に制限
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

var (
	testNow   = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	testToday = clock.DateOf(testNow)
	testClock = clock.Fixed{T: testNow}
)

func testConfig() *config.Config {
	cfg := &config.Config{
		App: config.AppConfig{
			DailyQuota:   5,
			HistoryLimit: 10,
			Timezone:     "UTC",
			BackfillSeed: 42,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// seedLesson はレッスンと n 問の問題を作成し、問題を返します。正解は "a<問題ID>"。
func seedLesson(t *testing.T, db *gorm.DB, lessonID uint, n int) []model.Question {
	t.Helper()
	require.NoError(t, db.Create(&model.Lesson{LessonID: lessonID, Title: fmt.Sprintf("Lesson %d", lessonID), OrderNum: int(lessonID)}).Error)

	questions := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		qid := lessonID*100 + uint(i)
		questions = append(questions, model.Question{
			QuestionID:    qid,
			LessonID:      lessonID,
			Kind:          model.KindMultipleChoice,
			Prompt:        fmt.Sprintf("Question %d", qid),
			CorrectAnswer: fmt.Sprintf("a%d", qid),
			Explanation:   fmt.Sprintf("Explanation %d", qid),
			OrderNum:      i,
		})
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

// answersFor は先頭 correct 問だけ正解する回答を作ります。
func answersFor(questions []model.Question, correct int) []model.QuizAnswer {
	answers := make([]model.QuizAnswer, 0, len(questions))
	for i, q := range questions {
		ans := "wrong"
		if i < correct {
			ans = q.CorrectAnswer
		}
		answers = append(answers, model.QuizAnswer{QuestionID: q.QuestionID, Answer: ans})
	}
	return answers
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
