// internal/service/quiz_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/grading"
	"go_4_trade_practice/internal/keylock"
	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	GetQuizQuestions(ctx context.Context, lessonID uint) ([]model.QuizQuestion, error)
	SubmitQuiz(ctx context.Context, userID uuid.UUID, lessonID uint, answers []model.QuizAnswer) (*model.QuizResult, error)
	GetQuizHistory(ctx context.Context, userID uuid.UUID, lessonID uint, limit int) ([]model.QuizAttempt, error)
}

type quizService struct {
	db           *gorm.DB
	contentRepo  repository.ContentRepository
	quizRepo     repository.QuizRepository
	progressRepo repository.ProgressRepository
	mastery      MasteryTracker
	scheduler    ReviewScheduler
	clock        clock.Clock
	loc          *time.Location
	historyLimit int
	locks        *keylock.Locker
}

func NewQuizService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	quizRepo repository.QuizRepository,
	progressRepo repository.ProgressRepository,
	mastery MasteryTracker,
	scheduler ReviewScheduler,
	clk clock.Clock,
	cfg *config.Config,
) QuizService {
	if clk == nil {
		clk = clock.System{}
	}
	historyLimit := config.DefaultHistoryLimit
	loc := time.UTC
	if cfg != nil {
		if cfg.App.HistoryLimit > 0 {
			historyLimit = cfg.App.HistoryLimit
		}
		loc = cfg.Location()
	}
	return &quizService{
		db:           db,
		contentRepo:  contentRepo,
		quizRepo:     quizRepo,
		progressRepo: progressRepo,
		mastery:      mastery,
		scheduler:    scheduler,
		clock:        clk,
		loc:          loc,
		historyLimit: historyLimit,
		locks:        keylock.New(),
	}
}

func (s *quizService) GetQuizQuestions(ctx context.Context, lessonID uint) ([]model.QuizQuestion, error) {
	questions, err := s.loadLessonQuestions(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	out := make([]model.QuizQuestion, 0, len(questions))
	for i := range questions {
		out = append(out, model.NewQuizQuestion(&questions[i]))
	}
	return out, nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, userID uuid.UUID, lessonID uint, answers []model.QuizAnswer) (*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "lesson_id", lessonID)

	if len(answers) == 0 {
		return nil, model.NewValidationError("回答を1件以上指定してください。", "answers")
	}

	questions, err := s.loadLessonQuestions(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	results, correct := evaluateQuiz(questions, answers)
	total := len(questions)
	score := grading.Percent(correct, total)
	passed := score >= model.PassingScore

	// 同じユーザー・レッスンの提出は直列化する (直近スコアの読み取りとマスタリー更新を一貫させるため)
	unlock := s.locks.Lock(fmt.Sprintf("%s:%d", userID, lessonID))
	defer unlock()

	now := s.clock.Now()
	today := clock.Today(s.clock, s.loc)

	var (
		attempt model.QuizAttempt
		mastery *model.MasteryScore
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt = model.QuizAttempt{
			UserID:         userID,
			LessonID:       lessonID,
			Score:          score,
			TotalQuestions: total,
			CorrectCount:   correct,
			Passed:         passed,
			CreatedAt:      now,
		}
		if err := s.quizRepo.CreateAttempt(ctx, tx, &attempt); err != nil {
			logger.Error("Failed to create quiz attempt", "error", err)
			return wrapStorage("受験記録の保存に失敗しました。", err)
		}

		rows := make([]model.QuizAttemptAnswer, 0, len(results))
		for _, r := range results {
			rows = append(rows, model.QuizAttemptAnswer{
				AttemptID:  attempt.ID,
				QuestionID: r.QuestionID,
				UserAnswer: r.UserAnswer,
				IsCorrect:  r.IsCorrect,
			})
		}
		if err := s.quizRepo.CreateAnswers(ctx, tx, rows); err != nil {
			logger.Error("Failed to create quiz answers", "attempt_id", attempt.ID, "error", err)
			return wrapStorage("回答の保存に失敗しました。", err)
		}

		// 今回の受験を含む直近のスコア
		recent, err := s.quizRepo.RecentScores(ctx, tx, userID, lessonID, model.MasteryWindow)
		if err != nil {
			logger.Error("Failed to load recent scores", "error", err)
			return wrapStorage("受験履歴の取得に失敗しました。", err)
		}
		mastery, err = s.mastery.UpdateMastery(ctx, tx, userID, lessonID, recent)
		if err != nil {
			return err
		}

		if err := s.progressRepo.MarkCompleted(ctx, tx, userID, lessonID, now); err != nil {
			logger.Error("Failed to mark lesson completed", "error", err)
			return wrapStorage("学習進捗の更新に失敗しました。", err)
		}

		if passed {
			return nil
		}
		for _, r := range results {
			if r.IsCorrect {
				continue
			}
			if _, _, err := s.scheduler.EnqueueIfAbsent(ctx, tx, userID, lessonID, r.QuestionID, today); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Quiz submission rolled back", "error", err)
		return nil, err
	}

	logger.Info("Quiz submitted",
		"attempt_id", attempt.ID,
		"score", score,
		"passed", passed,
		"mastery_score", mastery.Score,
	)

	return &model.QuizResult{
		AttemptID:    attempt.ID,
		Score:        score,
		Passed:       passed,
		CorrectCount: correct,
		Total:        total,
		MasteryScore: mastery.Score,
		Results:      results,
	}, nil
}

func (s *quizService) GetQuizHistory(ctx context.Context, userID uuid.UUID, lessonID uint, limit int) ([]model.QuizAttempt, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > config.MaxHistoryLimit {
		limit = config.MaxHistoryLimit
	}

	attempts, err := s.quizRepo.History(ctx, s.db, userID, lessonID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load quiz history", "user_id", userID, "lesson_id", lessonID, "error", err)
		return nil, wrapStorage("受験履歴の取得に失敗しました。", err)
	}
	return attempts, nil
}

func (s *quizService) loadLessonQuestions(ctx context.Context, lessonID uint) ([]model.Question, error) {
	questions, err := s.contentRepo.FindQuestionsByLesson(ctx, s.db, lessonID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load lesson questions", "lesson_id", lessonID, "error", err)
		return nil, wrapStorage("問題の取得に失敗しました。", err)
	}
	if len(questions) == 0 {
		return nil, model.NewNotFoundError("レッスンに問題が登録されていません。")
	}
	return questions, nil
}

// evaluateQuiz は提出順に採点します。レッスン外の問題は無視し、
// 同じ問題への2件目以降の回答は採点しない。
func evaluateQuiz(questions []model.Question, answers []model.QuizAnswer) ([]model.QuestionResult, int) {
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].QuestionID] = &questions[i]
	}

	results := make([]model.QuestionResult, 0, len(answers))
	seen := make(map[uint]struct{}, len(answers))
	correct := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		if _, dup := seen[a.QuestionID]; dup {
			continue
		}
		seen[a.QuestionID] = struct{}{}

		isCorrect := grading.Evaluate(q.CorrectAnswer, a.Answer)
		if isCorrect {
			correct++
		}
		results = append(results, model.QuestionResult{
			QuestionID:    q.QuestionID,
			UserAnswer:    a.Answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}
	return results, correct
}
