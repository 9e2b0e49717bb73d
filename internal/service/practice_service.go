// internal/service/practice_service.go
package service

import (
	"context"
	"math/rand"
	"sort"
	"sync"
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

type PracticeService interface {
	BuildDailySession(ctx context.Context, userID uuid.UUID) (*model.DailySession, error)
	SubmitDailySession(ctx context.Context, userID uuid.UUID, answers []model.SessionAnswer) (*model.SessionResult, error)
	GetReviewSummary(ctx context.Context, userID uuid.UUID) (*model.ReviewSummary, error)
}

// Shuffler は補充問題の並び替えに使う乱数源です。テストでは固定シードを渡す。
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedRand は *rand.Rand を複数リクエストから使えるようにしたもの
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}

type practiceService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	masteryRepo repository.MasteryRepository
	scheduler   ReviewScheduler
	clock       clock.Clock
	loc         *time.Location
	quota       int
	shuffler    Shuffler
	locks       *keylock.Locker
}

func NewPracticeService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	masteryRepo repository.MasteryRepository,
	scheduler ReviewScheduler,
	clk clock.Clock,
	shuffler Shuffler,
	cfg *config.Config,
) PracticeService {
	if clk == nil {
		clk = clock.System{}
	}
	quota := model.DefaultDailyQuota
	loc := time.UTC
	var seed int64
	if cfg != nil {
		if cfg.App.DailyQuota > 0 {
			quota = cfg.App.DailyQuota
		}
		loc = cfg.Location()
		seed = int64(cfg.App.BackfillSeed)
	}
	if shuffler == nil {
		shuffler = NewShuffler(seed)
	}
	return &practiceService{
		db:          db,
		contentRepo: contentRepo,
		masteryRepo: masteryRepo,
		scheduler:   scheduler,
		clock:       clk,
		loc:         loc,
		quota:       quota,
		shuffler:    shuffler,
		locks:       keylock.New(),
	}
}

func (s *practiceService) BuildDailySession(ctx context.Context, userID uuid.UUID) (*model.DailySession, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	today := clock.Today(s.clock, s.loc)

	due, err := s.scheduler.DueEntries(ctx, s.db, userID, today)
	if err != nil {
		logger.Error("Failed to load due reviews", "error", err)
		return nil, err
	}
	totalDue := len(due)
	if len(due) > s.quota {
		due = due[:s.quota]
	}

	session := &model.DailySession{
		Date:      clock.FormatDate(today),
		Questions: make([]model.SessionQuestion, 0, s.quota),
		TotalDue:  totalDue,
	}

	selected := make(map[uint]struct{}, s.quota)
	if len(due) > 0 {
		ids := make([]uint, 0, len(due))
		for _, e := range due {
			ids = append(ids, e.QuestionID)
		}
		questions, err := s.contentRepo.FindQuestionsByIDs(ctx, s.db, ids)
		if err != nil {
			logger.Error("Failed to load due questions", "error", err)
			return nil, wrapStorage("問題の取得に失敗しました。", err)
		}
		byID := make(map[uint]*model.Question, len(questions))
		for i := range questions {
			byID[questions[i].QuestionID] = &questions[i]
		}

		for i := range due {
			q, ok := byID[due[i].QuestionID]
			if !ok {
				// 問題が削除されたエントリは出題しない
				logger.Warn("Due review refers to a missing question", "queue_id", due[i].QueueID, "question_id", due[i].QuestionID)
				continue
			}
			queueID := due[i].QueueID
			session.Questions = append(session.Questions, model.SessionQuestion{
				QueueID:      &queueID,
				Source:       model.SourceReview,
				QuizQuestion: model.NewQuizQuestion(q),
			})
			selected[q.QuestionID] = struct{}{}
		}
	}
	reviews := len(session.Questions)

	if len(session.Questions) < s.quota {
		backfill, err := s.backfill(ctx, userID, selected, s.quota-len(session.Questions))
		if err != nil {
			return nil, err
		}
		session.Questions = append(session.Questions, backfill...)
	}

	logger.Info("Daily session built",
		"date", session.Date,
		"total_due", session.TotalDue,
		"review", reviews,
		"backfill", len(session.Questions)-reviews,
	)
	return session, nil
}

// backfill はマスタリーが合格点未満のレッスンから、スコアの低い順 (同点は無作為) に最大 n 問を選びます。
func (s *practiceService) backfill(ctx context.Context, userID uuid.UUID, exclude map[uint]struct{}, n int) ([]model.SessionQuestion, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	weak, err := s.masteryRepo.FindBelow(ctx, s.db, userID, model.PassingScore)
	if err != nil {
		logger.Error("Failed to load weak lessons", "error", err)
		return nil, wrapStorage("マスタリースコアの取得に失敗しました。", err)
	}
	if len(weak) == 0 {
		return nil, nil
	}

	scoreByLesson := make(map[uint]int, len(weak))
	lessonIDs := make([]uint, 0, len(weak))
	for _, m := range weak {
		scoreByLesson[m.LessonID] = m.Score
		lessonIDs = append(lessonIDs, m.LessonID)
	}

	questions, err := s.contentRepo.FindQuestionsByLessons(ctx, s.db, lessonIDs)
	if err != nil {
		logger.Error("Failed to load backfill questions", "error", err)
		return nil, wrapStorage("問題の取得に失敗しました。", err)
	}

	candidates := make([]*model.Question, 0, len(questions))
	for i := range questions {
		if _, ok := exclude[questions[i].QuestionID]; ok {
			continue
		}
		candidates = append(candidates, &questions[i])
	}

	s.shuffler.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return scoreByLesson[candidates[i].LessonID] < scoreByLesson[candidates[j].LessonID]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]model.SessionQuestion, 0, len(candidates))
	for _, q := range candidates {
		out = append(out, model.SessionQuestion{
			Source:       model.SourceBackfill,
			QuizQuestion: model.NewQuizQuestion(q),
		})
	}
	return out, nil
}

func (s *practiceService) SubmitDailySession(ctx context.Context, userID uuid.UUID, answers []model.SessionAnswer) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if len(answers) == 0 {
		return nil, model.NewValidationError("回答を1件以上指定してください。", "answers")
	}

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.contentRepo.FindQuestionsByIDs(ctx, s.db, ids)
	if err != nil {
		logger.Error("Failed to load session questions", "error", err)
		return nil, wrapStorage("問題の取得に失敗しました。", err)
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].QuestionID] = &questions[i]
	}

	unlock := s.locks.Lock(userID.String())
	defer unlock()

	today := clock.Today(s.clock, s.loc)
	result := &model.SessionResult{Results: make([]model.SessionItemResult, 0, len(answers))}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[uint]struct{}, len(answers))
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
			item := model.SessionItemResult{
				QuestionID:    q.QuestionID,
				QueueID:       a.QueueID,
				IsCorrect:     isCorrect,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			}

			switch {
			case a.QueueID != nil:
				entry, err := s.scheduler.GradeByID(ctx, tx, userID, *a.QueueID, q.QuestionID, isCorrect, today)
				if err != nil {
					return err
				}
				setSchedule(&item, entry)
			case !isCorrect:
				// 補充問題の誤答はキューに無ければ追加する
				entry, created, err := s.scheduler.EnqueueIfAbsent(ctx, tx, userID, q.LessonID, q.QuestionID, today)
				if err != nil {
					return err
				}
				if created {
					queueID := entry.QueueID
					item.QueueID = &queueID
					setSchedule(&item, entry)
				}
			}

			if isCorrect {
				result.Correct++
			}
			result.Results = append(result.Results, item)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Daily session submission rolled back", "error", err)
		return nil, err
	}

	result.Total = len(result.Results)
	result.Score = grading.Percent(result.Correct, result.Total)

	logger.Info("Daily session submitted", "score", result.Score, "correct", result.Correct, "total", result.Total)
	return result, nil
}

func (s *practiceService) GetReviewSummary(ctx context.Context, userID uuid.UUID) (*model.ReviewSummary, error) {
	today := clock.Today(s.clock, s.loc)
	summary, err := s.scheduler.Summary(ctx, s.db, userID, today)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to build review summary", "user_id", userID, "error", err)
		return nil, err
	}
	return summary, nil
}

func setSchedule(item *model.SessionItemResult, entry *model.ReviewQueueEntry) {
	interval := entry.IntervalDays
	next := clock.FormatDate(entry.NextReviewDate)
	item.IntervalDays = &interval
	item.NextReviewDate = &next
}
