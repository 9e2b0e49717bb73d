// internal/service/drill_service.go
package service

import (
	"context"
	"errors"

	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/grading"
	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DrillService interface {
	ListDrills(ctx context.Context, userID uuid.UUID) ([]model.DrillListItem, error)
	GetDrill(ctx context.Context, userID uuid.UUID, drillID uint) (*model.DrillDetail, error)
	SubmitDrill(ctx context.Context, userID uuid.UUID, drillID uint, req *model.SubmitDrillRequest) (*model.DrillResult, error)
}

type drillService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	drillRepo   repository.DrillRepository
	clock       clock.Clock
}

func NewDrillService(db *gorm.DB, contentRepo repository.ContentRepository, drillRepo repository.DrillRepository, clk clock.Clock) DrillService {
	if clk == nil {
		clk = clock.System{}
	}
	return &drillService{
		db:          db,
		contentRepo: contentRepo,
		drillRepo:   drillRepo,
		clock:       clk,
	}
}

func (s *drillService) ListDrills(ctx context.Context, userID uuid.UUID) ([]model.DrillListItem, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	drills, err := s.contentRepo.ListDrills(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list drills", "error", err)
		return nil, wrapStorage("ドリル一覧の取得に失敗しました。", err)
	}
	stats, err := s.drillRepo.StatsByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load drill stats", "error", err)
		return nil, wrapStorage("ドリルの受験状況の取得に失敗しました。", err)
	}

	items := make([]model.DrillListItem, 0, len(drills))
	for _, d := range drills {
		item := model.DrillListItem{
			DrillID:       d.DrillID,
			Title:         d.Title,
			Description:   d.Description,
			LevelRequired: d.LevelRequired,
			Difficulty:    d.Difficulty,
			Tags:          d.Tags,
		}
		if st, ok := stats[d.DrillID]; ok {
			item.AttemptCount = st.AttemptCount
			item.LastScore = st.LastScore
		}
		items = append(items, item)
	}
	return items, nil
}

// GetDrill はドリルと直近の受験を返します。解答と解説は一度でも提出した後にのみ含める。
func (s *drillService) GetDrill(ctx context.Context, userID uuid.UUID, drillID uint) (*model.DrillDetail, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "drill_id", drillID)

	var (
		drill *model.Drill
		last  *model.DrillAttempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.loadDrill(gctx, drillID)
		if err != nil {
			return err
		}
		drill = d
		return nil
	})
	g.Go(func() error {
		a, err := s.drillRepo.FindLastAttempt(gctx, s.db, userID, drillID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil
			}
			logger.Error("Failed to load last drill attempt", "error", err)
			return wrapStorage("ドリルの受験履歴の取得に失敗しました。", err)
		}
		last = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &model.DrillDetail{
		DrillID:       drill.DrillID,
		Title:         drill.Title,
		Description:   drill.Description,
		LevelRequired: drill.LevelRequired,
		Difficulty:    drill.Difficulty,
		Tags:          drill.Tags,
		ChartData:     drill.ChartData,
		Hint1:         drill.Hint1,
		Hint2:         drill.Hint2,
		LastAttempt:   last,
	}
	if last != nil {
		answerSet := drill.AnswerSet.Data()
		detail.AnswerSet = &answerSet
		detail.Explanation = drill.Explanation
	}
	return detail, nil
}

func (s *drillService) SubmitDrill(ctx context.Context, userID uuid.UUID, drillID uint, req *model.SubmitDrillRequest) (*model.DrillResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "drill_id", drillID)

	if req == nil {
		return nil, model.NewValidationError("リクエストが空です。", "")
	}
	if err := grading.ValidateHints(req.HintsUsed); err != nil {
		return nil, err
	}
	if err := grading.ValidateInput(req.Input); err != nil {
		return nil, err
	}

	drill, err := s.loadDrill(ctx, drillID)
	if err != nil {
		return nil, err
	}

	answerSet := drill.AnswerSet.Data()
	graded := grading.GradeGeometry(answerSet.Zones, answerSet.Points, req.Input.Zones, req.Input.Points)

	attempt := &model.DrillAttempt{
		UserID:    userID,
		DrillID:   drillID,
		UserInput: datatypes.NewJSONType(req.Input),
		Score:     graded.Score,
		Feedback:  datatypes.NewJSONSlice(graded.Feedback),
		HintsUsed: req.HintsUsed,
		Revealed:  req.Revealed,
		CreatedAt: s.clock.Now(),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.drillRepo.CreateAttempt(ctx, tx, attempt); err != nil {
			logger.Error("Failed to create drill attempt", "error", err)
			return wrapStorage("ドリルの受験記録の保存に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Drill submitted",
		"attempt_id", attempt.ID,
		"score", graded.Score,
		"correct_elements", graded.CorrectCount,
		"total_elements", graded.TotalCount,
		"hints_used", req.HintsUsed,
		"revealed", req.Revealed,
	)

	return &model.DrillResult{
		AttemptID:       attempt.ID,
		Score:           graded.Score,
		CorrectElements: graded.CorrectCount,
		TotalElements:   graded.TotalCount,
		Feedback:        graded.Feedback,
		AnswerSet:       answerSet,
		Explanation:     drill.Explanation,
		Assisted:        req.Revealed,
	}, nil
}

func (s *drillService) loadDrill(ctx context.Context, drillID uint) (*model.Drill, error) {
	drill, err := s.contentRepo.FindDrill(ctx, s.db, drillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewNotFoundError("ドリルが見つかりません。")
		}
		middleware.GetLogger(ctx).Error("Failed to load drill", "drill_id", drillID, "error", err)
		return nil, wrapStorage("ドリルの取得に失敗しました。", err)
	}
	return drill, nil
}
