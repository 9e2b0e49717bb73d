// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/service"
	"go_4_trade_practice/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// GetQuestions はレッスンの問題を正解・解説抜きで返すハンドラ
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestions"))

	lessonID, err := webutil.URLParamUint(r, "lesson_id")
	if err != nil {
		logger.Warn("Invalid lesson ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.service.GetQuizQuestions(r.Context(), lessonID)
	if err != nil {
		logger.Warn("Error getting quiz questions", slog.Uint64("lesson_id", uint64(lessonID)), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// SubmitQuiz はクイズの回答を採点するハンドラ
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitQuiz"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	lessonID, err := webutil.URLParamUint(r, "lesson_id")
	if err != nil {
		logger.Warn("Invalid lesson ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitQuizRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), userID, lessonID, req.Answers)
	if err != nil {
		logger.Error("Error submitting quiz in service", slog.Uint64("lesson_id", uint64(lessonID)), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz graded", slog.Uint64("lesson_id", uint64(lessonID)), slog.Int("score", result.Score), slog.Bool("passed", result.Passed))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetHistory は直近の受験履歴を返すハンドラ
func (h *QuizHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHistory"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	lessonID, err := webutil.URLParamUint(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitは0以上の整数で指定してください。", "limit", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	attempts, err := h.service.GetQuizHistory(r.Context(), userID, lessonID, limit)
	if err != nil {
		logger.Error("Error getting quiz history", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if attempts == nil {
		attempts = []model.QuizAttempt{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attempts, logger)
}
