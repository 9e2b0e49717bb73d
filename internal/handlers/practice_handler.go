// internal/handlers/practice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/service"
	"go_4_trade_practice/internal/webutil"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// GetDailySession は今日の練習セッションを返すハンドラ
func (h *PracticeHandler) GetDailySession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDailySession"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	session, err := h.service.BuildDailySession(r.Context(), userID)
	if err != nil {
		logger.Error("Error building daily session", slog.String("user_id", userID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// SubmitDailySession は練習セッションの回答を採点し、復習スケジュールを更新するハンドラ
func (h *PracticeHandler) SubmitDailySession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitDailySession"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.SubmitSessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitDailySession(r.Context(), userID, req.Answers)
	if err != nil {
		logger.Error("Error submitting daily session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Daily session graded", slog.Int("score", result.Score), slog.Int("total", result.Total))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetReviewSummary は復習キューの件数を返すハンドラ
func (h *PracticeHandler) GetReviewSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewSummary"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	summary, err := h.service.GetReviewSummary(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
