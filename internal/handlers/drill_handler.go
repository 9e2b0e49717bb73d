// internal/handlers/drill_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/service"
	"go_4_trade_practice/internal/webutil"
)

type DrillHandler struct {
	service service.DrillService
	logger  *slog.Logger
}

func NewDrillHandler(s service.DrillService, logger *slog.Logger) *DrillHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DrillHandler{
		service: s,
		logger:  logger,
	}
}

// ListDrills はドリル一覧とユーザーの受験状況を返すハンドラ
func (h *DrillHandler) ListDrills(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListDrills"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	items, err := h.service.ListDrills(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing drills", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []model.DrillListItem{}
	}
	logger.Info("Drills listed successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetDrill はドリルの詳細を返すハンドラ
func (h *DrillHandler) GetDrill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDrill"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	drillID, err := webutil.URLParamUint(r, "drill_id")
	if err != nil {
		logger.Warn("Invalid drill ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	detail, err := h.service.GetDrill(r.Context(), userID, drillID)
	if err != nil {
		logger.Warn("Error getting drill", slog.Uint64("drill_id", uint64(drillID)), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// SubmitDrill は描画入力を採点するハンドラ
func (h *DrillHandler) SubmitDrill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitDrill"))

	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	drillID, err := webutil.URLParamUint(r, "drill_id")
	if err != nil {
		logger.Warn("Invalid drill ID in URL", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitDrillRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitDrill(r.Context(), userID, drillID, &req)
	if err != nil {
		logger.Error("Error submitting drill in service", slog.Uint64("drill_id", uint64(drillID)), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Drill graded", slog.Uint64("drill_id", uint64(drillID)), slog.Int("score", result.Score))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
