// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/webutil"
)

// Pinger は DB などの疎通確認ができるもの
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "UNAVAILABLE", Message: "データベースに接続できません。"},
		}, h.logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
