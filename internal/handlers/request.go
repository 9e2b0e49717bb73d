// internal/handlers/request.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_trade_practice/internal/middleware"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// requireUser はコンテキストのユーザーIDを返します。無ければ 401 を書き込んで false。
func requireUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeAndValidate はボディをデコードし、validate タグで検証します。
// 失敗時はエラーレスポンスを書き込んで false を返す。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}
