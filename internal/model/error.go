// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStorage        = errors.New("storage failure")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// ErrorDetail はクライアントに返すエラー情報です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はユーザー向けメッセージと原因エラーを保持します。
// errors.Is は Err に対して評価されます。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用のエラー詳細を返します。
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

// NewStorageError は永続化層の失敗を ErrStorage でラップします。
func NewStorageError(message string, err error) *AppError {
	return NewAppError("STORAGE_ERROR", message, "", fmt.Errorf("%w: %w", ErrStorage, err))
}

// NewValidationError は入力不正を表す AppError を生成します。
func NewValidationError(message, field string) *AppError {
	return NewAppError("VALIDATION_ERROR", message, field, ErrInvalidInput)
}

// NewNotFoundError はリソース未検出を表す AppError を生成します。
func NewNotFoundError(message string) *AppError {
	return NewAppError("NOT_FOUND", message, "", ErrNotFound)
}
