// internal/service/errors.go
package service

import (
	"errors"

	"go_4_trade_practice/internal/model"
)

// wrapStorage は AppError 以外のエラーを StorageError として包みます。
// 既に AppError (NotFound など) の場合はそのまま返す。
func wrapStorage(message string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return model.NewStorageError(message, err)
}
