package repository

import (
	"errors"
	"fmt"

	"go_4_trade_practice/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation は PostgreSQL の一意制約違反コード
const pgUniqueViolation = "23505"

// translateError は GORM / ドライバのエラーをモデルのエラーに変換し、操作名を付けて返します。
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, model.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
