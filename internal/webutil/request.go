package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go_4_trade_practice/internal/model"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", model.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// URLParamUint は chi の URL パラメータを正の整数として取り出します。
func URLParamUint(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", fmt.Sprintf("%sの形式が正しくありません。", name), name, model.ErrInvalidInput)
	}
	return uint(v), nil
}

// QueryInt はクエリパラメータを整数として取り出します。未指定なら def。
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%sは整数で指定してください。", name), name, model.ErrInvalidInput)
	}
	return v, nil
}
