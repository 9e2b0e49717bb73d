package webutil

import (
	"log"
	"reflect"
	"strings"

	"go_4_trade_practice/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"answers":     "回答",
	"answer":      "回答",
	"question_id": "問題ID",
	"queue_id":    "キューID",
	"hints_used":  "ヒント使用数",
	"type":        "種類",
	"price_from":  "開始価格",
	"price_to":    "終了価格",
	"bar_index":   "バー位置",
	"direction":   "方向",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータ
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe.Field()))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("gtfield", "{0}は開始価格より大きい値にしてください。")
	registerParamTranslation("min", "{0}は{1}以上で指定してください。")
	registerParamTranslation("max", "{0}は{1}以下で指定してください。")
	registerParamTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")
}

func registerParamTranslation(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, fieldLabel(fe.Field()), fe.Param())
		return t
	})
}

// fieldLabel は json タグ名を日本語の項目名に変換します。未登録ならそのまま。
func fieldLabel(field string) string {
	if label, ok := fieldNameTranslations[field]; ok {
		return label
	}
	return field
}

// NewValidationAppError は最初のバリデーションエラーを翻訳して AppError にします。
func NewValidationAppError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	return model.NewValidationError(first.Translate(Trans), first.Field())
}
