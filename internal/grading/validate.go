package grading

import (
	"fmt"

	"go_4_trade_practice/internal/model"
)

// ValidateInput は採点前に描画入力の整合性を検査します。
// 最初に見つかった違反を ErrInvalidInput 付きの AppError で返す。
func ValidateInput(in model.DrillInput) error {
	for i, z := range in.Zones {
		if z.Type == "" {
			return model.NewValidationError(fmt.Sprintf("zones[%d]: ゾーンの種類は必須です。", i), "type")
		}
		if !(z.PriceFrom < z.PriceTo) {
			return model.NewValidationError(fmt.Sprintf("zones[%d]: price_from は price_to より小さくしてください。", i), "price_from")
		}
	}
	for i, p := range in.Points {
		if p.Type == "" {
			return model.NewValidationError(fmt.Sprintf("points[%d]: ポイントの種類は必須です。", i), "type")
		}
		if p.BarIndex != nil && *p.BarIndex < 0 {
			return model.NewValidationError(fmt.Sprintf("points[%d]: bar_index は0以上で指定してください。", i), "bar_index")
		}
	}
	return nil
}

// ValidateHints はヒント使用数が 0〜MaxHints の範囲か検査します。
func ValidateHints(hintsUsed int) error {
	if hintsUsed < 0 || hintsUsed > model.MaxHints {
		return model.NewValidationError(fmt.Sprintf("hints_used は0〜%dで指定してください。", model.MaxHints), "hints_used")
	}
	return nil
}
