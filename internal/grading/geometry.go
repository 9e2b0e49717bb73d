package grading

import (
	"fmt"
	"math"
	"strconv"

	"go_4_trade_practice/internal/model"
)

const (
	// MinOverlapRatio 以上、模範ゾーンの幅を覆っていれば正解
	MinOverlapRatio = 0.5

	DefaultPriceTolerance = 3.0
	DefaultBarTolerance   = 5

	// 小数の価格が許容幅の境界ちょうどの場合に誤判定しないための誤差
	epsilon = 1e-9
)

// GeometryResult は描画採点の結果
type GeometryResult struct {
	Feedback     []model.ElementFeedback
	CorrectCount int
	TotalCount   int
	Score        int
}

// GradeGeometry は模範解答の各ゾーン・各ポイントについて、一致するユーザー要素があるかを独立に判定します。
// フィードバックは模範ゾーン、模範ポイントの順に並ぶ。
func GradeGeometry(answerZones []model.AnswerZone, answerPoints []model.AnswerPoint, userZones []model.UserZone, userPoints []model.UserPoint) GeometryResult {
	res := GeometryResult{
		Feedback:   make([]model.ElementFeedback, 0, len(answerZones)+len(answerPoints)),
		TotalCount: len(answerZones) + len(answerPoints),
	}

	for i, a := range answerZones {
		fb := gradeZone(i, a, userZones)
		if fb.Correct {
			res.CorrectCount++
		}
		res.Feedback = append(res.Feedback, fb)
	}
	for i, a := range answerPoints {
		fb := gradePoint(i, a, userPoints)
		if fb.Correct {
			res.CorrectCount++
		}
		res.Feedback = append(res.Feedback, fb)
	}

	res.Score = Percent(res.CorrectCount, res.TotalCount)
	return res
}

// OverlapRatio は模範ゾーンの幅のうちユーザーゾーンが覆っている割合を返します。
// 模範ゾーンの幅が 0 以下なら 0。
func OverlapRatio(u model.UserZone, a model.AnswerZone) float64 {
	width := a.PriceTo - a.PriceFrom
	if width <= 0 {
		return 0
	}
	overlap := math.Min(u.PriceTo, a.PriceTo) - math.Max(u.PriceFrom, a.PriceFrom)
	if overlap <= 0 {
		return 0
	}
	return overlap / width
}

func gradeZone(i int, a model.AnswerZone, users []model.UserZone) model.ElementFeedback {
	fb := model.ElementFeedback{Element: fmt.Sprintf("%s_zone_%d", a.Type, i+1)}
	from, to := formatPrice(a.PriceFrom), formatPrice(a.PriceTo)

	for _, u := range users {
		if u.Type == a.Type && OverlapRatio(u, a)+epsilon >= MinOverlapRatio {
			fb.Correct = true
			fb.Explanation = fmt.Sprintf("Your %s zone overlapped with the expected zone (%s-%s).", a.Type, from, to)
			return fb
		}
	}

	tol := DefaultPriceTolerance
	if a.Tolerance != nil {
		tol = *a.Tolerance
	}
	for _, u := range users {
		if u.Type == a.Type && within(u.PriceFrom, a.PriceFrom, tol) && within(u.PriceTo, a.PriceTo, tol) {
			fb.Correct = true
			fb.Explanation = fmt.Sprintf("Your %s zone is within %s of the expected zone (%s-%s).", a.Type, formatPrice(tol), from, to)
			return fb
		}
	}

	fb.Explanation = fmt.Sprintf("The %s zone should be around %s-%s.", a.Type, from, to)
	return fb
}

func gradePoint(i int, a model.AnswerPoint, users []model.UserPoint) model.ElementFeedback {
	fb := model.ElementFeedback{Element: fmt.Sprintf("%s_point_%d", a.Type, i+1)}

	priceTol := DefaultPriceTolerance
	if a.Tolerance != nil {
		priceTol = *a.Tolerance
	}
	barTol := DefaultBarTolerance
	if a.BarTolerance != nil {
		barTol = *a.BarTolerance
	}

	for _, u := range users {
		if u.Type != a.Type || !within(u.Price, a.Price, priceTol) {
			continue
		}
		if u.BarIndex != nil && absInt(*u.BarIndex-a.BarIndex) > barTol {
			continue
		}
		if a.Direction != "" && u.Direction != a.Direction {
			continue
		}
		fb.Correct = true
		fb.Explanation = fmt.Sprintf("Your %s point is within the expected range.", a.Type)
		return fb
	}

	fb.Explanation = fmt.Sprintf("The %s was expected around price %s (bar ~%d)", a.Type, formatPrice(a.Price), a.BarIndex)
	if a.Direction != "" {
		fb.Explanation += ", direction: " + string(a.Direction)
	}
	fb.Explanation += "."
	return fb
}

func within(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol+epsilon
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
