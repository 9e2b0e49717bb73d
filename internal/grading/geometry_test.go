package grading

import (
	"testing"

	"go_4_trade_practice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func TestGradeGeometry_OverlapMatch(t *testing.T) {
	answer := []model.AnswerZone{{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 110}}
	user := []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 101, PriceTo: 111}}

	res := GradeGeometry(answer, nil, user, nil)

	assert.InDelta(t, 0.9, OverlapRatio(user[0], answer[0]), 1e-9)
	assert.Equal(t, 1, res.CorrectCount)
	assert.Equal(t, 1, res.TotalCount)
	assert.Equal(t, 100, res.Score)
	require.Len(t, res.Feedback, 1)
	assert.Equal(t, "support_zone_1", res.Feedback[0].Element)
	assert.Equal(t, "Your support zone overlapped with the expected zone (100-110).", res.Feedback[0].Explanation)
}

func TestGradeGeometry_IdenticalZoneAlwaysCorrect(t *testing.T) {
	for _, tol := range []*float64{nil, ptrF(0), ptrF(0.5), ptrF(100)} {
		a := model.AnswerZone{Type: model.ZoneResistance, PriceFrom: 1.2345, PriceTo: 1.2399, Tolerance: tol}
		u := model.UserZone{Type: a.Type, PriceFrom: a.PriceFrom, PriceTo: a.PriceTo}
		res := GradeGeometry([]model.AnswerZone{a}, nil, []model.UserZone{u}, nil)
		assert.True(t, res.Feedback[0].Correct)
	}
}

func TestGradeGeometry_ZoneToleranceBoundary(t *testing.T) {
	// 幅2のゾーンに対して tol=3 なので、tol だけずらすと重なりは無い
	answer := []model.AnswerZone{{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 102}}

	tests := []struct {
		name string
		user model.UserZone
		want bool
	}{
		{"両端ともちょうど tol", model.UserZone{Type: model.ZoneSupport, PriceFrom: 103, PriceTo: 105}, true},
		{"下端が tol+1", model.UserZone{Type: model.ZoneSupport, PriceFrom: 104, PriceTo: 105}, false},
		{"上端が tol+1", model.UserZone{Type: model.ZoneSupport, PriceFrom: 103, PriceTo: 106}, false},
		{"下方向にちょうど tol", model.UserZone{Type: model.ZoneSupport, PriceFrom: 97, PriceTo: 99}, true},
		{"種類違い", model.UserZone{Type: model.ZoneResistance, PriceFrom: 103, PriceTo: 105}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, OverlapRatio(tt.user, answer[0]))
			res := GradeGeometry(answer, nil, []model.UserZone{tt.user}, nil)
			assert.Equal(t, tt.want, res.Feedback[0].Correct)
		})
	}
}

func TestGradeGeometry_ZoneCustomTolerance(t *testing.T) {
	answer := []model.AnswerZone{{Type: model.ZoneLiquidity, PriceFrom: 1.1000, PriceTo: 1.1010, Tolerance: ptrF(0.002)}}

	hit := GradeGeometry(answer, nil, []model.UserZone{{Type: model.ZoneLiquidity, PriceFrom: 1.1020, PriceTo: 1.1030}}, nil)
	assert.True(t, hit.Feedback[0].Correct, "小数の境界値は許容範囲内")

	miss := GradeGeometry(answer, nil, []model.UserZone{{Type: model.ZoneLiquidity, PriceFrom: 1.1021, PriceTo: 1.1030}}, nil)
	assert.False(t, miss.Feedback[0].Correct)
	assert.Equal(t, "The liquidity zone should be around 1.1-1.101.", miss.Feedback[0].Explanation)
}

func TestGradeGeometry_HalfOverlapIsEnough(t *testing.T) {
	answer := []model.AnswerZone{{Type: model.ZoneOrderBlock, PriceFrom: 100, PriceTo: 120, Tolerance: ptrF(0)}}
	half := GradeGeometry(answer, nil, []model.UserZone{{Type: model.ZoneOrderBlock, PriceFrom: 110, PriceTo: 130}}, nil)
	assert.True(t, half.Feedback[0].Correct)

	less := GradeGeometry(answer, nil, []model.UserZone{{Type: model.ZoneOrderBlock, PriceFrom: 111, PriceTo: 130}}, nil)
	assert.False(t, less.Feedback[0].Correct)
}

func TestGradeGeometry_ZeroWidthAnswerZone(t *testing.T) {
	a := model.AnswerZone{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 100}
	u := model.UserZone{Type: model.ZoneSupport, PriceFrom: 99, PriceTo: 101}
	assert.Zero(t, OverlapRatio(u, a))
	// 重なり判定はできないが許容幅で一致する
	res := GradeGeometry([]model.AnswerZone{a}, nil, []model.UserZone{u}, nil)
	assert.True(t, res.Feedback[0].Correct)
}

func TestGradeGeometry_Points(t *testing.T) {
	answer := []model.AnswerPoint{{Type: model.PointBOS, Price: 150, BarIndex: 40, Direction: model.DirectionBearish}}

	tests := []struct {
		name string
		user model.UserPoint
		want bool
	}{
		{"完全一致", model.UserPoint{Type: model.PointBOS, Price: 150, BarIndex: ptrI(40), Direction: model.DirectionBearish}, true},
		{"価格・バーとも許容範囲の境界", model.UserPoint{Type: model.PointBOS, Price: 153, BarIndex: ptrI(45), Direction: model.DirectionBearish}, true},
		{"バー省略時はバー判定をスキップ", model.UserPoint{Type: model.PointBOS, Price: 148, Direction: model.DirectionBearish}, true},
		{"方向違いは不正解", model.UserPoint{Type: model.PointBOS, Price: 150, BarIndex: ptrI(40), Direction: model.DirectionBullish}, false},
		{"方向未指定も不正解", model.UserPoint{Type: model.PointBOS, Price: 150, BarIndex: ptrI(40)}, false},
		{"価格が範囲外", model.UserPoint{Type: model.PointBOS, Price: 153.5, BarIndex: ptrI(40), Direction: model.DirectionBearish}, false},
		{"バーが範囲外", model.UserPoint{Type: model.PointBOS, Price: 150, BarIndex: ptrI(34), Direction: model.DirectionBearish}, false},
		{"種類違い", model.UserPoint{Type: model.PointCHoCH, Price: 150, BarIndex: ptrI(40), Direction: model.DirectionBearish}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := GradeGeometry(nil, answer, nil, []model.UserPoint{tt.user})
			assert.Equal(t, tt.want, res.Feedback[0].Correct)
			assert.Equal(t, "bos_point_1", res.Feedback[0].Element)
		})
	}

	miss := GradeGeometry(nil, answer, nil, nil)
	assert.Equal(t, "The bos was expected around price 150 (bar ~40), direction: bearish.", miss.Feedback[0].Explanation)
}

func TestGradeGeometry_PointWithoutDirection(t *testing.T) {
	answer := []model.AnswerPoint{{Type: model.PointSwingLow, Price: 90, BarIndex: 10, Tolerance: ptrF(1), BarTolerance: ptrI(2)}}

	res := GradeGeometry(nil, answer, nil, []model.UserPoint{{Type: model.PointSwingLow, Price: 91, BarIndex: ptrI(12), Direction: model.DirectionBullish}})
	assert.True(t, res.Feedback[0].Correct, "模範に方向が無ければ方向は問わない")

	res = GradeGeometry(nil, answer, nil, []model.UserPoint{{Type: model.PointSwingLow, Price: 91, BarIndex: ptrI(13)}})
	assert.False(t, res.Feedback[0].Correct)
	assert.Equal(t, "The swing_low was expected around price 90 (bar ~10).", res.Feedback[0].Explanation)
}

func TestGradeGeometry_AggregateAndOrdering(t *testing.T) {
	zones := []model.AnswerZone{
		{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 110},
		{Type: model.ZoneResistance, PriceFrom: 150, PriceTo: 160},
	}
	points := []model.AnswerPoint{{Type: model.PointSwingHigh, Price: 162, BarIndex: 30}}
	userZones := []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 102, PriceTo: 109}}
	userPoints := []model.UserPoint{{Type: model.PointSwingHigh, Price: 161, BarIndex: ptrI(31)}}

	res := GradeGeometry(zones, points, userZones, userPoints)

	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 2, res.CorrectCount)
	assert.Equal(t, 67, res.Score)
	require.Len(t, res.Feedback, 3)
	assert.Equal(t, "support_zone_1", res.Feedback[0].Element)
	assert.Equal(t, "resistance_zone_2", res.Feedback[1].Element)
	assert.Equal(t, "swing_high_point_1", res.Feedback[2].Element)
	assert.False(t, res.Feedback[1].Correct)
}

func TestGradeGeometry_EmptyAnswerSet(t *testing.T) {
	res := GradeGeometry(nil, nil, []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 1, PriceTo: 2}}, nil)
	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Feedback)
}

func TestGradeGeometry_OneUserZoneMaySatisfySeveralAnswers(t *testing.T) {
	zones := []model.AnswerZone{
		{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 104},
		{Type: model.ZoneSupport, PriceFrom: 102, PriceTo: 106},
	}
	res := GradeGeometry(zones, nil, []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 100, PriceTo: 106}}, nil)
	assert.Equal(t, 2, res.CorrectCount)
}

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput(model.DrillInput{}))
	assert.NoError(t, ValidateInput(model.DrillInput{
		Zones:  []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 1, PriceTo: 2}},
		Points: []model.UserPoint{{Type: model.PointEntry, Price: 3}},
	}))

	err := ValidateInput(model.DrillInput{Zones: []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 2, PriceTo: 2}}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = ValidateInput(model.DrillInput{Zones: []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 5, PriceTo: 2}}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = ValidateInput(model.DrillInput{Points: []model.UserPoint{{Type: model.PointBOS, BarIndex: ptrI(-1)}}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestValidateHints(t *testing.T) {
	for _, h := range []int{0, 1, 2} {
		assert.NoError(t, ValidateHints(h))
	}
	assert.ErrorIs(t, ValidateHints(-1), model.ErrInvalidInput)
	assert.ErrorIs(t, ValidateHints(3), model.ErrInvalidInput)
}
