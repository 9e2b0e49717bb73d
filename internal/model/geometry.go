// internal/model/geometry.go
package model

type ZoneType string

const (
	ZoneSupport    ZoneType = "support"
	ZoneResistance ZoneType = "resistance"
	ZoneLiquidity  ZoneType = "liquidity"
	ZoneOrderBlock ZoneType = "order_block"
)

type PointType string

const (
	PointSwingHigh PointType = "swing_high"
	PointSwingLow  PointType = "swing_low"
	PointBOS       PointType = "bos"
	PointCHoCH     PointType = "choch"
	PointEntry     PointType = "entry"
)

type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
)

// AnswerZone は模範解答のゾーン。Tolerance 未指定時は既定の許容幅が使われる。
type AnswerZone struct {
	Type      ZoneType `json:"type"`
	PriceFrom float64  `json:"price_from"`
	PriceTo   float64  `json:"price_to"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

type AnswerPoint struct {
	Type         PointType `json:"type"`
	Price        float64   `json:"price"`
	BarIndex     int       `json:"bar_index"`
	Direction    Direction `json:"direction,omitempty"`
	Tolerance    *float64  `json:"tolerance,omitempty"`
	BarTolerance *int      `json:"bar_tolerance,omitempty"`
}

// AnswerSet はドリルの模範解答です。
type AnswerSet struct {
	Zones       []AnswerZone  `json:"zones"`
	Points      []AnswerPoint `json:"points"`
	Description string        `json:"description"`
}

type UserZone struct {
	Type      ZoneType `json:"type" validate:"required,oneof=support resistance liquidity order_block"`
	PriceFrom float64  `json:"price_from"`
	PriceTo   float64  `json:"price_to" validate:"gtfield=PriceFrom"`
}

// UserPoint の BarIndex を省略した場合、バー位置の判定はスキップされる。
type UserPoint struct {
	Type      PointType `json:"type" validate:"required,oneof=swing_high swing_low bos choch entry"`
	Price     float64   `json:"price"`
	BarIndex  *int      `json:"bar_index,omitempty" validate:"omitempty,min=0"`
	Direction Direction `json:"direction,omitempty" validate:"omitempty,oneof=bullish bearish"`
}

// DrillInput はユーザーがチャート上に描いた要素です。
type DrillInput struct {
	Zones  []UserZone  `json:"zones" validate:"dive"`
	Points []UserPoint `json:"points" validate:"dive"`
}

// ElementFeedback は模範解答の要素ごとの判定結果です。
type ElementFeedback struct {
	Element     string `json:"element"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}
