// internal/model/drill.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxHints はドリルで使えるヒントの上限
const MaxHints = 2

// DrillAttempt はドリル提出1回分の記録 (追記のみ)
type DrillAttempt struct {
	ID        uint                                 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID                            `gorm:"type:uuid;not null;index:idx_drill_attempt_user_drill,priority:1" json:"-"`
	DrillID   uint                                 `gorm:"not null;index:idx_drill_attempt_user_drill,priority:2" json:"drill_id"`
	UserInput datatypes.JSONType[DrillInput]       `json:"user_input"`
	Score     int                                  `gorm:"not null" json:"score"`
	Feedback  datatypes.JSONSlice[ElementFeedback] `json:"feedback"`
	HintsUsed int                                  `gorm:"not null;default:0" json:"hints_used"`
	Revealed  bool                                 `gorm:"not null;default:false" json:"revealed"`
	CreatedAt time.Time                            `gorm:"index:idx_drill_attempt_user_drill,priority:3" json:"created_at"`
}

func (DrillAttempt) TableName() string {
	return "drill_attempts"
}

// DrillStat はユーザーごとのドリル受験集計
type DrillStat struct {
	DrillID      uint
	AttemptCount int64
	LastScore    *int
}

// --- DTO ---

type DrillListItem struct {
	DrillID       uint     `json:"drill_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	LevelRequired int      `json:"level_required"`
	Difficulty    string   `json:"difficulty"`
	Tags          []string `json:"tags"`
	AttemptCount  int64    `json:"attempt_count"`
	LastScore     *int     `json:"last_score"`
}

// DrillDetail は解答要素を含むかどうかを呼び出し側で制御したドリル詳細です。
type DrillDetail struct {
	DrillID       uint          `json:"drill_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	LevelRequired int           `json:"level_required"`
	Difficulty    string        `json:"difficulty"`
	Tags          []string      `json:"tags"`
	ChartData     []Candle      `json:"chart_data"`
	Hint1         *string       `json:"hint_1,omitempty"`
	Hint2         *string       `json:"hint_2,omitempty"`
	AnswerSet     *AnswerSet    `json:"answer_set,omitempty"`
	Explanation   []string      `json:"explanation,omitempty"`
	LastAttempt   *DrillAttempt `json:"last_attempt"`
}

type SubmitDrillRequest struct {
	Input     DrillInput `json:"input"`
	HintsUsed int        `json:"hints_used" validate:"min=0,max=2"`
	Revealed  bool       `json:"revealed"`
}

type DrillResult struct {
	AttemptID       uint              `json:"attempt_id"`
	Score           int               `json:"score"`
	CorrectElements int               `json:"correct_elements"`
	TotalElements   int               `json:"total_elements"`
	Feedback        []ElementFeedback `json:"feedback"`
	AnswerSet       AnswerSet         `json:"answer_set"`
	Explanation     []string          `json:"explanation"`
	Assisted        bool              `json:"assisted"`
}
