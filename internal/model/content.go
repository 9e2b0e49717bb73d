// internal/model/content.go
package model

import (
	"gorm.io/datatypes"
)

// コンテンツ系のテーブルは読み取り専用。書き込みは cmd/seed のみ。

type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindTrueFalse      QuestionKind = "true_false"
	KindVisual         QuestionKind = "visual"
)

type Lesson struct {
	LessonID uint   `gorm:"primaryKey" json:"lesson_id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	OrderNum int    `gorm:"not null;default:0;index" json:"order_num"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type Question struct {
	QuestionID    uint                        `gorm:"primaryKey" json:"question_id"`
	LessonID      uint                        `gorm:"not null;index" json:"lesson_id"`
	Kind          QuestionKind                `gorm:"size:32;not null" json:"kind"`
	Prompt        string                      `gorm:"type:text;not null" json:"prompt"`
	Options       datatypes.JSONSlice[string] `json:"options,omitempty"`
	VisualConfig  datatypes.JSON              `json:"visual_config,omitempty"`
	CorrectAnswer string                      `gorm:"not null" json:"correct_answer"`
	Explanation   string                      `gorm:"type:text" json:"explanation"`
	OrderNum      int                         `gorm:"not null;default:0" json:"order_num"`
}

func (Question) TableName() string {
	return "questions"
}

// Candle はチャートの1本分のローソク足です。
type Candle struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

type Drill struct {
	DrillID       uint                          `gorm:"primaryKey" json:"drill_id"`
	Title         string                        `gorm:"size:200;not null" json:"title"`
	Description   string                        `gorm:"type:text" json:"description"`
	LevelRequired int                           `gorm:"not null;default:1;index" json:"level_required"`
	Difficulty    string                        `gorm:"size:32" json:"difficulty"`
	Tags          datatypes.JSONSlice[string]   `json:"tags"`
	ChartData     datatypes.JSONSlice[Candle]   `json:"chart_data"`
	AnswerSet     datatypes.JSONType[AnswerSet] `json:"answer_set"`
	Hint1         *string                       `json:"hint_1,omitempty"`
	Hint2         *string                       `json:"hint_2,omitempty"`
	Explanation   datatypes.JSONSlice[string]   `json:"explanation"`
}

func (Drill) TableName() string {
	return "drills"
}

// PriceRange はチャートデータの最安値と最高値を返します。データが無い場合は ok=false。
func (d *Drill) PriceRange() (low, high float64, ok bool) {
	if len(d.ChartData) == 0 {
		return 0, 0, false
	}
	low, high = d.ChartData[0].Low, d.ChartData[0].High
	for _, c := range d.ChartData[1:] {
		if c.Low < low {
			low = c.Low
		}
		if c.High > high {
			high = c.High
		}
	}
	return low, high, true
}
