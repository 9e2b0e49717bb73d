// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 新規エントリの初期値
const (
	InitialIntervalDays = 1
	InitialEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	MaxEaseFactor       = 3.0
)

// ReviewQueueEntry は (user, question) ごとに最大1行の復習スケジュール。
// 状態 (New/Scheduled/Due) は保存せず NextReviewDate から算出する。
type ReviewQueueEntry struct {
	QueueID        uint      `gorm:"primaryKey;autoIncrement" json:"queue_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_question;index:idx_review_user_next,priority:1" json:"-"`
	LessonID       uint      `gorm:"not null" json:"lesson_id"`
	QuestionID     uint      `gorm:"not null;uniqueIndex:idx_review_user_question" json:"question_id"`
	NextReviewDate time.Time `gorm:"type:date;not null;index:idx_review_user_next,priority:2" json:"next_review_date"`
	IntervalDays   int       `gorm:"not null;default:1" json:"interval_days"`
	EaseFactor     float64   `gorm:"not null;default:2.5" json:"ease_factor"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (ReviewQueueEntry) TableName() string {
	return "review_queue"
}

// ReviewSummary は復習キューの件数サマリ
type ReviewSummary struct {
	Total     int64  `json:"total"`
	Due       int64  `json:"due"`
	Scheduled int64  `json:"scheduled"`
	Date      string `json:"date"`
}
