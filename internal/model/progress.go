// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// LessonProgress はレッスンの受講状況を表します
type LessonProgress struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID    uint           `gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	Status      ProgressStatus `gorm:"size:32;not null"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LessonProgress) TableName() string {
	return "user_lesson_progress"
}
