// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PassingScore 以上で合格。
const PassingScore = 70

// MasteryWindow はマスタリー算出に使う直近の受験回数です。
const MasteryWindow = 3

// QuizAttempt はクイズ提出1回分の記録 (追記のみ)
type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_attempt_user_lesson,priority:1" json:"-"`
	LessonID       uint      `gorm:"not null;index:idx_quiz_attempt_user_lesson,priority:2" json:"lesson_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CorrectCount   int       `gorm:"not null" json:"correct_count"`
	Passed         bool      `gorm:"not null" json:"passed"`
	CreatedAt      time.Time `gorm:"index:idx_quiz_attempt_user_lesson,priority:3" json:"created_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizAttemptAnswer は提出された回答1件ごとの記録
type QuizAttemptAnswer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AttemptID  uint   `gorm:"not null;index" json:"attempt_id"`
	QuestionID uint   `gorm:"not null" json:"question_id"`
	UserAnswer string `gorm:"not null" json:"user_answer"`
	IsCorrect  bool   `gorm:"not null" json:"is_correct"`
}

func (QuizAttemptAnswer) TableName() string {
	return "quiz_attempt_answers"
}

// MasteryScore は (user, lesson) ごとに1行。削除されない。
type MasteryScore struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mastery_user_lesson" json:"-"`
	LessonID      uint      `gorm:"not null;uniqueIndex:idx_mastery_user_lesson" json:"lesson_id"`
	Score         int       `gorm:"not null" json:"score"`
	AttemptsCount int       `gorm:"not null;default:0" json:"attempts_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MasteryScore) TableName() string {
	return "mastery_scores"
}

// --- DTO ---

type QuizAnswer struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"max=500"`
}

type SubmitQuizRequest struct {
	Answers []QuizAnswer `json:"answers" validate:"required,min=1,dive"`
}

type QuestionResult struct {
	QuestionID    uint   `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

type QuizResult struct {
	AttemptID    uint             `json:"attempt_id"`
	Score        int              `json:"score"`
	Passed       bool             `json:"passed"`
	CorrectCount int              `json:"correct_count"`
	Total        int              `json:"total"`
	MasteryScore int              `json:"mastery_score"`
	Results      []QuestionResult `json:"results"`
}

// QuizQuestion は未回答のクイズ向けに正解と解説を除いた問題です。
type QuizQuestion struct {
	QuestionID   uint           `json:"question_id"`
	LessonID     uint           `json:"lesson_id"`
	Kind         QuestionKind   `json:"kind"`
	Prompt       string         `json:"prompt"`
	Options      []string       `json:"options,omitempty"`
	VisualConfig datatypes.JSON `json:"visual_config,omitempty"`
	OrderNum     int            `json:"order_num"`
}

// NewQuizQuestion は Question から解答情報を除いた DTO を作ります。
func NewQuizQuestion(q *Question) QuizQuestion {
	return QuizQuestion{
		QuestionID:   q.QuestionID,
		LessonID:     q.LessonID,
		Kind:         q.Kind,
		Prompt:       q.Prompt,
		Options:      q.Options,
		VisualConfig: q.VisualConfig,
		OrderNum:     q.OrderNum,
	}
}
