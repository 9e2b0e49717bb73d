// internal/model/practice.go
package model

// DefaultDailyQuota は1日の練習セッションの上限問題数
const DefaultDailyQuota = 5

type SessionSource string

const (
	SourceReview   SessionSource = "review"
	SourceBackfill SessionSource = "backfill"
)

// SessionQuestion は練習セッションの1問。QueueID が nil なら補充問題。
type SessionQuestion struct {
	QueueID *uint         `json:"queue_id"`
	Source  SessionSource `json:"source"`
	QuizQuestion
}

type DailySession struct {
	Date      string            `json:"date"`
	Questions []SessionQuestion `json:"questions"`
	TotalDue  int               `json:"total_due"`
}

type SessionAnswer struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	QueueID    *uint  `json:"queue_id"`
	Answer     string `json:"answer" validate:"max=500"`
}

type SubmitSessionRequest struct {
	Answers []SessionAnswer `json:"answers" validate:"required,min=1,dive"`
}

type SessionItemResult struct {
	QuestionID     uint    `json:"question_id"`
	QueueID        *uint   `json:"queue_id"`
	IsCorrect      bool    `json:"is_correct"`
	CorrectAnswer  string  `json:"correct_answer"`
	Explanation    string  `json:"explanation"`
	IntervalDays   *int    `json:"interval_days,omitempty"`
	NextReviewDate *string `json:"next_review_date,omitempty"`
}

type SessionResult struct {
	Score   int                 `json:"score"`
	Correct int                 `json:"correct"`
	Total   int                 `json:"total"`
	Results []SessionItemResult `json:"results"`
}
