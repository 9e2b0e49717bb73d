// Package srs は復習キューの間隔・易しさ係数の計算 (SM-2 の簡易版) を行います。
// ストレージには依存しない純粋関数のみ。
package srs

import (
	"math"
	"time"

	"go_4_trade_practice/internal/clock"
	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
)

const (
	easeStep    = 0.1
	easePenalty = 0.2
)

// State は復習エントリの状態。保存はせず NextReviewDate から算出する。
type State string

const (
	StateNew       State = "new"
	StateScheduled State = "scheduled"
	StateDue       State = "due"
)

// Classify はエントリの状態を返します。entry が nil なら New。
func Classify(entry *model.ReviewQueueEntry, today time.Time) State {
	if entry == nil {
		return StateNew
	}
	if clock.DateOf(entry.NextReviewDate).After(today) {
		return StateScheduled
	}
	return StateDue
}

// NewEntry は不正解時に作成する初期エントリを返します。
func NewEntry(userID uuid.UUID, lessonID, questionID uint, today time.Time) model.ReviewQueueEntry {
	return model.ReviewQueueEntry{
		UserID:         userID,
		LessonID:       lessonID,
		QuestionID:     questionID,
		IntervalDays:   model.InitialIntervalDays,
		EaseFactor:     model.InitialEaseFactor,
		NextReviewDate: clock.AddDays(today, model.InitialIntervalDays),
	}
}

// Grade は正誤に応じて次回の間隔・係数・復習日を計算した新しいエントリを返します。
// 間隔は 1 → 3 → 7 → round(interval * ease) の順に伸び、不正解で 1 に戻る。
// 間隔の計算には更新前の ease を使う。
func Grade(entry model.ReviewQueueEntry, isCorrect bool, today time.Time) model.ReviewQueueEntry {
	next := entry
	ease := clampEase(entry.EaseFactor)

	if isCorrect {
		switch {
		case entry.IntervalDays <= 1:
			next.IntervalDays = 3
		case entry.IntervalDays <= 3:
			next.IntervalDays = 7
		default:
			next.IntervalDays = int(math.Round(float64(entry.IntervalDays) * ease))
		}
		next.EaseFactor = clampEase(roundEase(ease + easeStep))
	} else {
		next.IntervalDays = 1
		next.EaseFactor = clampEase(roundEase(ease - easePenalty))
	}

	if next.IntervalDays < 1 {
		next.IntervalDays = 1
	}
	next.NextReviewDate = clock.AddDays(today, next.IntervalDays)
	return next
}

// 浮動小数点の誤差が蓄積しないよう小数第2位で丸める
func roundEase(e float64) float64 {
	return math.Round(e*100) / 100
}

func clampEase(e float64) float64 {
	return math.Min(model.MaxEaseFactor, math.Max(model.MinEaseFactor, e))
}
