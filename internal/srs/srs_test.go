package srs

import (
	"testing"
	"time"

	"go_4_trade_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestGrade_IntervalLadder(t *testing.T) {
	e := NewEntry(uuid.New(), 1, 10, today)
	assert.Equal(t, 1, e.IntervalDays)
	assert.Equal(t, 2.5, e.EaseFactor)
	assert.Equal(t, today.AddDate(0, 0, 1), e.NextReviewDate)

	e = Grade(e, true, today)
	assert.Equal(t, 3, e.IntervalDays)
	assert.Equal(t, today.AddDate(0, 0, 3), e.NextReviewDate)

	e = Grade(e, true, today)
	assert.Equal(t, 7, e.IntervalDays)

	// 7 * 2.5 = 17.5 -> 18 (更新前の ease を使う)
	e.EaseFactor = 2.5
	e = Grade(e, true, today)
	assert.Equal(t, 18, e.IntervalDays)
	assert.Equal(t, 2.6, e.EaseFactor)
	assert.Equal(t, today.AddDate(0, 0, 18), e.NextReviewDate)
}

func TestGrade_IncorrectReset(t *testing.T) {
	tests := []struct {
		name  string
		entry model.ReviewQueueEntry
		want  float64
	}{
		{"長い間隔から", model.ReviewQueueEntry{IntervalDays: 45, EaseFactor: 2.8}, 2.6},
		{"初期状態から", model.ReviewQueueEntry{IntervalDays: 1, EaseFactor: 2.5}, 2.3},
		{"下限付近", model.ReviewQueueEntry{IntervalDays: 7, EaseFactor: 1.4}, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.entry, false, today)
			assert.Equal(t, 1, got.IntervalDays)
			assert.Equal(t, today.AddDate(0, 0, 1), got.NextReviewDate)
			assert.InDelta(t, tt.want, got.EaseFactor, 1e-9)
		})
	}
}

func TestGrade_EaseBounds(t *testing.T) {
	e := NewEntry(uuid.New(), 1, 1, today)
	for i := 0; i < 100; i++ {
		e = Grade(e, false, today)
		assert.GreaterOrEqual(t, e.EaseFactor, model.MinEaseFactor)
		assert.LessOrEqual(t, e.EaseFactor, model.MaxEaseFactor)
	}
	assert.Equal(t, model.MinEaseFactor, e.EaseFactor)

	for i := 0; i < 20; i++ {
		e = Grade(e, true, today)
		assert.GreaterOrEqual(t, e.EaseFactor, model.MinEaseFactor)
		assert.LessOrEqual(t, e.EaseFactor, model.MaxEaseFactor)
		assert.GreaterOrEqual(t, e.IntervalDays, 1)
	}
	assert.Equal(t, model.MaxEaseFactor, e.EaseFactor)

	// 交互
	for i := 0; i < 50; i++ {
		e = Grade(e, i%2 == 0, today)
		assert.GreaterOrEqual(t, e.EaseFactor, model.MinEaseFactor)
		assert.LessOrEqual(t, e.EaseFactor, model.MaxEaseFactor)
	}
}

func TestGrade_DoesNotMutateInput(t *testing.T) {
	in := model.ReviewQueueEntry{QueueID: 3, IntervalDays: 3, EaseFactor: 2.5}
	out := Grade(in, true, today)
	assert.Equal(t, 3, in.IntervalDays)
	assert.Equal(t, uint(3), out.QueueID)
	assert.Equal(t, 7, out.IntervalDays)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StateNew, Classify(nil, today))
	assert.Equal(t, StateDue, Classify(&model.ReviewQueueEntry{NextReviewDate: today}, today))
	assert.Equal(t, StateDue, Classify(&model.ReviewQueueEntry{NextReviewDate: today.AddDate(0, 0, -3)}, today))
	assert.Equal(t, StateScheduled, Classify(&model.ReviewQueueEntry{NextReviewDate: today.AddDate(0, 0, 1)}, today))
}
