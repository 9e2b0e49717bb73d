package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		correct   string
		submitted string
		want      bool
	}{
		{"完全一致", "Support", "Support", true},
		{"大文字小文字を無視", "Order Block", "order block", true},
		{"前後の空白を無視", "true", "  TRUE \n", true},
		{"内部の空白は無視しない", "order block", "orderblock", false},
		{"部分一致は不正解", "resistance", "resist", false},
		{"空回答は不正解", "support", "", false},
		{"空白のみの回答も不正解", "support", "   ", false},
		{"両方空なら一致", "", " ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.correct, tt.submitted))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 75, Percent(3, 4))
	assert.Equal(t, 25, Percent(1, 4))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 33, Percent(1, 3))
	// 0.5 は切り上げ
	assert.Equal(t, 13, Percent(1, 8)) // 12.5
	assert.Equal(t, 70, Percent(7, 10))
	assert.Equal(t, 69, Percent(9, 13)) // 69.23
	assert.Equal(t, 100, Percent(5, 5))
}
