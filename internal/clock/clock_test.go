package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// UTC 16:30 は東京では翌日 01:30
	c := Fixed{T: time.Date(2024, 3, 9, 16, 30, 0, 0, time.UTC)}

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Today(c, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Today(c, tokyo))
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Today(c, nil))
}

func TestAddDaysAndFormat(t *testing.T) {
	d := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", FormatDate(AddDays(d, 1)))
	assert.Equal(t, "2024-03-06", FormatDate(AddDays(d, 7)))
}
