package ports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var c Clock = ClockFunc(func() time.Time { return fixed })
	assert.Equal(t, fixed, c.Now())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock.Now()
	assert.False(t, got.Before(before))
}
