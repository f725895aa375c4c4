package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	t.Run("first activity starts streak at 1", func(t *testing.T) {
		now := day(1, 9)
		got := Advance(State{}, now)
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 1, got.Longest)
		assert.Equal(t, now, *got.LastActivity)
	})

	t.Run("next calendar day increments", func(t *testing.T) {
		last := day(1, 23)
		got := Advance(State{Current: 1, Longest: 1, LastActivity: &last}, day(2, 1))
		assert.Equal(t, 2, got.Current)
		assert.Equal(t, 2, got.Longest)
	})

	t.Run("longest only raised when exceeded", func(t *testing.T) {
		last := day(1, 12)
		got := Advance(State{Current: 2, Longest: 9, LastActivity: &last}, day(2, 12))
		assert.Equal(t, 3, got.Current)
		assert.Equal(t, 9, got.Longest)
	})

	t.Run("gap of two days resets", func(t *testing.T) {
		last := day(1, 12)
		got := Advance(State{Current: 7, Longest: 7, LastActivity: &last}, day(4, 12))
		assert.Equal(t, 1, got.Current)
		assert.Equal(t, 7, got.Longest)
	})

	t.Run("same day repeat leaves streak unchanged", func(t *testing.T) {
		last := day(5, 8)
		now := day(5, 20)
		got := Advance(State{Current: 3, Longest: 5, LastActivity: &last}, now)
		assert.Equal(t, 3, got.Current)
		assert.Equal(t, 5, got.Longest)
		assert.Equal(t, now, *got.LastActivity)
	})
}

func TestDayDiffIgnoresTimeOfDay(t *testing.T) {
	// 23:00 -> 00:00 the next day is still one calendar day apart.
	assert.Equal(t, 1, dayDiff(day(1, 23), day(2, 0)))
	assert.Equal(t, 0, dayDiff(day(1, 0), day(1, 23)))
	assert.Equal(t, 3, dayDiff(day(1, 12), day(4, 12)))
}
