package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
}

func TestDayBounds(t *testing.T) {
	loc := Location(DefaultTimezone)
	at := time.Date(2025, 3, 10, 14, 45, 12, 0, loc)

	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.True(t, at.After(start) && at.Before(end))
}

func TestDayKey(t *testing.T) {
	at := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", DayKey(at))
}
