package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	// Tuesday 2026-03-10 -> Monday 2026-03-09
	tue := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(tue))

	// Sunday belongs to the week that started the previous Monday
	sun := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(sun))

	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, startOfWeek(mon))
}

func TestDateWindowDays(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	w := NewDateWindow(today)

	days := w.Days()
	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	assert.Equal(t, days[0].AddDate(0, 0, 6), days[6])
}

func TestDateWindowNavigation(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	w := NewDateWindow(today)
	start := w.Start()

	// cannot move before the current week
	assert.False(t, w.PrevWeek(today))
	assert.Equal(t, start, w.Start())

	// forward is always allowed, and back from there works
	w.NextWeek()
	assert.Equal(t, start.AddDate(0, 0, 7), w.Start())

	assert.True(t, w.PrevWeek(today))
	assert.Equal(t, start, w.Start())

	assert.False(t, w.PrevWeek(today))
}
