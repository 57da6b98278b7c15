package wizard

import (
	"time"

	"github.com/sahelnejat/Luna/internal/timezone"
)

// DateWindow is the 7-day rolling window the date picker displays. It is a
// display concern only; the draft's own date validation lives in SetDate.
type DateWindow struct {
	start time.Time // Monday of the displayed week, at midnight
}

// startOfWeek returns the Monday of t's week, normalized to midnight.
func startOfWeek(t time.Time) time.Time {
	day := timezone.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func NewDateWindow(today time.Time) DateWindow {
	return DateWindow{start: startOfWeek(today)}
}

func (w DateWindow) Start() time.Time {
	return w.start
}

// Days returns the seven days of the displayed week.
func (w DateWindow) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = w.start.AddDate(0, 0, i)
	}
	return days
}

// NextWeek is always permitted.
func (w *DateWindow) NextWeek() {
	w.start = w.start.AddDate(0, 0, 7)
}

// PrevWeek regresses one week unless the window would start before the
// current week. Returns whether the window moved.
func (w *DateWindow) PrevWeek(today time.Time) bool {
	prev := w.start.AddDate(0, 0, -7)
	if prev.Before(startOfWeek(today)) {
		return false
	}
	w.start = prev
	return true
}
