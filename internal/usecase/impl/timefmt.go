package impl

import (
	"strings"
	"time"

	"locator/internal/domain/entity"
)

const (
	clockLayout24 = "15:04"
	clockLayout12 = "3:04 PM"
)

// parseClock parses "HH:MM" or "H:MM" into minutes after midnight.
func parseClock(value string) (int, bool) {
	t, err := time.Parse(clockLayout24, strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}

// sanitizeClock keeps valid times and the closed marker; anything else is empty.
func sanitizeClock(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, entity.ClosedMarker) {
		return entity.ClosedMarker
	}
	if _, ok := parseClock(value); !ok {
		return ""
	}

	return value
}

// displayClock renders a stored time for humans. The closed marker and empty
// values pass through verbatim.
func displayClock(value string, format24h bool) string {
	if format24h || value == "" || value == entity.ClosedMarker {
		return value
	}

	t, err := time.Parse(clockLayout24, value)
	if err != nil {
		return value
	}

	return t.Format(clockLayout12)
}

// minuteOfDay returns the local time of day truncated to the minute.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
