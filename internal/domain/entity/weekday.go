package entity

import (
	"strings"
	"time"
)

// Weekday is the ordered set of seven opening-hours days. The order is fixed;
// any "start of week" rotation is a presentation concern, see WeekStartingOn.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// Weekdays returns the seven days starting on Monday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday accepts a day name in any casing, surrounded by any whitespace.
func ParseWeekday(raw string) (Weekday, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range weekdayNames {
		if name == key {
			return Weekday(i), true
		}
	}

	return 0, false
}

// WeekdayOf maps a civil date's weekday onto the opening-hours enum.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}

	return Weekday(t.Weekday() - 1)
}

// WeekStartingOn returns the seven days rotated so that start comes first.
func WeekStartingOn(start Weekday) []Weekday {
	if !start.Valid() {
		start = Monday
	}

	days := make([]Weekday, 0, 7)
	for i := range 7 {
		days = append(days, Weekday((int(start)+i)%7))
	}

	return days
}

// Valid reports whether d is one of the seven days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the lowercase english day name used in store keys.
func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}

	return weekdayNames[d]
}
