package entity

import "fmt"

// ClosedMarker is stored in place of a time to mark a window as closed.
const ClosedMarker = "closed"

// Default window applied when a day resolves to nothing usable.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "17:00"
)

// Location-level toggles stored alongside the opening hours.
const (
	ToggleOpen247       = "open_247"
	ToggleMultipleTimes = "multiple_opening_hours"
)

// overrideSuffix is appended to a field or day key to form its override flag key.
const overrideSuffix = "_override"

// OverrideKey returns the store key of the override flag guarding key.
func OverrideKey(key string) string {
	return key + overrideSuffix
}

// OpeningWindow is a day's normalized schedule: a primary window, an optional
// secondary window and a full-day flag.
type OpeningWindow struct {
	From       string `json:"from"`
	To         string `json:"to"`
	SecondFrom string `json:"second_from"`
	SecondTo   string `json:"second_to"`
	Is24h      bool   `json:"is_24h"`
}

// DayKeys holds the store keys of one day's sub-fields.
type DayKeys struct {
	From       string
	To         string
	SecondFrom string
	SecondTo   string
	Is24h      string
	Day        string
}

// KeysFor returns the store keys of day's opening window.
func KeysFor(day Weekday) DayKeys {
	base := fmt.Sprintf("opening_hours_%s", day)

	return DayKeys{
		From:       base + "_from",
		To:         base + "_to",
		SecondFrom: base + "_second_from",
		SecondTo:   base + "_second_to",
		Is24h:      base + "_24h",
		Day:        base,
	}
}

// ResolvedDay is the effective opening window for one day of one location.
// From/To/SecondFrom/SecondTo are always 24-hour values (or the closed marker,
// or empty); the Display fields carry the requested rendering.
type ResolvedDay struct {
	Day               Weekday `json:"-"`
	DayName           string  `json:"day"`
	From              string  `json:"from"`
	To                string  `json:"to"`
	SecondFrom        string  `json:"second_from"`
	SecondTo          string  `json:"second_to"`
	DisplayFrom       string  `json:"display_from"`
	DisplayTo         string  `json:"display_to"`
	DisplaySecondFrom string  `json:"display_second_from"`
	DisplaySecondTo   string  `json:"display_second_to"`
	Is24h             bool    `json:"is_24h"`
	UseMultipleTimes  bool    `json:"use_multiple_times"`
	IsOverridden      bool    `json:"is_overridden"`
	Format24h         bool    `json:"format_24h"`
}
