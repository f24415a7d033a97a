package entity

import "time"

// DayKey identifies one day of the weekly schedule.
type DayKey string

const (
	DaySunday    DayKey = "Sun"
	DayMonday    DayKey = "Mon"
	DayTuesday   DayKey = "Tue"
	DayWednesday DayKey = "Wed"
	DayThursday  DayKey = "Thu"
	DayFriday    DayKey = "Fri"
	DaySaturday  DayKey = "Sat"
)

// weekdayKeys is indexed by time.Weekday.
var weekdayKeys = [7]DayKey{
	DaySunday,
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
}

// DayKeyOf returns the schedule key for the given weekday.
func DayKeyOf(day time.Weekday) DayKey {
	return weekdayKeys[int(day)%len(weekdayKeys)]
}

// DayKeys returns the seven schedule keys starting on Sunday.
func DayKeys() []DayKey {
	keys := make([]DayKey, len(weekdayKeys))
	copy(keys, weekdayKeys[:])

	return keys
}

// String returns the string representation of the DayKey.
func (d DayKey) String() string {
	return string(d)
}

// DaySchedule is the opening window of a single day.
// Open and Close are "HH:MM" strings; Close earlier than Open means the window crosses midnight.
type DaySchedule struct {
	IsOpen bool
	Open   string
	Close  string
}

// WeeklySchedule maps each day key to its opening window.
type WeeklySchedule map[DayKey]DaySchedule

// Day returns the entry for the given day, if present.
func (s WeeklySchedule) Day(key DayKey) (DaySchedule, bool) {
	day, ok := s[key]

	return day, ok
}
