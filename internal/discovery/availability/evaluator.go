// Package availability decides whether a merchant is open at a given instant.
package availability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
)

const minutesPerDay = 24 * 60

// Policy holds the tunable parts of the open/closed decision.
type Policy struct {
	// OpenWhenUnflagged decides merchants whose manual open switch was never set.
	// When false they are closed regardless of their schedule.
	OpenWhenUnflagged bool `json:"openWhenUnflagged" yaml:"openWhenUnflagged"`

	// ConsultPreviousDay makes early-hours checks use yesterday's window when it crosses midnight.
	// When false only today's entry is consulted and its crossing window is reused for the early hours.
	ConsultPreviousDay bool `json:"consultPreviousDay" yaml:"consultPreviousDay"`
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{
		OpenWhenUnflagged:  true,
		ConsultPreviousDay: false,
	}
}

// Evaluator computes isOpenNow. It keeps no state between calls.
type Evaluator struct {
	policy   Policy
	reporter service.DiagnosticsReporter
}

// NewEvaluator creates an availability evaluator. reporter may be nil.
func NewEvaluator(policy Policy, reporter service.DiagnosticsReporter) *Evaluator {
	return &Evaluator{
		policy:   policy,
		reporter: reporter,
	}
}

// window is an opening interval in minutes since midnight.
// A window whose close time is earlier than its open time wraps and ends on the next day.
type window struct {
	start int
	end   int
	wraps bool
}

func (w window) contains(minute int) bool {
	return w.start <= minute && minute <= w.end
}

// IsOpenNow reports whether merchant is open at now.
// now must already be in the location the schedule is expressed in.
func (e *Evaluator) IsOpenNow(ctx context.Context, merchant *entity.Merchant, now time.Time) bool {
	if merchant.ManualOpen != nil && !*merchant.ManualOpen {
		return false
	}
	if merchant.ManualOpen == nil && !e.policy.OpenWhenUnflagged {
		return false
	}
	if len(merchant.Schedule) == 0 {
		return true
	}

	minute := now.Hour()*60 + now.Minute()
	today := entity.DayKeyOf(now.Weekday())

	if e.policy.ConsultPreviousDay {
		return e.openConsultingPreviousDay(ctx, merchant, now.Weekday(), minute)
	}

	w, ok := e.dayWindow(ctx, merchant, today)
	if !ok {
		return false
	}

	if w.wraps && minute < w.start {
		minute += minutesPerDay
	}

	return w.contains(minute)
}

func (e *Evaluator) openConsultingPreviousDay(ctx context.Context, merchant *entity.Merchant, weekday time.Weekday, minute int) bool {
	if w, ok := e.dayWindow(ctx, merchant, entity.DayKeyOf(weekday)); ok && w.contains(minute) {
		return true
	}

	yesterday := entity.DayKeyOf((weekday + 6) % 7)
	w, ok := e.dayWindow(ctx, merchant, yesterday)
	if !ok || !w.wraps {
		return false
	}

	return w.contains(minute + minutesPerDay)
}

// dayWindow resolves the opening window of a day; ok is false when the merchant is closed all day.
func (e *Evaluator) dayWindow(ctx context.Context, merchant *entity.Merchant, key entity.DayKey) (window, bool) {
	day, ok := merchant.Schedule.Day(key)
	if !ok || !day.IsOpen {
		return window{}, false
	}

	start, err := ParseClock(day.Open)
	if err != nil {
		e.reportMalformed(ctx, merchant, key, "open", day.Open, err)

		return window{}, false
	}

	end, err := ParseClock(day.Close)
	if err != nil {
		e.reportMalformed(ctx, merchant, key, "close", day.Close, err)

		return window{}, false
	}

	w := window{start: start, end: end}
	if end < start {
		w.end += minutesPerDay
		w.wraps = true
	}

	return w, true
}

func (e *Evaluator) reportMalformed(ctx context.Context, merchant *entity.Merchant, key entity.DayKey, field, value string, err error) {
	if e.reporter == nil {
		return
	}

	e.reporter.Report(ctx, service.Diagnostic{
		Kind:       service.DiagnosticMalformedSchedule,
		MerchantID: merchant.ID,
		Field:      "schedule." + key.String() + "." + field,
		Value:      value,
		Detail:     err.Error(),
	})
}

// ParseClock parses an "HH:MM" time of day into minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseClock(value string) (int, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, errors.Errorf("time %q is not in HH:MM format", value)
	}

	if !isDigits(hh, 1, 2) {
		return 0, errors.Errorf("invalid hours in %q", value)
	}
	if !isDigits(mm, 2, 2) {
		return 0, errors.Errorf("invalid minutes in %q", value)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid hours in %q", value)
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid minutes in %q", value)
	}

	if minutes > 59 || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, errors.Errorf("time %q is out of range", value)
	}

	return hours*60 + minutes, nil
}

// isDigits reports whether s is between minLen and maxLen ASCII digits.
func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
