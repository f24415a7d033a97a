// Package visibility decides whether a merchant may appear in a feed at all.
package visibility

import (
	"math"
	"time"

	"vitrine/internal/domain/entity"
)

// DefaultGracePeriodDays is how many days past its due date a non-trial merchant stays visible.
const DefaultGracePeriodDays = 5

// Gate applies subscription-based visibility rules.
type Gate struct {
	gracePeriodDays int
}

// NewGate creates a visibility gate. A non-positive grace period falls back to DefaultGracePeriodDays.
func NewGate(gracePeriodDays int) *Gate {
	if gracePeriodDays <= 0 {
		gracePeriodDays = DefaultGracePeriodDays
	}

	return &Gate{gracePeriodDays: gracePeriodDays}
}

// IsVisible reports whether merchant may be shown at now.
//
// Suspended merchants are never visible. Trial merchants and merchants without a due date are
// always visible. Everyone else stays visible until the grace period after the due date runs out.
func (g *Gate) IsVisible(merchant *entity.Merchant, now time.Time) bool {
	if merchant.Subscription == entity.SubscriptionSuspended {
		return false
	}

	if merchant.NextDueAt == nil || merchant.Subscription == entity.SubscriptionTrial {
		return true
	}

	return DaysPastDue(*merchant.NextDueAt, now) <= g.gracePeriodDays
}

// DaysPastDue returns the number of started days between due and now, rounded up.
// It is zero or negative while due is not in the past.
func DaysPastDue(due, now time.Time) int {
	return int(math.Ceil(now.Sub(due).Hours() / 24))
}
