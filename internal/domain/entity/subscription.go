package entity

import "strings"

// SubscriptionStatus represents the merchant's platform subscription state.
type SubscriptionStatus string

const (
	// SubscriptionActive is a paying merchant.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionTrial is a merchant in its trial period; due dates are not enforced.
	SubscriptionTrial SubscriptionStatus = "trial"
	// SubscriptionSuspended hides the merchant from every feed.
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrial, SubscriptionSuspended:
		return true
	default:
		return false
	}
}

// ParseSubscriptionStatus converts a stored status string into a SubscriptionStatus.
// An empty string is treated as active.
func ParseSubscriptionStatus(raw string) (SubscriptionStatus, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return SubscriptionActive, true
	}

	status := SubscriptionStatus(raw)

	return status, status.IsValid()
}
