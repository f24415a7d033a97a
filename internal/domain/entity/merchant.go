// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Merchant is a store's catalog entry as seen by the discovery feed.
// Merchants are read-only snapshots; the feed never mutates them.
type Merchant struct {
	ID                  uuid.UUID          // The Global Unique Identifier (GUID) for the merchant.
	Name                string             // Display name.
	Description         string             // Optional free-text description, empty when absent.
	Tags                []string           // Free-form tags, also used as category membership.
	CategoryID          string             // Primary category identifier.
	Rating              *float64           // Average rating in [0, 5]; nil marks a new merchant.
	RatingBreakdown     *RatingBreakdown   // Optional per-dimension ratings.
	ManualOpen          *bool              // Manual open switch set by the merchant; nil when never set.
	Schedule            WeeklySchedule     // Weekly opening hours; nil when the merchant has none.
	Delivery            DeliveryConfig     // Delivery pricing model; nil when not configured.
	LegacyDeliveryPrice *decimal.Decimal   // Single delivery price used before DeliveryConfig existed.
	Subscription        SubscriptionStatus // Platform subscription state.
	NextDueAt           *time.Time         // Next subscription payment due date, if known.
}

// RatingBreakdown holds the average rating per evaluated dimension.
type RatingBreakdown struct {
	Product  float64
	Delivery float64
	Service  float64
}
