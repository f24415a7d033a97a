// Package model holds the on-disk shapes of the merchant snapshot.
package model

import "github.com/shopspring/decimal"

// SnapshotDocument is the root of a merchant snapshot file.
type SnapshotDocument struct {
	Merchants []MerchantDocument `koanf:"merchants"`
}

// MerchantDocument mirrors one merchant record of the snapshot file.
// Schedule keys are locale day labels such as "seg" or "mon".
type MerchantDocument struct {
	ID              string                 `koanf:"id" validate:"required,uuid"`
	Name            string                 `koanf:"name" validate:"required"`
	Description     string                 `koanf:"description"`
	Tags            []string               `koanf:"tags"`
	Category        string                 `koanf:"category"`
	Rating          *float64               `koanf:"rating" validate:"omitempty,gte=0,lte=5"`
	RatingBreakdown *RatingDocument        `koanf:"ratingBreakdown"`
	ManualOpen      *bool                  `koanf:"manualOpen"`
	Schedule        map[string]DayDocument `koanf:"schedule"`
	Delivery        *DeliveryDocument      `koanf:"delivery"`
	DeliveryPrice   *decimal.Decimal       `koanf:"deliveryPrice"`
	Subscription    SubscriptionDocument   `koanf:"subscription"`
}

// RatingDocument mirrors the per-dimension rating averages.
type RatingDocument struct {
	Product  float64 `koanf:"product" validate:"gte=0,lte=5"`
	Delivery float64 `koanf:"delivery" validate:"gte=0,lte=5"`
	Service  float64 `koanf:"service" validate:"gte=0,lte=5"`
}

// DayDocument mirrors one day of a weekly schedule. Times are "HH:MM".
type DayDocument struct {
	IsOpen bool   `koanf:"isOpen"`
	Open   string `koanf:"open"`
	Close  string `koanf:"close"`
}

// Delivery document types.
const (
	DeliveryTypeFixed        = "fixed"
	DeliveryTypeNeighborhood = "neighborhood"
)

// DeliveryDocument mirrors the delivery pricing model.
// Price is read for fixed delivery, Prices for per-neighborhood delivery.
type DeliveryDocument struct {
	Type   string                     `koanf:"type" validate:"required,oneof=fixed neighborhood"`
	Price  decimal.Decimal            `koanf:"price"`
	Prices map[string]decimal.Decimal `koanf:"prices"`
}

// SubscriptionDocument mirrors the merchant's subscription state.
// NextDueAt accepts RFC3339 or YYYY-MM-DD.
type SubscriptionDocument struct {
	Status    string `koanf:"status"`
	NextDueAt string `koanf:"nextDueAt"`
}
