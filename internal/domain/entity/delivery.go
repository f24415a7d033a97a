package entity

import "github.com/shopspring/decimal"

// DeliveryConfig is the closed set of delivery pricing models.
// The only implementations are FixedDelivery and NeighborhoodDelivery.
type DeliveryConfig interface {
	deliveryConfig()
}

// FixedDelivery charges the same price regardless of the consumer's neighborhood.
type FixedDelivery struct {
	Price decimal.Decimal
}

// NeighborhoodDelivery charges a price per consumer neighborhood.
// Neighborhoods missing from Prices are delivered on request.
type NeighborhoodDelivery struct {
	Prices map[string]decimal.Decimal
}

func (FixedDelivery) deliveryConfig()        {}
func (NeighborhoodDelivery) deliveryConfig() {}

// DeliveryDisplay is the delivery annotation shown next to a merchant.
type DeliveryDisplay struct {
	Text   string `json:"text"`
	IsFree bool   `json:"is_free"`
}
