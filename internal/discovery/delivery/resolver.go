// Package delivery resolves the delivery fee shown to a consumer.
package delivery

import (
	"context"
	"maps"
	"slices"

	"vitrine/internal/discovery/textmatch"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"

	"github.com/shopspring/decimal"
)

// Labels are the non-price texts a delivery display can carry.
type Labels struct {
	Free           string `json:"free" yaml:"free"`
	OnRequest      string `json:"onRequest" yaml:"onRequest"`
	SelectLocation string `json:"selectLocation" yaml:"selectLocation"`
}

// DefaultLabels returns the pt-BR labels.
func DefaultLabels() Labels {
	return Labels{
		Free:           "Grátis",
		OnRequest:      "A combinar",
		SelectLocation: "Selecione sua localização",
	}
}

// Resolver computes the delivery display for a merchant and a consumer neighborhood.
type Resolver struct {
	currency CurrencyFormat
	labels   Labels
	reporter service.DiagnosticsReporter
}

// NewResolver creates a delivery resolver. Empty labels and an empty decimal
// separator fall back to the defaults. reporter may be nil.
func NewResolver(currency CurrencyFormat, labels Labels, reporter service.DiagnosticsReporter) *Resolver {
	defaults := DefaultLabels()
	if labels.Free == "" {
		labels.Free = defaults.Free
	}
	if labels.OnRequest == "" {
		labels.OnRequest = defaults.OnRequest
	}
	if labels.SelectLocation == "" {
		labels.SelectLocation = defaults.SelectLocation
	}
	if currency.DecimalSeparator == "" {
		currency = DefaultCurrencyFormat()
	}

	return &Resolver{
		currency: currency,
		labels:   labels,
		reporter: reporter,
	}
}

// Resolve returns the delivery display of merchant for a consumer in neighborhood.
// An empty neighborhood means the consumer has not chosen an address yet.
func (r *Resolver) Resolve(ctx context.Context, merchant *entity.Merchant, neighborhood string) entity.DeliveryDisplay {
	switch cfg := merchant.Delivery.(type) {
	case entity.FixedDelivery:
		return r.priced(ctx, merchant, cfg.Price)
	case entity.NeighborhoodDelivery:
		return r.byNeighborhood(ctx, merchant, cfg.Prices, neighborhood)
	default:
		price := decimal.Zero
		if merchant.LegacyDeliveryPrice != nil {
			price = *merchant.LegacyDeliveryPrice
		}

		return r.priced(ctx, merchant, price)
	}
}

func (r *Resolver) byNeighborhood(ctx context.Context, merchant *entity.Merchant, prices map[string]decimal.Decimal, neighborhood string) entity.DeliveryDisplay {
	if textmatch.Normalize(neighborhood) == "" {
		return entity.DeliveryDisplay{Text: r.labels.SelectLocation}
	}

	price, ok := lookupNeighborhood(prices, neighborhood)
	if !ok {
		return entity.DeliveryDisplay{Text: r.labels.OnRequest}
	}

	return r.priced(ctx, merchant, price)
}

func (r *Resolver) priced(ctx context.Context, merchant *entity.Merchant, price decimal.Decimal) entity.DeliveryDisplay {
	if price.IsNegative() {
		if r.reporter != nil {
			r.reporter.Report(ctx, service.Diagnostic{
				Kind:       service.DiagnosticNegativePrice,
				MerchantID: merchant.ID,
				Field:      "delivery",
				Value:      price.String(),
				Detail:     "negative delivery price treated as free",
			})
		}
		price = decimal.Zero
	}

	if price.IsZero() {
		return entity.DeliveryDisplay{Text: r.labels.Free, IsFree: true}
	}

	return entity.DeliveryDisplay{Text: r.currency.Format(price)}
}

// lookupNeighborhood finds the price for neighborhood, first by exact key and then
// ignoring case, diacritics and surrounding whitespace.
// Keys that normalize alike are resolved in sorted key order, so the first one wins.
func lookupNeighborhood(prices map[string]decimal.Decimal, neighborhood string) (decimal.Decimal, bool) {
	if price, ok := prices[neighborhood]; ok {
		return price, true
	}

	wanted := textmatch.Normalize(neighborhood)
	for _, name := range slices.Sorted(maps.Keys(prices)) {
		if textmatch.Normalize(name) == wanted {
			return prices[name], true
		}
	}

	return decimal.Zero, false
}
