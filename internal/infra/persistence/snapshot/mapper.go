package snapshot

import (
	"context"
	"maps"
	"strings"
	"time"

	"vitrine/internal/discovery/textmatch"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dueDateLayout = "2006-01-02"

// dayLabels maps normalized pt-BR and English day labels to day keys.
var dayLabels = map[string]entity.DayKey{
	"dom": entity.DaySunday, "domingo": entity.DaySunday, "sun": entity.DaySunday, "sunday": entity.DaySunday,
	"seg": entity.DayMonday, "segunda": entity.DayMonday, "mon": entity.DayMonday, "monday": entity.DayMonday,
	"ter": entity.DayTuesday, "terca": entity.DayTuesday, "tue": entity.DayTuesday, "tuesday": entity.DayTuesday,
	"qua": entity.DayWednesday, "quarta": entity.DayWednesday, "wed": entity.DayWednesday, "wednesday": entity.DayWednesday,
	"qui": entity.DayThursday, "quinta": entity.DayThursday, "thu": entity.DayThursday, "thursday": entity.DayThursday,
	"sex": entity.DayFriday, "sexta": entity.DayFriday, "fri": entity.DayFriday, "friday": entity.DayFriday,
	"sab": entity.DaySaturday, "sabado": entity.DaySaturday, "sat": entity.DaySaturday, "saturday": entity.DaySaturday,
}

// parseDayLabel resolves a locale day label; "sáb", "Sat" and "sab" all map to Saturday.
func parseDayLabel(label string) (entity.DayKey, bool) {
	key, ok := dayLabels[textmatch.Normalize(label)]

	return key, ok
}

func (repo *fileRepository) toMerchantDomain(ctx context.Context, doc *model.MerchantDocument) (*entity.Merchant, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse merchant id")
	}

	status, ok := entity.ParseSubscriptionStatus(doc.Subscription.Status)
	if !ok {
		return nil, errors.Errorf("unknown subscription status %q", doc.Subscription.Status)
	}

	merchant := &entity.Merchant{
		ID:           id,
		Name:         doc.Name,
		Description:  doc.Description,
		Tags:         doc.Tags,
		CategoryID:   doc.Category,
		Rating:       doc.Rating,
		ManualOpen:   doc.ManualOpen,
		Subscription: status,
	}

	if doc.RatingBreakdown != nil {
		merchant.RatingBreakdown = &entity.RatingBreakdown{
			Product:  doc.RatingBreakdown.Product,
			Delivery: doc.RatingBreakdown.Delivery,
			Service:  doc.RatingBreakdown.Service,
		}
	}

	merchant.Schedule = repo.toScheduleDomain(ctx, id, doc.Schedule)
	merchant.Delivery = toDeliveryDomain(doc.Delivery)

	if doc.DeliveryPrice != nil {
		price := *doc.DeliveryPrice
		merchant.LegacyDeliveryPrice = &price
	}

	if raw := strings.TrimSpace(doc.Subscription.NextDueAt); raw != "" {
		dueAt, err := parseDueDate(raw)
		if err != nil {
			repo.report(ctx, service.Diagnostic{
				Kind:       service.DiagnosticUnparseableDueDate,
				MerchantID: id,
				Field:      "subscription.nextDueAt",
				Value:      raw,
				Detail:     err.Error(),
			})
		} else {
			merchant.NextDueAt = &dueAt
		}
	}

	return merchant, nil
}

func (repo *fileRepository) toScheduleDomain(ctx context.Context, id uuid.UUID, days map[string]model.DayDocument) entity.WeeklySchedule {
	if len(days) == 0 {
		return nil
	}

	schedule := make(entity.WeeklySchedule, len(days))
	for label, day := range days {
		key, ok := parseDayLabel(label)
		if !ok {
			repo.report(ctx, service.Diagnostic{
				Kind:       service.DiagnosticMalformedSchedule,
				MerchantID: id,
				Field:      "schedule",
				Value:      label,
				Detail:     "unknown day label",
			})

			continue
		}

		schedule[key] = entity.DaySchedule{
			IsOpen: day.IsOpen,
			Open:   strings.TrimSpace(day.Open),
			Close:  strings.TrimSpace(day.Close),
		}
	}

	return schedule
}

func toDeliveryDomain(doc *model.DeliveryDocument) entity.DeliveryConfig {
	if doc == nil {
		return nil
	}

	switch doc.Type {
	case model.DeliveryTypeFixed:
		return entity.FixedDelivery{Price: doc.Price}
	case model.DeliveryTypeNeighborhood:
		return entity.NeighborhoodDelivery{Prices: maps.Clone(doc.Prices)}
	default:
		return nil
	}
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Errorf("due date %q is neither RFC3339 nor %s", raw, dueDateLayout)
	}

	return t, nil
}
