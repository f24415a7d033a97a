package usecase

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"
)

// FeedUsecase defines the merchant discovery feed use cases
type FeedUsecase interface {
	// Assemble gates, filters, ranks and annotates snapshot for consumer at now.
	Assemble(ctx context.Context, snapshot []*entity.Merchant, consumer entity.ConsumerContext, now time.Time) *entity.Feed
	// Discover loads the approved merchants and assembles the feed at the current time.
	Discover(ctx context.Context, consumer entity.ConsumerContext) (*entity.Feed, error)
}
