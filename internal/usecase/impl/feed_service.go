package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"vitrine/config"
	"vitrine/internal/discovery/availability"
	"vitrine/internal/discovery/delivery"
	"vitrine/internal/discovery/textmatch"
	"vitrine/internal/discovery/visibility"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	logs "vitrine/internal/infra/log"
	"vitrine/internal/usecase"

	"github.com/pkg/errors"
)

type feedService struct {
	merchantRepo repository.MerchantRepository
	clock        service.Clock
	recorder     service.EvaluationRecorder
	logger       *slog.Logger

	gate      *visibility.Gate
	evaluator *availability.Evaluator
	ranker    *textmatch.Ranker
	resolver  *delivery.Resolver

	// nil sorts unrated merchants after every rated one
	unratedSortValue *float64
}

// candidate is a visible merchant carried through filtering and sorting.
type candidate struct {
	merchant *entity.Merchant
	name     string // normalized name for tie-breaking
	open     bool
	score    int
}

// NewFeedService creates a new feed service instance. recorder may be nil.
func NewFeedService(
	merchantRepo repository.MerchantRepository,
	clock service.Clock,
	reporter service.DiagnosticsReporter,
	recorder service.EvaluationRecorder,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.FeedUsecase {
	// If Feed is not configured, every component runs on its defaults
	if cfg.Feed == nil {
		cfg.Feed = &config.FeedConfig{}
	}
	feedCfg := cfg.Feed

	return &feedService{
		merchantRepo:     merchantRepo,
		clock:            clock,
		recorder:         recorder,
		logger:           logger,
		gate:             visibility.NewGate(feedCfg.GracePeriodDays),
		evaluator:        availability.NewEvaluator(availabilityPolicy(feedCfg.Availability), reporter),
		ranker:           textmatch.NewRanker(rankingWeights(feedCfg.Ranking)),
		resolver:         newResolver(feedCfg.Delivery, reporter),
		unratedSortValue: feedCfg.UnratedSortValue,
	}
}

func availabilityPolicy(cfg *config.AvailabilityConfig) availability.Policy {
	policy := availability.DefaultPolicy()
	if cfg == nil {
		return policy
	}

	if cfg.OpenWhenUnflagged != nil {
		policy.OpenWhenUnflagged = *cfg.OpenWhenUnflagged
	}
	policy.ConsultPreviousDay = cfg.ConsultPreviousDay

	return policy
}

func rankingWeights(cfg *config.RankingConfig) *textmatch.Weights {
	if cfg == nil {
		return nil
	}

	return &textmatch.Weights{
		ExactName:     cfg.ExactName,
		PrefixName:    cfg.PrefixName,
		SubstringName: cfg.SubstringName,
		Tag:           cfg.Tag,
		Description:   cfg.Description,
		WordOverlap:   cfg.WordOverlap,
		Fuzzy:         cfg.Fuzzy,
	}
}

func newResolver(cfg *config.DeliveryConfig, reporter service.DiagnosticsReporter) *delivery.Resolver {
	currency := delivery.DefaultCurrencyFormat()
	if cfg == nil {
		return delivery.NewResolver(currency, delivery.DefaultLabels(), reporter)
	}

	if cfg.CurrencySymbol != "" {
		currency.Symbol = cfg.CurrencySymbol
	}
	if cfg.DecimalSeparator != "" {
		currency.DecimalSeparator = cfg.DecimalSeparator
	}
	if cfg.ThousandsSeparator != "" {
		currency.ThousandsSeparator = cfg.ThousandsSeparator
	}

	return delivery.NewResolver(currency, delivery.Labels{
		Free:           cfg.FreeLabel,
		OnRequest:      cfg.OnRequestLabel,
		SelectLocation: cfg.SelectLocationLabel,
	}, reporter)
}

// Discover loads the approved merchants and assembles the feed at the clock's current time
func (s *feedService) Discover(ctx context.Context, consumer entity.ConsumerContext) (*entity.Feed, error) {
	ctx = logs.WithEvaluation(ctx, s.logger)

	merchants, err := s.merchantRepo.ListApprovedMerchants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved merchants")
	}

	return s.Assemble(ctx, merchants, consumer, s.clock.Now()), nil
}

// Assemble gates, filters, ranks and annotates snapshot for consumer at now
func (s *feedService) Assemble(ctx context.Context, snapshot []*entity.Merchant, consumer entity.ConsumerContext, now time.Time) *entity.Feed {
	start := time.Now()
	searching := consumer.IsSearching()
	query := textmatch.Normalize(consumer.Query)

	candidates := make([]candidate, 0, len(snapshot))
	for _, merchant := range snapshot {
		if merchant == nil || !s.gate.IsVisible(merchant, now) {
			continue
		}

		c := candidate{
			merchant: merchant,
			name:     textmatch.Normalize(merchant.Name),
			open:     s.evaluator.IsOpenNow(ctx, merchant, now),
		}

		if searching {
			c.score = s.ranker.Score(merchant, query)
			if c.score == 0 {
				continue
			}
		} else if !consumer.AllCategories() && !textmatch.MatchesCategory(merchant, consumer.CategoryID) {
			continue
		}

		candidates = append(candidates, c)
	}

	slices.SortStableFunc(candidates, s.compare(searching))

	feed := &entity.Feed{
		Results:   make([]entity.RankedResult, 0, len(candidates)),
		Searching: searching,
	}

	for _, c := range candidates {
		result := entity.RankedResult{
			Merchant:  c.merchant,
			IsOpenNow: c.open,
			Delivery:  s.resolver.Resolve(ctx, c.merchant, consumer.Neighborhood),
		}
		if searching {
			score := c.score
			result.Score = &score
		}

		feed.Results = append(feed.Results, result)
	}

	mode := service.FeedModeBrowse
	if searching {
		mode = service.FeedModeSearch
	}

	if feed.IsEmpty() {
		feed.Empty = entity.EmptyReasonNoMerchantsInCategory
		if searching {
			feed.Empty = entity.EmptyReasonNoSearchMatches
		}
	}

	if s.recorder != nil {
		s.recorder.ObserveEvaluation(mode, time.Since(start), len(snapshot), len(feed.Results))
	}

	logs.FromContext(ctx, s.logger).DebugContext(ctx, "feed assembled",
		slog.String("mode", string(mode)),
		slog.String("query", query),
		slog.String("category", consumer.CategoryID),
		slog.Int("candidates", len(snapshot)),
		slog.Int("results", len(feed.Results)),
		slog.String("empty", string(feed.Empty)),
	)

	return feed
}

// compare orders open merchants first, then by score (search) or rating (browse),
// then by normalized name and finally by ID.
func (s *feedService) compare(searching bool) func(a, b candidate) int {
	return func(a, b candidate) int {
		if a.open != b.open {
			if a.open {
				return -1
			}

			return 1
		}

		if searching {
			if c := cmp.Compare(b.score, a.score); c != 0 {
				return c
			}
		} else if c := s.compareRating(a.merchant, b.merchant); c != 0 {
			return c
		}

		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}

		return strings.Compare(a.merchant.ID.String(), b.merchant.ID.String())
	}
}

// compareRating sorts higher ratings first.
func (s *feedService) compareRating(a, b *entity.Merchant) int {
	ra, okA := s.sortRating(a)
	rb, okB := s.sortRating(b)

	switch {
	case okA && okB:
		return cmp.Compare(rb, ra)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

func (s *feedService) sortRating(merchant *entity.Merchant) (float64, bool) {
	if merchant.Rating != nil {
		return *merchant.Rating, true
	}
	if s.unratedSortValue != nil {
		return *s.unratedSortValue, true
	}

	return 0, false
}
