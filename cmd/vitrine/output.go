package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/fx"
)

type printParams struct {
	fx.In

	Feed     usecase.FeedUsecase
	Config   *config.Config
	Flags    cliFlags
	Registry *prometheus.Registry
}

func (p printParams) consumer() entity.ConsumerContext {
	return entity.ConsumerContext{
		Query:        p.Flags.query,
		CategoryID:   p.Flags.category,
		Neighborhood: p.Flags.neighborhood,
	}
}

func newMerchantLabel(cfg *config.Config) string {
	if cfg.Feed == nil || cfg.Feed.NewMerchantLabel == "" {
		return entity.DefaultNewMerchantLabel
	}

	return cfg.Feed.NewMerchantLabel
}

var emptyMessages = map[entity.EmptyReason]string{
	entity.EmptyReasonNoSearchMatches:       "No merchants match your search.",
	entity.EmptyReasonNoMerchantsInCategory: "No merchants in this category yet.",
}

// writeFeed prints one line per result; the score column only appears while searching.
func writeFeed(out io.Writer, feed *entity.Feed, newLabel string) error {
	if feed.IsEmpty() {
		_, err := fmt.Fprintln(out, emptyMessages[feed.Empty])

		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "#\tMERCHANT\tSTATUS\tRATING\tDELIVERY"
	if feed.Searching {
		header += "\tSCORE"
	}
	fmt.Fprintln(w, header)

	for i, result := range feed.Results {
		status := "closed"
		if result.IsOpenNow {
			status = "open"
		}

		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s",
			i+1, result.Merchant.Name, status, result.RatingLabel(newLabel), result.Delivery.Text)
		if result.Score != nil {
			line += "\t" + strconv.Itoa(*result.Score)
		}
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	fmt.Fprintln(out)
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}

	return nil
}
