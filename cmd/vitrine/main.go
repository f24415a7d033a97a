package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"
	"vitrine/internal/infra/clock"
	logs "vitrine/internal/infra/log"
	"vitrine/internal/infra/observability"
	"vitrine/internal/infra/persistence/snapshot"
	"vitrine/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// cliFlags holds the command line of a single feed evaluation.
type cliFlags struct {
	query        string
	category     string
	neighborhood string
	snapshot     string
	at           string
	metrics      bool
}

func main() {
	flags := parseFlags()

	app := fx.New(
		fx.Supply(flags),
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		fx.Invoke(
			printFeed,
		),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "vitrine: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() cliFlags {
	var flags cliFlags

	flag.StringVar(&flags.query, "query", "", "Free-text search query; empty browses by category")
	flag.StringVar(&flags.category, "category", "all", "Category to browse when no query is given")
	flag.StringVar(&flags.neighborhood, "neighborhood", "", "Consumer neighborhood used for delivery fees")
	flag.StringVar(&flags.snapshot, "snapshot", "", "Merchant snapshot file (overrides snapshot.path)")
	flag.StringVar(&flags.at, "at", "", "Evaluate at this RFC3339 instant instead of now")
	flag.BoolVar(&flags.metrics, "metrics", false, "Print the collected metrics after the feed")
	flag.Parse()

	return flags
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			newClock,
			prometheus.NewRegistry,
			func(reg *prometheus.Registry) prometheus.Registerer { return reg },
			observability.NewMetrics,
			func(metrics *observability.Metrics) service.EvaluationRecorder { return metrics },
			observability.NewDiagnosticsReporter,
		),
		// The -snapshot flag takes precedence over the configured path
		fx.Decorate(func(cfg *config.Config, flags cliFlags) *config.Config {
			if flags.snapshot != "" {
				cfg.Snapshot.Path = flags.snapshot
			}

			return cfg
		}),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			snapshot.NewFileRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFeedService,
		),
	)
}

// newClock returns the system clock, or a clock frozen at -at in the feed time zone.
func newClock(cfg *config.Config, flags cliFlags) (service.Clock, error) {
	if flags.at == "" {
		return clock.NewSystem(cfg)
	}

	instant, err := time.Parse(time.RFC3339, flags.at)
	if err != nil {
		return nil, errors.Wrapf(err, "parse -at %q", flags.at)
	}

	location, err := clock.Location(cfg)
	if err != nil {
		return nil, err
	}

	return clock.NewFixed(instant.In(location)), nil
}

func printFeed(params printParams) error {
	ctx := context.Background()

	feed, err := params.Feed.Discover(ctx, params.consumer())
	if err != nil {
		return errors.Wrap(err, "discover feed")
	}

	newLabel := newMerchantLabel(params.Config)
	if err := writeFeed(os.Stdout, feed, newLabel); err != nil {
		return errors.Wrap(err, "write feed")
	}

	if params.Flags.metrics {
		return writeMetrics(os.Stdout, params.Registry)
	}

	return nil
}
