package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"
	logs "vitrine/internal/infra/log"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsReporter_LogsAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg, &config.Config{})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	reporter := NewDiagnosticsReporter(logger, metrics)

	merchantID := uuid.New()
	reporter.Report(context.Background(), service.Diagnostic{
		Kind:       service.DiagnosticMalformedSchedule,
		MerchantID: merchantID,
		Field:      "schedule.Mon.open",
		Value:      "8h",
	})
	reporter.Report(context.Background(), service.Diagnostic{Kind: service.DiagnosticMalformedSchedule})
	reporter.Report(context.Background(), service.Diagnostic{Kind: service.DiagnosticUnparseableDueDate})

	assert.Contains(t, buf.String(), "merchant data diagnostic")
	assert.Contains(t, buf.String(), merchantID.String())
	assert.Contains(t, buf.String(), "schedule.Mon.open")
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.diagnostics.WithLabelValues(string(service.DiagnosticMalformedSchedule))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.diagnostics.WithLabelValues(string(service.DiagnosticUnparseableDueDate))), 0)
}

func TestDiagnosticsReporter_WithoutMetrics(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticsReporter(slog.New(slog.NewJSONHandler(&buf, nil)), nil)

	assert.NotPanics(t, func() {
		reporter.Report(context.Background(), service.Diagnostic{Kind: service.DiagnosticNegativePrice})
	})
	assert.Contains(t, buf.String(), "negative_price")
}

func TestMetrics_ObserveEvaluation(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := &config.Config{Metrics: &config.MetricsConfig{Namespace: "test"}}
	metrics := NewMetrics(reg, cfg)

	metrics.ObserveEvaluation(service.FeedModeSearch, 2*time.Millisecond, 10, 3)
	metrics.ObserveEvaluation(service.FeedModeSearch, time.Millisecond, 5, 5)
	metrics.ObserveEvaluation(service.FeedModeBrowse, time.Millisecond, 4, 1)

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.evaluations.WithLabelValues("search")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.evaluations.WithLabelValues("browse")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(metrics.dropped.WithLabelValues("search")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.dropped.WithLabelValues("browse")), 0)

	families, err := reg.Gather()
	assert.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_feed_evaluations_total")
	assert.Contains(t, names, "test_feed_evaluation_duration_seconds")
}

func TestDiagnosticsReporter_UsesEvaluationLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	reporter := NewDiagnosticsReporter(logger, nil)

	ctx := logs.WithEvaluation(context.Background(), logger)
	reporter.Report(ctx, service.Diagnostic{Kind: service.DiagnosticMalformedSchedule})

	assert.Contains(t, buf.String(), "evaluation_id="+logs.EvaluationIDFromContext(ctx))
}
