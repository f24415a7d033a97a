package observability

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/service"
	logs "vitrine/internal/infra/log"
)

// DiagnosticsReporter logs diagnostics and counts them per kind.
type DiagnosticsReporter struct {
	logger  *slog.Logger
	metrics *Metrics
}

// NewDiagnosticsReporter creates a reporter. metrics may be nil.
func NewDiagnosticsReporter(logger *slog.Logger, metrics *Metrics) service.DiagnosticsReporter {
	return &DiagnosticsReporter{
		logger:  logger,
		metrics: metrics,
	}
}

// Report implements service.DiagnosticsReporter.
func (r *DiagnosticsReporter) Report(ctx context.Context, diagnostic service.Diagnostic) {
	logs.FromContext(ctx, r.logger).WarnContext(ctx, "merchant data diagnostic",
		slog.String("kind", string(diagnostic.Kind)),
		slog.String("merchant_id", diagnostic.MerchantID.String()),
		slog.String("field", diagnostic.Field),
		slog.String("value", diagnostic.Value),
		slog.String("detail", diagnostic.Detail),
	)

	if r.metrics != nil {
		r.metrics.countDiagnostic(diagnostic.Kind)
	}
}
