package service

import (
	"context"

	"github.com/google/uuid"
)

// DiagnosticKind classifies a data-quality problem found while evaluating merchants.
type DiagnosticKind string

const (
	// DiagnosticMalformedSchedule is reported when a schedule entry has unparseable times.
	DiagnosticMalformedSchedule DiagnosticKind = "malformed_schedule"
	// DiagnosticUnparseableDueDate is reported when a subscription due date cannot be parsed.
	DiagnosticUnparseableDueDate DiagnosticKind = "unparseable_due_date"
	// DiagnosticNegativePrice is reported when a delivery price is below zero.
	DiagnosticNegativePrice DiagnosticKind = "negative_price"
	// DiagnosticInvalidRecord is reported when a merchant record is rejected before evaluation.
	DiagnosticInvalidRecord DiagnosticKind = "invalid_record"
)

// Diagnostic describes a single data-quality problem on a merchant record.
type Diagnostic struct {
	Kind       DiagnosticKind
	MerchantID uuid.UUID
	Field      string // Offending field, e.g. "schedule.Mon.open".
	Value      string // Raw offending value.
	Detail     string
}

// DiagnosticsReporter receives data-quality diagnostics.
// Reporting never fails the evaluation that produced the diagnostic.
type DiagnosticsReporter interface {
	Report(ctx context.Context, diagnostic Diagnostic)
}
