// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotUnavailable is returned when the merchant snapshot cannot be read.
var ErrSnapshotUnavailable = errors.New("merchant snapshot unavailable")

// MerchantRepository provides read access to the merchant catalog.
type MerchantRepository interface {
	// ListApprovedMerchants returns a snapshot of every approved merchant.
	// The returned merchants must be treated as read-only.
	ListApprovedMerchants(ctx context.Context) ([]*entity.Merchant, error)
}
