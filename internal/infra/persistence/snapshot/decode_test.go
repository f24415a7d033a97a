package snapshot

import (
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	mockSvc "vitrine/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalHookFunc(t *testing.T) {
	hook := decimalHookFunc()

	tests := []struct {
		name    string
		data    any
		want    string
		wantErr bool
	}{
		{name: "quoted", data: " 12.345678901234567891 ", want: "12.345678901234567891"},
		{name: "int", data: 5, want: "5"},
		{name: "int64", data: int64(7), want: "7"},
		{name: "float", data: 7.5, want: "7.5"},
		{name: "float shortest form", data: 0.1, want: "0.1"},
		{name: "garbage", data: "cinco reais", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hook(nil, decimalType, tt.data)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			price, ok := got.(decimal.Decimal)
			require.True(t, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(price), "got %s", price)
		})
	}
}

func TestDecimalHookFunc_IgnoresOtherTypes(t *testing.T) {
	got, err := decimalHookFunc()(nil, nil, 4.5)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got, 0)
}

func TestFileRepository_PricesKeepExactText(t *testing.T) {
	content := `
merchants:
  - id: 6f1c2b9e-4d3a-4a57-9d0e-1a2b3c4d5e6f
    name: Pizzaria Bella
    deliveryPrice: "0.30"
  - id: 0b7e5d1c-2f43-4c8a-8e61-9a0b1c2d3e4f
    name: Mercado Sol
    delivery:
      type: neighborhood
      prices:
        Centro: "12.345678901234567891"
        Vila Nova: 4
`
	reporter := mockSvc.NewMockDiagnosticsReporter(t)

	merchants, err := newTestRepository(t, writeSnapshot(t, content), reporter).ListApprovedMerchants(context.Background())
	require.NoError(t, err)
	require.Len(t, merchants, 2)

	require.NotNil(t, merchants[0].LegacyDeliveryPrice)
	assert.Equal(t, "0.3", merchants[0].LegacyDeliveryPrice.String())

	byNeighborhood, ok := merchants[1].Delivery.(entity.NeighborhoodDelivery)
	require.True(t, ok)
	assert.Equal(t, "12.345678901234567891", byNeighborhood.Prices["Centro"].String())
	assert.True(t, decimal.NewFromInt(4).Equal(byNeighborhood.Prices["Vila Nova"]))
}

func TestFileRepository_UnparseablePriceFailsLoad(t *testing.T) {
	content := `
merchants:
  - id: 6f1c2b9e-4d3a-4a57-9d0e-1a2b3c4d5e6f
    name: Pizzaria Bella
    deliveryPrice: cinco
`
	reporter := mockSvc.NewMockDiagnosticsReporter(t)

	_, err := newTestRepository(t, writeSnapshot(t, content), reporter).ListApprovedMerchants(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSnapshotUnavailable))
}
