package delivery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyFormat_Format(t *testing.T) {
	t.Parallel()

	brl := DefaultCurrencyFormat()
	usd := CurrencyFormat{Symbol: "$", DecimalSeparator: ".", ThousandsSeparator: ","}

	tests := []struct {
		name     string
		format   CurrencyFormat
		price    decimal.Decimal
		expected string
	}{
		{name: "whole", format: brl, price: decimal.NewFromInt(5), expected: "R$ 5,00"},
		{name: "cents", format: brl, price: decimal.RequireFromString("7.5"), expected: "R$ 7,50"},
		{name: "rounds to cents", format: brl, price: decimal.RequireFromString("3.999"), expected: "R$ 4,00"},
		{name: "thousands", format: brl, price: decimal.RequireFromString("1234.5"), expected: "R$ 1.234,50"},
		{name: "millions", format: brl, price: decimal.NewFromInt(1234567), expected: "R$ 1.234.567,00"},
		{name: "exact three digits", format: brl, price: decimal.NewFromInt(100), expected: "R$ 100,00"},
		{name: "usd", format: usd, price: decimal.RequireFromString("2500.25"), expected: "$ 2,500.25"},
		{name: "negative", format: brl, price: decimal.NewFromInt(-3), expected: "-R$ 3,00"},
		{name: "no symbol", format: CurrencyFormat{DecimalSeparator: ","}, price: decimal.NewFromInt(4200), expected: "4200,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.format.Format(tt.price))
		})
	}
}
