package delivery

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyFormat describes how prices are rendered.
type CurrencyFormat struct {
	Symbol             string `json:"symbol" yaml:"symbol"`
	DecimalSeparator   string `json:"decimalSeparator" yaml:"decimalSeparator"`
	ThousandsSeparator string `json:"thousandsSeparator" yaml:"thousandsSeparator"`
}

// DefaultCurrencyFormat renders Brazilian reais, e.g. "R$ 1.234,50".
func DefaultCurrencyFormat() CurrencyFormat {
	return CurrencyFormat{
		Symbol:             "R$",
		DecimalSeparator:   ",",
		ThousandsSeparator: ".",
	}
}

// Format renders price with two decimal places.
func (f CurrencyFormat) Format(price decimal.Decimal) string {
	fixed := price.Abs().StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if price.IsNegative() {
		b.WriteByte('-')
	}
	if f.Symbol != "" {
		b.WriteString(f.Symbol)
		b.WriteByte(' ')
	}
	b.WriteString(groupThousands(integer, f.ThousandsSeparator))
	b.WriteString(f.DecimalSeparator)
	b.WriteString(fraction)

	return b.String()
}

func groupThousands(digits, separator string) string {
	if separator == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
