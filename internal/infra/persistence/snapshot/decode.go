package snapshot

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeFor[decimal.Decimal]()

// decimalHookFunc decodes prices straight into decimal.Decimal.
// Quoted prices keep their exact text; bare YAML numbers are read from their
// shortest decimal representation.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			price, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid price %q", v)
			}

			return price, nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			price, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid price %v", v)
			}

			return price, nil
		default:
			return data, nil
		}
	}
}
