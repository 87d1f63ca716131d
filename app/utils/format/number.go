package format

import (
	"strconv"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Decimal renders d with a fixed number of decimals and no thousands
// separator, e.g. 12.5 or 1500.0.
func Decimal(d decimal.Decimal, precision int) string {
	return accounting.FormatNumberDecimal(d, precision, "", ".")
}

// Amount is like Decimal but accepts the loose numeric types found in
// model fields.
func Amount(value interface{}, precision int) string {
	switch v := value.(type) {
	case decimal.Decimal:
		return Decimal(v, precision)
	case float64:
		return Decimal(decimal.NewFromFloat(v), precision)
	case int:
		return Decimal(decimal.NewFromInt(int64(v)), precision)
	case int64:
		return Decimal(decimal.NewFromInt(v), precision)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return v
		}
		return Decimal(parsed, precision)
	default:
		return ""
	}
}

func Int(n int) string {
	return strconv.Itoa(n)
}

// WithUnit joins a value and its unit, leaving empty values empty.
func WithUnit(value, unit string) string {
	if value == "" {
		return ""
	}
	return value + " " + unit
}
