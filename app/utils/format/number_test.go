package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	assert.Equal(t, "12.5", Decimal(decimal.RequireFromString("12.50"), 1))
	assert.Equal(t, "1500.0", Decimal(decimal.NewFromInt(1500), 1))
	assert.Equal(t, "2.75", Decimal(decimal.RequireFromString("2.75"), 2))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "3.0", Amount(3, 1))
	assert.Equal(t, "4.2", Amount(4.2, 1))
	assert.Equal(t, "7.00", Amount("7", 2))
	assert.Equal(t, "n/a", Amount("n/a", 2))
	assert.Equal(t, "", Amount(struct{}{}, 2))
}

func TestWithUnit(t *testing.T) {
	assert.Equal(t, "15 kg", WithUnit("15", "kg"))
	assert.Equal(t, "", WithUnit("", "kg"))
}
