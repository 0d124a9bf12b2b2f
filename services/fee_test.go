package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeFee_Percentage(t *testing.T) {
	fee := ComputeFee(FeePercentage, decimal.RequireFromString("0.7"), decimal.NewFromInt(100000))
	assert.True(t, fee.Equal(decimal.NewFromInt(700)), "got %s", fee)
}

func TestComputeFee_FlatIgnoresTotal(t *testing.T) {
	for _, total := range []int64{0, 1, 100000, 999999999} {
		fee := ComputeFee(FeeFlat, decimal.NewFromInt(5000), decimal.NewFromInt(total))
		assert.True(t, fee.Equal(decimal.NewFromInt(5000)), "total %d got %s", total, fee)
	}
}

func TestComputeFee_ZeroPercentage(t *testing.T) {
	fee := ComputeFee(FeePercentage, decimal.Zero, decimal.NewFromInt(250))
	assert.True(t, fee.IsZero())
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, FeePercentage.Valid())
	assert.True(t, FeeFlat.Valid())
	assert.False(t, FeeType("fixed").Valid())

	assert.True(t, CategoryFoodDelivery.Valid())
	assert.False(t, MethodCategory("crypto").Valid())
}
