package services

import "github.com/shopspring/decimal"

type FeeType string

const (
	FeePercentage FeeType = "percentage"
	FeeFlat       FeeType = "flat"
)

func (t FeeType) Valid() bool { return t == FeePercentage || t == FeeFlat }

type MethodCategory string

const (
	CategoryOffline      MethodCategory = "offline"
	CategoryOnline       MethodCategory = "online"
	CategoryFoodDelivery MethodCategory = "foodDelivery"
)

func (c MethodCategory) Valid() bool {
	switch c {
	case CategoryOffline, CategoryOnline, CategoryFoodDelivery:
		return true
	}
	return false
}

var hundred = decimal.NewFromInt(100)

// ComputeFee returns the surcharge for a transaction total.
// percentage: fee% of total. flat: fee, whatever the total.
func ComputeFee(feeType FeeType, fee, total decimal.Decimal) decimal.Decimal {
	if feeType == FeeFlat {
		return fee
	}
	return fee.Mul(total).Div(hundred)
}

// validateFee rejects a missing fee as well as a negative one.
func validateFee(fee *decimal.Decimal) (decimal.Decimal, error) {
	if fee == nil || fee.IsNegative() {
		return decimal.Zero, ErrInvalidFee
	}
	return *fee, nil
}
