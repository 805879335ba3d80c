package delivery

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the smallest currency unit the ledger posts in.
const MoneyPlaces = 2

var one = decimal.NewFromInt(1)

// Split divides a delivery fee into the platform commission and the rider's
// earning. The earning is derived by subtraction so the two always sum to fee.
func Split(fee, rate decimal.Decimal) (commission, earning decimal.Decimal, err error) {
	if fee.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: delivery fee %s is negative", ErrInvalidAmount, fee)
	}
	if rate.IsNegative() || rate.GreaterThan(one) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: commission rate %s outside [0,1]", ErrInvalidAmount, rate)
	}
	commission = fee.Mul(rate).Round(MoneyPlaces)
	return commission, fee.Sub(commission), nil
}

// SplitWithEarning is the admin override: the rider earning is fixed and the
// commission absorbs the rest.
func SplitWithEarning(fee, earning decimal.Decimal) (commission decimal.Decimal, err error) {
	if earning.IsNegative() || earning.GreaterThan(fee) {
		return decimal.Zero, fmt.Errorf("%w: earning %s must be within [0, %s]", ErrInvalidAmount, earning, fee)
	}
	return fee.Sub(earning), nil
}
