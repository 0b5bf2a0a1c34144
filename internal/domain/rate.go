package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Rate converts a configured fraction to a decimal clamped to [0,1]
func Rate(rate float64) decimal.Decimal {
	if rate <= 0 || math.IsNaN(rate) {
		return decimal.Zero
	}
	if rate >= 1 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(rate)
}

// CeilAmount returns ceil(amount * rate)
func CeilAmount(amount int64, rate float64) int64 {
	return ToAmount(decimal.NewFromInt(amount).Mul(Rate(rate)).Ceil())
}

// FloorAmount returns floor(amount * rate)
func FloorAmount(amount int64, rate float64) int64 {
	return ToAmount(decimal.NewFromInt(amount).Mul(Rate(rate)).Floor())
}

// ToAmount truncates d to a whole amount, saturating at the int64 range
func ToAmount(d decimal.Decimal) int64 {
	if d.GreaterThan(maxAmount) {
		return math.MaxInt64
	}
	if d.LessThan(maxAmount.Neg()) {
		return -math.MaxInt64
	}
	return d.IntPart()
}

// TotalPrice returns unitPrice * quantity; ok is false when the product does not fit an amount
func TotalPrice(unitPrice int64, quantity int) (total int64, ok bool) {
	if unitPrice < 0 || quantity < 0 {
		return 0, false
	}
	product := decimal.NewFromInt(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	if product.GreaterThan(maxAmount) {
		return 0, false
	}
	return product.IntPart(), true
}
