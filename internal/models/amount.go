package models

import "math"

// Amount is a token amount in the smallest denomination.
//
// All pot, payout and treasury arithmetic saturates at AmountMax instead of
// wrapping around.
type Amount uint64

// AmountMax is the largest representable amount.
const AmountMax = Amount(math.MaxUint64)

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a == 0
}

// SaturatingAdd returns a+b, clamped at AmountMax.
func (a Amount) SaturatingAdd(b Amount) Amount {
	if a > AmountMax-b {
		return AmountMax
	}
	return a + b
}

// SaturatingSub returns a-b, clamped at zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	if b > a {
		return 0
	}
	return a - b
}

// SaturatingMul returns a*b, clamped at AmountMax.
func (a Amount) SaturatingMul(b Amount) Amount {
	if a == 0 || b == 0 {
		return 0
	}
	if a > AmountMax/b {
		return AmountMax
	}
	return a * b
}
