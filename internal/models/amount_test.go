package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountSaturatingAdd(t *testing.T) {
	assert.Equal(t, Amount(300), Amount(100).SaturatingAdd(200))
	assert.Equal(t, AmountMax, AmountMax.SaturatingAdd(1))
	assert.Equal(t, AmountMax, Amount(1).SaturatingAdd(AmountMax))
}

func TestAmountSaturatingSub(t *testing.T) {
	assert.Equal(t, Amount(285), Amount(300).SaturatingSub(15))
	assert.Equal(t, Amount(0), Amount(10).SaturatingSub(20))
}

func TestAmountSaturatingMul(t *testing.T) {
	assert.Equal(t, Amount(200), Amount(100).SaturatingMul(2))
	assert.Equal(t, Amount(0), Amount(0).SaturatingMul(5))
	assert.Equal(t, AmountMax, AmountMax.SaturatingMul(2))
	assert.Equal(t, AmountMax, (AmountMax/2).SaturatingMul(3))
}
