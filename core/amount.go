package core

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AtomicDecimals is the number of atomic units per whole coin, as a power of ten.
const AtomicDecimals = 12

func AtomicDecimal(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// FormatAtomic renders an atomic amount as an exact decimal coin amount.
func FormatAtomic(v uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -AtomicDecimals).StringFixed(AtomicDecimals)
}
