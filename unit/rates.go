// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unit provides the weight and fee rate types used by the coin
// selection engine.
package unit

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// WeightUnit expresses a transaction size in weight units (wu). One weight
// unit is 1/4_000_000 of the max block size.
type WeightUnit uint64

// String returns a human-readable string of the weight.
func (w WeightUnit) String() string {
	return fmt.Sprintf("%d wu", uint64(w))
}

// SatPerKWeight represents a fee rate in sat/kw, satoshis per 1000 weight
// units. Expressing the rate per kilo unit keeps sub-satoshi per-wu rates
// exact in integer arithmetic, e.g. 0.4 sat/wu is 400 sat/kw.
type SatPerKWeight btcutil.Amount

// NewSatPerKWeight creates a new fee rate from the fee paid for a given
// weight.
func NewSatPerKWeight(fee btcutil.Amount, w WeightUnit) SatPerKWeight {
	if w == 0 {
		return 0
	}
	return SatPerKWeight(fee.MulF64(1000 / float64(w)))
}

// FeeForWeight calculates the fee for the given weight at this rate,
// rounding down.
func (s SatPerKWeight) FeeForWeight(w WeightUnit) btcutil.Amount {
	return btcutil.Amount(s) * btcutil.Amount(w) / 1000
}

// FeeForWeightRoundUp calculates the fee for the given weight at this
// rate, rounding any fractional satoshi up.
func (s SatPerKWeight) FeeForWeightRoundUp(w WeightUnit) btcutil.Amount {
	return (btcutil.Amount(s)*btcutil.Amount(w) + 999) / 1000
}

// String returns a human-readable string of the fee rate.
func (s SatPerKWeight) String() string {
	return fmt.Sprintf("%v sat/kw", int64(s))
}
