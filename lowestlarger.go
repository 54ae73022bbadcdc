// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// lowestLargerSelector implements the lowest-larger heuristic: prefer the
// smallest single coin able to fund the payment on its own, minimizing
// weight without fragmenting larger coins. When no single coin suffices
// it accumulates from largest to smallest instead.
type lowestLargerSelector struct{}

// A compile time check to ensure lowestLargerSelector implements the
// strategy interface.
var _ strategy = (*lowestLargerSelector)(nil)

// Name returns the strategy identifier.
func (*lowestLargerSelector) Name() string {
	return "lowest-larger"
}

// Select picks the smallest sufficient single coin, else accumulates
// largest first, with the fee recomputed as each coin is added.
func (*lowestLargerSelector) Select(coins []OutputGroup, opt *Options) (
	*SelectionResult, error) {

	// Ascending by value, so the first sufficient coin scanned is also
	// the smallest one.
	asc := sortedIndices(len(coins), func(a, b int) bool {
		return coins[a].Value < coins[b].Value
	})

	for _, idx := range asc {
		total := coins[idx].Value
		weight := groupWeight(&coins[idx], opt)

		if funded(opt, total, weight) {
			return &SelectionResult{
				SelectedInputs: []int{idx},
				Waste:          wasteFor(opt, total, weight),
			}, nil
		}
	}

	// No single coin suffices, accumulate from largest to smallest.
	desc := make([]int, len(asc))
	for i, idx := range asc {
		desc[len(asc)-1-i] = idx
	}

	return accumulateUntilFunded(coins, opt, desc)
}
