// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"sort"
)

// fifoSelector consumes coins in arrival order, modelling an age-based
// consolidation policy. It never reorders for value efficiency.
type fifoSelector struct{}

// A compile time check to ensure fifoSelector implements the strategy
// interface.
var _ strategy = (*fifoSelector)(nil)

// Name returns the strategy identifier.
func (*fifoSelector) Name() string {
	return "fifo"
}

// Select accumulates coins oldest first until the target is funded, with
// the fee recomputed as each coin is added. Coins carrying an explicit
// creation sequence come first, ascending; sequence-less coins follow in
// their given list order.
func (*fifoSelector) Select(coins []OutputGroup, opt *Options) (
	*SelectionResult, error) {

	order := make([]int, len(coins))
	for i := range order {
		order[i] = i
	}

	// The stable sort keeps the list order of sequence-less coins.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := coins[order[i]], coins[order[j]]
		switch {
		case a.CreationSequence.IsSome() &&
			b.CreationSequence.IsSome():

			return a.CreationSequence.UnwrapOr(0) <
				b.CreationSequence.UnwrapOr(0)

		case a.CreationSequence.IsSome():
			return true

		default:
			return false
		}
	})

	return accumulateUntilFunded(coins, opt, order)
}
