// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"
)

// singleRandomDraw accumulates a uniformly random permutation of the
// coins until the target is funded. It rarely beats the optimizing
// strategies on waste but rarely fails when funds suffice, and the random
// order avoids tying the selection to coin value or age.
type singleRandomDraw struct {
	// rng overrides the global random source, letting tests inject a
	// deterministic seed.
	rng *rand.Rand
}

// A compile time check to ensure singleRandomDraw implements the strategy
// interface.
var _ strategy = (*singleRandomDraw)(nil)

// Name returns the strategy identifier.
func (*singleRandomDraw) Name() string {
	return "single-random-draw"
}

func (s *singleRandomDraw) perm(n int) []int {
	if s.rng != nil {
		return s.rng.Perm(n)
	}

	return rand.Perm(n)
}

// Select draws a random permutation and accumulates it until the target
// is funded. A first draw considers only positively yielding coins; if
// that set cannot fund the target, a second draw over every coin
// preserves the guarantee that sufficient total funds produce an answer.
func (s *singleRandomDraw) Select(coins []OutputGroup, opt *Options) (
	*SelectionResult, error) {

	// Skip coins that do not raise the total transaction value at the
	// requested fee rate.
	yielding := make([]int, 0, len(coins))
	for i := range coins {
		if inputYieldsPositively(&coins[i], opt) {
			yielding = append(yielding, i)
		}
	}

	order := make([]int, len(yielding))
	for i, p := range s.perm(len(yielding)) {
		order[i] = yielding[p]
	}

	result, err := accumulateUntilFunded(coins, opt, order)
	if err == nil || len(yielding) == len(coins) {
		return result, err
	}

	// The filtered set cannot fund the target on its own, so draw
	// again over the full set.
	return accumulateUntilFunded(coins, opt, s.perm(len(coins)))
}

// inputYieldsPositively reports whether spending the coin at the target
// fee rate recovers more value than the fee its weight adds. For edge
// cases around the absolute fee floor a negatively yielding coin can
// still complete a selection, which is why the filter is advisory.
func inputYieldsPositively(coin *OutputGroup, opt *Options) bool {
	weight := groupWeight(coin, opt)
	return opt.TargetFeeRate.FeeForWeight(weight) < coin.Value
}
