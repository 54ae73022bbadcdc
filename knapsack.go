// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"
)

const (
	// defaultKnapsackPasses bounds the total number of accumulation
	// passes one knapsack run performs.
	defaultKnapsackPasses = 64

	// knapsackSeed seeds the shuffle sequence. A fixed seed keeps the
	// strategy reproducible: identical coins and options always yield
	// an identical selection.
	knapsackSeed = 0x6b6e6170
)

// knapsackSelector approximates the subset-sum objective with bounded
// randomized sampling: a deterministic largest-first pass followed by
// shuffled accumulation passes, keeping the lowest waste funded subset
// seen. It trades the optimality guarantee of the branch-and-bound search
// for a predictable cost on large or fragmented coin sets.
type knapsackSelector struct {
	// passes is the accumulation pass budget for one run.
	passes int

	// rng overrides the seeded source, letting tests drive the shuffle
	// sequence directly.
	rng *rand.Rand
}

// A compile time check to ensure knapsackSelector implements the strategy
// interface.
var _ strategy = (*knapsackSelector)(nil)

func newKnapsack() *knapsackSelector {
	return &knapsackSelector{passes: defaultKnapsackPasses}
}

// Name returns the strategy identifier.
func (*knapsackSelector) Name() string {
	return "knapsack"
}

// Select runs the accumulation passes and returns the best funded subset
// found across them.
func (k *knapsackSelector) Select(coins []OutputGroup, opt *Options) (
	*SelectionResult, error) {

	rng := k.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(knapsackSeed))
	}

	// Largest first is the cheapest order to satisfy, so it opens the
	// pass budget.
	desc := sortedIndices(len(coins), func(a, b int) bool {
		return coins[a].Value > coins[b].Value
	})

	var best *SelectionResult
	for pass := 0; pass < k.passes; pass++ {
		order := desc
		if pass > 0 {
			order = rng.Perm(len(coins))
		}

		// A pass fails when no prefix of its order funds the
		// target. An order front loading a heavy coin can fail
		// while another funds a short prefix, so a failed pass
		// just leaves best alone.
		result, err := accumulateUntilFunded(coins, opt, order)
		if err != nil {
			continue
		}

		if best == nil || result.Waste < best.Waste {
			best = result
		}
	}

	if best == nil {
		return nil, ErrInsufficientFunds
	}

	return best, nil
}
