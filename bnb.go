// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// defaultBnBMaxTries bounds the number of explored branches, guaranteeing
// termination on large candidate sets. The value is deliberately
// conservative; exhausting it yields ErrNoSolutionFound rather than an
// unbounded search.
const defaultBnBMaxTries = 100_000

// bnbSelector performs an exhaustive branch-and-bound search for a
// changeless selection: a subset whose value lands within a small excess
// window above the target plus fees. Coins are visited in descending
// value order over a binary include/exclude decision tree, with branches
// abandoned once their remaining coins cannot reach the target or once
// the running sum overshoots the excess window.
type bnbSelector struct {
	// maxTries is the branch exploration budget for one search.
	maxTries int
}

// A compile time check to ensure bnbSelector implements the strategy
// interface.
var _ strategy = (*bnbSelector)(nil)

func newBnB() *bnbSelector {
	return &bnbSelector{maxTries: defaultBnBMaxTries}
}

// Name returns the strategy identifier.
func (*bnbSelector) Name() string {
	return "branch-and-bound"
}

// Select runs the search and returns the lowest waste feasible subset
// visited, or ErrNoSolutionFound when the tree or the branch budget is
// exhausted first.
func (b *bnbSelector) Select(coins []OutputGroup, opt *Options) (
	*SelectionResult, error) {

	order := sortedIndices(len(coins), func(a, b int) bool {
		return coins[a].Value > coins[b].Value
	})

	// remaining[i] is the total value of order[i:], used to abandon
	// branches that can no longer reach the target.
	remaining := make([]btcutil.Amount, len(order)+1)
	for i := len(order) - 1; i >= 0; i-- {
		remaining[i] = remaining[i+1] + coins[order[i]].Value
	}

	search := &bnbSearch{
		coins:     coins,
		opt:       opt,
		order:     order,
		remaining: remaining,

		// A funded subset is only kept when its excess could not
		// have justified a change output, which is what makes the
		// match near-exact.
		tolerance: opt.ChangeCost + opt.MinChangeValue,
		triesLeft: b.maxTries,
	}
	search.explore(0, nil, 0, 0)

	if search.best == nil {
		return nil, ErrNoSolutionFound
	}

	return search.best, nil
}

// bnbSearch holds the mutable state of one branch-and-bound run.
type bnbSearch struct {
	coins     []OutputGroup
	opt       *Options
	order     []int
	remaining []btcutil.Amount
	tolerance btcutil.Amount
	triesLeft int
	best      *SelectionResult
}

// explore walks the include/exclude decision tree rooted at position pos
// with the given running selection.
func (s *bnbSearch) explore(pos int, selected []int, total btcutil.Amount,
	weight unit.WeightUnit) {

	if s.triesLeft <= 0 {
		return
	}
	s.triesLeft--

	target := fundingTarget(s.opt, weight)
	if total >= target {
		// Funded. A superset only adds weight and excess, so stop
		// deepening whether or not the subset is recorded.
		if total-target <= s.tolerance {
			s.record(selected, total, weight)
		}

		return
	}

	// Even taking every remaining coin cannot reach the target. The
	// target only grows with weight, so the check is conservative.
	if pos == len(s.order) || total+s.remaining[pos] < target {
		return
	}

	idx := s.order[pos]
	s.explore(
		pos+1, append(selected, idx),
		total+s.coins[idx].Value,
		weight+groupWeight(&s.coins[idx], s.opt),
	)
	s.explore(pos+1, selected, total, weight)
}

// record keeps the selection if it improves on the best one seen.
func (s *bnbSearch) record(selected []int, total btcutil.Amount,
	weight unit.WeightUnit) {

	waste := wasteFor(s.opt, total, weight)
	if s.best != nil && waste >= s.best.Waste {
		return
	}

	// The backing array is shared with sibling branches, so keep a
	// copy.
	picked := make([]int, len(selected))
	copy(picked, selected)

	s.best = &SelectionResult{SelectedInputs: picked, Waste: waste}
}
