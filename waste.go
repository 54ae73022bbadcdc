// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
)

// groupWeight returns the weight spending the group adds to the
// transaction, falling back to the per-input average estimate for groups
// constructed without an explicit weight.
func groupWeight(coin *OutputGroup, opt *Options) unit.WeightUnit {
	if coin.Weight == 0 && coin.InputCount > 0 {
		return opt.AvgInputWeight * unit.WeightUnit(coin.InputCount)
	}

	return coin.Weight
}

// changeWeight returns the weight a change output adds, falling back to
// the per-output average estimate when no explicit change weight is set.
func changeWeight(opt *Options) unit.WeightUnit {
	if opt.ChangeWeight == 0 {
		return opt.AvgOutputWeight
	}

	return opt.ChangeWeight
}

// selectionFee returns the fee a selection of the given total weight pays
// at the target fee rate, rounded up to a whole satoshi and enforcing the
// absolute fee floor.
func selectionFee(opt *Options, totalWeight unit.WeightUnit) btcutil.Amount {
	fee := opt.TargetFeeRate.FeeForWeightRoundUp(totalWeight)
	if fee < opt.MinAbsoluteFee {
		fee = opt.MinAbsoluteFee
	}

	return fee
}

// fundingTarget returns the total input value a selection carrying the
// given input weight must reach before a change output is considered: the
// target value plus the fee implied by the accumulated weight. The fee
// grows with every coin added, so accumulating strategies re-evaluate
// this after each addition.
func fundingTarget(opt *Options, inputWeight unit.WeightUnit) btcutil.Amount {
	return opt.TargetValue + selectionFee(opt, opt.BaseWeight+inputWeight)
}

// createsChange reports whether a selection whose changeless excess is
// the given amount would create a change output.
func createsChange(opt *Options, excess btcutil.Amount) bool {
	if excess >= opt.MinChangeValue+opt.ChangeCost {
		return true
	}

	// ExcessToChange forces a change output even below the dust floor.
	return opt.ExcessStrategy == ExcessToChange && excess > 0
}

// funded reports whether the running total covers the target plus the fee
// of a selection carrying the given input weight, accounting for the
// change output's weight when one would be created.
func funded(opt *Options, total btcutil.Amount,
	inputWeight unit.WeightUnit) bool {

	target := fundingTarget(opt, inputWeight)
	if total < target {
		return false
	}

	if createsChange(opt, total-target) {
		withChange := opt.BaseWeight + inputWeight + changeWeight(opt)
		return total >= opt.TargetValue+selectionFee(opt, withChange)
	}

	return true
}

// wasteFor computes the waste metric of a funded selection with the given
// total input value and input weight. The metric combines an opportunity
// cost term, the difference between spending the selected inputs at the
// target fee rate and at the expected long term rate, with a disposal
// cost term: the change output's cost when change is created, else the
// raw excess, which is lost outright. Lower waste is strictly better and
// the opportunity term may be negative when the long term rate is the
// higher one.
func wasteFor(opt *Options, total btcutil.Amount,
	inputWeight unit.WeightUnit) btcutil.Amount {

	fee := selectionFee(opt, opt.BaseWeight+inputWeight)
	excess := total - opt.TargetValue - fee

	change := createsChange(opt, excess)
	if change {
		// The change output adds its own weight to the paid fee.
		withChange := opt.BaseWeight + inputWeight + changeWeight(opt)
		fee = selectionFee(opt, withChange)
		excess = total - opt.TargetValue - fee
	}

	longTerm := opt.LongTermFeeRate.UnwrapOr(opt.TargetFeeRate)
	opportunity := opt.TargetFeeRate.FeeForWeight(inputWeight) -
		longTerm.FeeForWeight(inputWeight)

	disposal := excess
	if change {
		disposal = opt.ChangeCost
	}

	return opportunity + disposal
}

// accumulateUntilFunded walks the coin indices in the given order, adding
// one coin at a time until the running value funds the target, with the
// fee recomputed after every addition. Returns ErrInsufficientFunds when
// even the full walk cannot fund the target.
func accumulateUntilFunded(coins []OutputGroup, opt *Options,
	order []int) (*SelectionResult, error) {

	var (
		selected []int
		total    btcutil.Amount
		weight   unit.WeightUnit
	)
	for _, idx := range order {
		selected = append(selected, idx)
		total += coins[idx].Value
		weight += groupWeight(&coins[idx], opt)

		if funded(opt, total, weight) {
			return &SelectionResult{
				SelectedInputs: selected,
				Waste:          wasteFor(opt, total, weight),
			}, nil
		}
	}

	return nil, ErrInsufficientFunds
}

// sortedIndices returns the indices 0..n-1 ordered by the given less
// function over coin indices, leaving the caller's coin slice untouched.
func sortedIndices(n int, less func(a, b int) bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool {
		return less(order[i], order[j])
	})

	return order
}
