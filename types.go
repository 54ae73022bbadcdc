// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	// ErrInsufficientFunds is returned when the combined value of all
	// candidate coins can never cover the target value plus the
	// required fee.
	ErrInsufficientFunds = errors.New("insufficient funds to cover " +
		"target")

	// ErrNoSolutionFound is returned when a strategy's bounded search
	// space is exhausted without finding a feasible selection, even
	// though funds may be sufficient.
	ErrNoSolutionFound = errors.New("no solution found")

	// ErrNilOptions is returned when a nil Options is provided.
	ErrNilOptions = errors.New("nil selection options")

	// ErrMissingTarget is returned when the target value is zero or
	// negative.
	ErrMissingTarget = errors.New("target value must be positive")

	// ErrNegativeAmount is returned when an amount or fee rate field
	// that must be non-negative is negative.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrUnknownExcessStrategy is returned when the excess strategy is
	// not one of the defined values.
	ErrUnknownExcessStrategy = errors.New("unknown excess strategy")

	// ErrInvalidCoin is returned when a candidate coin has a
	// non-positive value.
	ErrInvalidCoin = errors.New("coin value must be positive")

	// ErrExcessiveWeight is returned when a weight parameter exceeds
	// the consensus block weight limit.
	ErrExcessiveWeight = errors.New("weight exceeds max block weight")
)

// ExcessStrategy describes how leftover value is disposed of when a
// selection overshoots the target and no change output would normally be
// created.
type ExcessStrategy uint8

const (
	// ExcessToFee burns the leftover value as additional fee.
	ExcessToFee ExcessStrategy = iota

	// ExcessToRecipient gives the leftover value to the recipient.
	ExcessToRecipient

	// ExcessToChange forces a change output for the leftover value
	// even when it is below the dust floor.
	ExcessToChange
)

// String returns a human-readable name of the excess strategy.
func (e ExcessStrategy) String() string {
	switch e {
	case ExcessToFee:
		return "to_fee"
	case ExcessToRecipient:
		return "to_recipient"
	case ExcessToChange:
		return "to_change"
	default:
		return fmt.Sprintf("unknown<%d>", uint8(e))
	}
}

// OutputGroup represents one spendable coin, or a pre-grouped cluster of
// coins that must be spent together. Groups are owned by the caller and
// are never mutated by the engine, so a single slice may safely back any
// number of concurrent selections.
type OutputGroup struct {
	// Value is the spendable value in satoshis.
	Value btcutil.Amount

	// Weight is the weight consumed when this group is spent. A zero
	// weight on a group with a positive InputCount falls back to the
	// per-input average estimate from the selection options.
	Weight unit.WeightUnit

	// InputCount is the number of underlying inputs this group
	// represents.
	InputCount int

	// CreationSequence is a monotonically increasing arrival index.
	// Groups without a sequence are treated as having arrived after
	// all groups that carry one.
	CreationSequence fn.Option[uint32]
}

// Options bundles the parameters of a single selection request.
type Options struct {
	// TargetValue is the amount the selection must raise, excluding
	// fees. It must be positive.
	TargetValue btcutil.Amount

	// TargetFeeRate is the fee rate the transaction is expected to pay
	// now.
	TargetFeeRate unit.SatPerKWeight

	// LongTermFeeRate is the fee rate the wallet expects to pay in the
	// future, used for the waste metric's opportunity cost term. When
	// unset the target fee rate is assumed and the term vanishes.
	LongTermFeeRate fn.Option[unit.SatPerKWeight]

	// MinAbsoluteFee is a floor on the total fee paid.
	MinAbsoluteFee btcutil.Amount

	// BaseWeight is the fixed weight of the transaction shell before
	// any selected inputs are added.
	BaseWeight unit.WeightUnit

	// ChangeWeight is the weight added by a change output. When zero,
	// AvgOutputWeight is used instead.
	ChangeWeight unit.WeightUnit

	// ChangeCost is the cost of creating and later spending a change
	// output.
	ChangeCost btcutil.Amount

	// AvgInputWeight is the fallback weight estimate for one input,
	// applied to groups constructed without an explicit weight.
	AvgInputWeight unit.WeightUnit

	// AvgOutputWeight is the fallback weight estimate for one output,
	// applied when ChangeWeight is not set.
	AvgOutputWeight unit.WeightUnit

	// MinChangeValue is the dust floor below which change is not
	// created.
	MinChangeValue btcutil.Amount

	// ExcessStrategy controls how leftover value is disposed of when
	// no change output is created.
	ExcessStrategy ExcessStrategy
}

// validate checks the options for precondition violations. A malformed
// options value is a caller bug and is reported before any strategy
// runs, never as a selection failure.
func (o *Options) validate() error {
	if o == nil {
		return ErrNilOptions
	}

	if o.TargetValue <= 0 {
		return ErrMissingTarget
	}

	if o.TargetFeeRate < 0 {
		return fmt.Errorf("%w: target fee rate %v",
			ErrNegativeAmount, o.TargetFeeRate)
	}
	if o.LongTermFeeRate.UnwrapOr(0) < 0 {
		return fmt.Errorf("%w: long term fee rate",
			ErrNegativeAmount)
	}

	for _, field := range []struct {
		name  string
		value btcutil.Amount
	}{
		{"min absolute fee", o.MinAbsoluteFee},
		{"change cost", o.ChangeCost},
		{"min change value", o.MinChangeValue},
	} {
		if field.value < 0 {
			return fmt.Errorf("%w: %s %v", ErrNegativeAmount,
				field.name, field.value)
		}
	}

	for _, weight := range []unit.WeightUnit{
		o.BaseWeight, o.ChangeWeight, o.AvgInputWeight,
		o.AvgOutputWeight,
	} {
		if weight > blockchain.MaxBlockWeight {
			return fmt.Errorf("%w: %v", ErrExcessiveWeight,
				weight)
		}
	}

	if o.ExcessStrategy > ExcessToChange {
		return fmt.Errorf("%w: %d", ErrUnknownExcessStrategy,
			uint8(o.ExcessStrategy))
	}

	return nil
}

// validateCoins checks the candidate coins for precondition violations.
func validateCoins(coins []OutputGroup) error {
	for i, coin := range coins {
		if coin.Value <= 0 {
			return fmt.Errorf("%w: coin %d has value %v",
				ErrInvalidCoin, i, coin.Value)
		}

		if coin.Weight > blockchain.MaxBlockWeight {
			return fmt.Errorf("%w: coin %d has weight %v",
				ErrExcessiveWeight, i, coin.Weight)
		}
	}

	return nil
}

// SelectionResult is the outcome of a successful selection.
type SelectionResult struct {
	// SelectedInputs holds indices into the caller's coin slice, in
	// the order the winning strategy picked them. Indices are unique.
	SelectedInputs []int

	// Waste is the waste metric of this selection. Lower is better.
	Waste btcutil.Amount
}

// strategy is a single coin-selection algorithm. Implementations must
// treat the coin slice and options as read only and run to completion
// within their own internal bounds.
type strategy interface {
	// Name returns a short identifier used in log output.
	Name() string

	// Select attempts a selection, returning either a feasible result
	// or one of ErrInsufficientFunds and ErrNoSolutionFound.
	Select(coins []OutputGroup, opt *Options) (*SelectionResult, error)
}
