// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"sort"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/coinselect/unit"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

// testCoins returns a small coin set used across the basic tests.
func testCoins() []OutputGroup {
	return []OutputGroup{
		{Value: 1000, Weight: 100, InputCount: 1},
		{Value: 2000, Weight: 200, InputCount: 1},
		{Value: 3000, Weight: 300, InputCount: 1},
	}
}

// testOptions returns selection options with a 0.4 sat/wu fee rate and no
// fee-timing divergence.
func testOptions(target btcutil.Amount) *Options {
	return &Options{
		TargetValue:     target,
		TargetFeeRate:   unit.SatPerKWeight(400), // 0.4 sat/wu.
		LongTermFeeRate: fn.Some(unit.SatPerKWeight(400)),
		MinAbsoluteFee:  0,
		BaseWeight:      10,
		ChangeWeight:    50,
		ChangeCost:      10,
		AvgInputWeight:  20,
		AvgOutputWeight: 10,
		MinChangeValue:  500,
		ExcessStrategy:  ExcessToChange,
	}
}

// largeScenarioCoins returns the five-coin set whose lowest waste
// selection for a 500k target is the {250k, 300k} pair.
func largeScenarioCoins() []OutputGroup {
	return []OutputGroup{
		{Value: 150_000, Weight: 100, InputCount: 1},
		{Value: 250_000, Weight: 100, InputCount: 1},
		{Value: 300_000, Weight: 100, InputCount: 1},
		{Value: 100_000, Weight: 100, InputCount: 1},
		{Value: 50_000, Weight: 100, InputCount: 1},
	}
}

// largeScenarioOptions returns options with a 1 sat/wu current rate and a
// 0.5 sat/wu long term rate, so lighter selections are rewarded.
func largeScenarioOptions(target btcutil.Amount) *Options {
	return &Options{
		TargetValue:     target,
		TargetFeeRate:   unit.SatPerKWeight(1000), // 1 sat/wu.
		LongTermFeeRate: fn.Some(unit.SatPerKWeight(500)),
		MinAbsoluteFee:  0,
		BaseWeight:      100,
		ChangeWeight:    10,
		ChangeCost:      20,
		AvgInputWeight:  10,
		AvgOutputWeight: 10,
		MinChangeValue:  400,
		ExcessStrategy:  ExcessToChange,
	}
}

// assertValidSelection checks the structural invariants every successful
// selection must hold: unique in-range indices whose combined value funds
// the target at the implied fee.
func assertValidSelection(t *testing.T, coins []OutputGroup, opt *Options,
	result *SelectionResult) {

	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.SelectedInputs)

	dedup := fn.NewSet(result.SelectedInputs...)
	require.Len(t, dedup, len(result.SelectedInputs),
		"duplicate selected index")

	var (
		total  btcutil.Amount
		weight unit.WeightUnit
	)
	for _, idx := range result.SelectedInputs {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(coins))

		total += coins[idx].Value
		weight += groupWeight(&coins[idx], opt)
	}

	require.True(t, funded(opt, total, weight),
		"selection does not fund the target")
	require.Equal(t, wasteFor(opt, total, weight), result.Waste)
}

// sortedCopy returns the selected indices in ascending order, for
// order-independent comparisons.
func sortedCopy(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)

	return out
}
