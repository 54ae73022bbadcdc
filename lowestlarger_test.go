// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLowestLargerSingleCoin checks that the smallest single coin able to
// fund the payment is preferred over any combination.
func TestLowestLargerSingleCoin(t *testing.T) {
	t.Parallel()

	coins := []OutputGroup{
		{Value: 500, Weight: 50, InputCount: 1},
		{Value: 1500, Weight: 100, InputCount: 1},
		{Value: 2000, Weight: 200, InputCount: 1},
		{Value: 1000, Weight: 75, InputCount: 1},
	}
	opt := testOptions(1600)

	// 1500 misses the 1600 target plus fee; 2000 is the only, and
	// therefore smallest, sufficient coin.
	result, err := (&lowestLargerSelector{}).Select(coins, opt)
	require.NoError(t, err)
	require.Equal(t, []int{2}, result.SelectedInputs)
	assertValidSelection(t, coins, opt, result)
}

// TestLowestLargerAccumulates checks the largest-first fallback when no
// single coin suffices.
func TestLowestLargerAccumulates(t *testing.T) {
	t.Parallel()

	coins := testCoins()
	opt := testOptions(4000)

	result, err := (&lowestLargerSelector{}).Select(coins, opt)
	require.NoError(t, err)

	// 3000 alone cannot cover 4000 plus fees, so the two largest
	// coins are taken in descending order.
	require.Equal(t, []int{2, 1}, result.SelectedInputs)
	assertValidSelection(t, coins, opt, result)
}

// TestLowestLargerInsufficientFunds checks the failure classification.
func TestLowestLargerInsufficientFunds(t *testing.T) {
	t.Parallel()

	_, err := (&lowestLargerSelector{}).Select(
		testCoins(), testOptions(7000),
	)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}
