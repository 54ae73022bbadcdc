// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements a concurrent coin-selection engine.
//
// Given a list of candidate coins and the options describing one payment,
// Select races five independent strategies - an exact-match
// branch-and-bound search, an approximate knapsack search, the
// lowest-larger and FIFO greedy heuristics, and a single random draw
// fallback - and returns the selection with the lowest waste: a scalar
// cost combining the fee-timing opportunity cost of the spent inputs with
// the cost of disposing of any excess value.
//
// The engine only decides which coins to spend. Sourcing the candidate
// list from a UTXO store and turning the selected indices into an actual
// transaction are the caller's concern.
package coinselect

import (
	"errors"
	"sync"
)

// Select runs all selection strategies concurrently over the given coins
// and returns the lowest waste success. When every strategy fails it
// returns ErrInsufficientFunds if the coins can never fund the target,
// and ErrNoSolutionFound otherwise. Equal-waste successes keep whichever
// strategy reported first.
//
// The coin slice and options are treated as read only and may be shared
// freely across calls. Each strategy runs to its own bounded completion;
// there is no cancellation.
func Select(coins []OutputGroup, opt *Options) (*SelectionResult, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if err := validateCoins(coins); err != nil {
		return nil, err
	}

	// The strategy set is fixed at build time, so a plain slice stands
	// in for any registration machinery.
	strategies := []strategy{
		newBnB(),
		&fifoSelector{},
		&lowestLargerSelector{},
		&singleRandomDraw{},
		newKnapsack(),
	}

	shared := newSharedResult()

	var wg sync.WaitGroup
	for _, s := range strategies {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := s.Select(coins, opt)
			shared.report(s.Name(), result, err)
		}()
	}
	wg.Wait()

	// Every strategy goroutine has exited, so the slot is stable and
	// needs no further locking.
	return shared.final()
}

// sharedResult is the single slot the strategy goroutines write their
// outcomes into. The anySuccess flag records whether any strategy ever
// succeeded: once set, the slot can no longer be downgraded to a failure.
type sharedResult struct {
	mtx sync.Mutex

	best       *SelectionResult
	err        error
	anySuccess bool
}

func newSharedResult() *sharedResult {
	return &sharedResult{err: ErrNoSolutionFound}
}

// report merges one strategy outcome into the slot. Successes compete on
// waste, with ties keeping the earlier writer. An insufficient funds
// failure is only recorded while no success exists; other failures leave
// the slot untouched.
func (r *sharedResult) report(name string, result *SelectionResult,
	err error) {

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if err != nil {
		log.Tracef("Strategy %v failed: %v", name, err)

		if errors.Is(err, ErrInsufficientFunds) && !r.anySuccess {
			r.err = ErrInsufficientFunds
		}

		return
	}

	log.Tracef("Strategy %v selected %d inputs with waste %v", name,
		len(result.SelectedInputs), result.Waste)

	if !r.anySuccess || result.Waste < r.best.Waste {
		r.best = result
		r.anySuccess = true
		r.err = nil
	}
}

// final returns the slot contents. Only called after every strategy has
// reported.
func (r *sharedResult) final() (*SelectionResult, error) {
	if r.best == nil {
		return nil, r.err
	}

	log.Debugf("Selected %d inputs with waste %v",
		len(r.best.SelectedInputs), r.best.Waste)

	return r.best, nil
}
