// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package runtime composes the system, balances, and claims pallets into a
// single state-transition function processing one block at a time.
//
// A Runtime is not safe for concurrent use. It owns the state of all its
// pallets and mutates it only within ExecuteBlock, one extrinsic at a time.
// Hosts executing blocks from multiple goroutines must serialize all calls.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/pallet/balances"
	"github.com/0xsoniclabs/stf/pallet/claims"
	"github.com/0xsoniclabs/stf/pallet/system"
	"github.com/0xsoniclabs/stf/store"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	ErrBlockNumberMismatch = common.ConstError("block number does not match what is expected")
)

// Parameters configure a new runtime. The zero value is a valid
// configuration using memory stores, the default logger, and no genesis
// balances.
type Parameters struct {
	Store    store.Kind
	Logger   *slog.Logger
	Listener Listener

	// Genesis balances are set before the first block is executed.
	Genesis map[AccountID]Balance
}

// Runtime is the top level owner of all pallets.
type Runtime struct {
	system   *SystemPallet
	balances *BalancesPallet
	claims   *ClaimsPallet

	logger   *slog.Logger
	listener Listener
	closed   bool
}

// New creates a runtime with empty memory stores.
func New() *Runtime {
	return newRuntime(
		store.NewMemory[AccountID, Nonce](),
		store.NewMemory[AccountID, Balance](),
		store.NewMemory[Content, AccountID](),
		Parameters{},
	)
}

// NewRuntime creates a runtime using the given parameters.
func NewRuntime(params Parameters) (_ *Runtime, err error) {
	var opened []interface{ Close() error }
	success := false
	defer func() {
		if !success {
			for _, cur := range opened {
				err = errors.Join(err, cur.Close())
			}
		}
	}()

	nonces, err := store.Open[AccountID, Nonce](params.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open nonce store: %w", err)
	}
	opened = append(opened, nonces)
	balanceStore, err := store.Open[AccountID, Balance](params.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open balance store: %w", err)
	}
	opened = append(opened, balanceStore)
	claimStore, err := store.Open[Content, AccountID](params.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open claim store: %w", err)
	}
	opened = append(opened, claimStore)

	res := newRuntime(nonces, balanceStore, claimStore, params)

	accounts := maps.Keys(params.Genesis)
	slices.Sort(accounts)
	for _, account := range accounts {
		if err := res.balances.SetBalance(account, params.Genesis[account]); err != nil {
			return nil, fmt.Errorf("failed to set genesis balance of %s: %w", account, err)
		}
	}

	success = true
	return res, nil
}

func newRuntime(
	nonces store.Store[AccountID, Nonce],
	balanceStore store.Store[AccountID, Balance],
	claimStore store.Store[Content, AccountID],
	params Parameters,
) *Runtime {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var listener Listener = noopListener{}
	if params.Listener != nil {
		listener = params.Listener
	}
	return &Runtime{
		system:   system.New[AccountID, BlockNumber, Nonce](nonces),
		balances: balances.New(balanceStore),
		claims:   claims.New(claimStore),
		logger:   logger,
		listener: listener,
	}
}

func (r *Runtime) System() *SystemPallet {
	return r.system
}

func (r *Runtime) Balances() *BalancesPallet {
	return r.balances
}

func (r *Runtime) Claims() *ClaimsPallet {
	return r.claims
}

// ExecuteBlock applies all extrinsics of the given block in order. The
// block is rejected without any state change if its number is not the
// successor of the current block number. Failing extrinsics are reported to
// the log and the listener but do not abort the block; only the nonce
// increment of a failed extrinsic remains in effect. A closed runtime
// rejects every block with store.ErrClosed.
func (r *Runtime) ExecuteBlock(block Block) error {
	if r.closed {
		return store.ErrClosed
	}
	number := block.Header.BlockNumber
	expected, ok := r.system.BlockNumber().CheckedAdd(common.One[BlockNumber]())
	if !ok {
		return fmt.Errorf("cannot execute block %v: %w", number, system.ErrBlockNumberOverflow)
	}
	if number != expected {
		return fmt.Errorf("%w: expected %v, got %v", ErrBlockNumberMismatch, expected, number)
	}
	if err := r.system.IncBlockNumber(); err != nil {
		return err
	}

	failed := 0
	for i, extrinsic := range block.Extrinsics {
		if err := r.applyExtrinsic(extrinsic); err != nil {
			failed++
			r.logger.Warn("extrinsic failed",
				"block", number,
				"extrinsic", i,
				"caller", extrinsic.Caller,
				"err", err,
			)
			r.listener.OnExtrinsicFailed(number, i, extrinsic.Caller, err)
		}
	}

	r.logger.Debug("block executed",
		"block", number,
		"extrinsics", len(block.Extrinsics),
		"failed", failed,
	)
	r.listener.OnBlockExecuted(number, len(block.Extrinsics), failed)
	return nil
}

func (r *Runtime) applyExtrinsic(extrinsic Extrinsic) error {
	if err := r.system.IncNonce(extrinsic.Caller); err != nil {
		return fmt.Errorf("failed to increment nonce: %w", err)
	}
	return r.Dispatch(extrinsic.Caller, extrinsic.Call)
}

// Close releases the stores of all pallets.
func (r *Runtime) Close() error {
	r.closed = true
	return errors.Join(
		r.system.Close(),
		r.balances.Close(),
		r.claims.Close(),
	)
}
