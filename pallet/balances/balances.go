// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package balances implements a simple ledger pallet keeping track of how
// much balance each account holds.
package balances

import (
	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/store"
)

const (
	ErrInsufficientFunds = common.ConstError("not enough funds")
	ErrBalanceOverflow   = common.ConstError("too much funds")
	ErrIssuanceOverflow  = common.ConstError("total issuance overflow")
	ErrUnknownCall       = common.ConstError("unknown balances call")
)

// Pallet is the balances pallet for account type A and balance type B.
type Pallet[A common.AccountID, B common.Number[B]] struct {
	balances store.Store[A, B]
}

// New creates a balances pallet on top of the given, empty store.
func New[A common.AccountID, B common.Number[B]](balances store.Store[A, B]) *Pallet[A, B] {
	return &Pallet[A, B]{balances: balances}
}

// SetBalance sets the balance of who to the given amount.
func (p *Pallet[A, B]) SetBalance(who A, amount B) error {
	return p.balances.Apply(store.Update[A, B]{
		Set: map[A]B{who: amount},
	})
}

// Balance returns the balance of who. Accounts without a stored balance
// have a balance of zero.
func (p *Pallet[A, B]) Balance(who A) (B, error) {
	balance, found, err := p.balances.Get(who)
	if err != nil {
		return common.Zero[B](), err
	}
	if !found {
		return common.Zero[B](), nil
	}
	return balance, nil
}

// Transfer moves amount from caller to to. The transfer fails if the caller
// does not hold enough funds or if the balance of the receiver would
// overflow. A failed transfer does not modify any balance, and neither does a
// transfer of zero or to the caller itself.
func (p *Pallet[A, B]) Transfer(caller A, to A, amount B) error {
	fromBalance, err := p.Balance(caller)
	if err != nil {
		return err
	}
	newFromBalance, ok := fromBalance.CheckedSub(amount)
	if !ok {
		return ErrInsufficientFunds
	}
	// Nothing moves, so no entries are written.
	if caller == to || amount.IsZero() {
		return nil
	}

	toBalance, err := p.Balance(to)
	if err != nil {
		return err
	}
	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}

	return p.balances.Apply(store.Update[A, B]{
		Set: map[A]B{
			caller: newFromBalance,
			to:     newToBalance,
		},
	})
}

// TotalIssuance returns the sum of all balances.
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	entries, err := p.Balances()
	if err != nil {
		return common.Zero[B](), err
	}
	total := common.Zero[B]()
	for _, entry := range entries {
		next, ok := total.CheckedAdd(entry.Value)
		if !ok {
			return common.Zero[B](), ErrIssuanceOverflow
		}
		total = next
	}
	return total, nil
}

// Balances lists all stored balances in ascending account order.
func (p *Pallet[A, B]) Balances() ([]store.Entry[A, B], error) {
	return store.Entries(p.balances)
}

func (p *Pallet[A, B]) Close() error {
	return p.balances.Close()
}

// Call is the set of calls offered by the balances pallet. The caller of a
// call is provided by the dispatcher and is not part of the call.
type Call[A common.AccountID, B common.Number[B]] interface {
	isBalancesCall(A, B)
}

// Transfer moves Amount from the caller to To.
type Transfer[A common.AccountID, B common.Number[B]] struct {
	To     A
	Amount B
}

func (Transfer[A, B]) isBalancesCall(A, B) {}

// Dispatch executes the given call on behalf of caller.
func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch call := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, call.To, call.Amount)
	}
	return ErrUnknownCall
}
