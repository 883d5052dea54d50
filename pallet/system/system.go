// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package system implements the system pallet tracking the low level state
// of the chain: the current block number and the nonces of all accounts.
package system

import (
	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/store"
)

const (
	ErrBlockNumberOverflow = common.ConstError("block number overflow")
	ErrNonceOverflow       = common.ConstError("nonce overflow")
)

// Pallet is the system pallet. A is the account identity type used for
// nonce bookkeeping, B the block number type and N the nonce type.
type Pallet[A common.AccountID, B common.Number[B], N common.Number[N]] struct {
	blockNumber B
	nonces      store.Store[A, N]
}

// New creates a system pallet at block zero using the given, empty store
// for nonces.
func New[A common.AccountID, B common.Number[B], N common.Number[N]](
	nonces store.Store[A, N],
) *Pallet[A, B, N] {
	return &Pallet[A, B, N]{
		blockNumber: common.Zero[B](),
		nonces:      nonces,
	}
}

// BlockNumber returns the number of the last executed block.
func (p *Pallet[A, B, N]) BlockNumber() B {
	return p.blockNumber
}

// IncBlockNumber increases the block number by one. On overflow the block
// number is left unchanged.
func (p *Pallet[A, B, N]) IncBlockNumber() error {
	next, ok := p.blockNumber.CheckedAdd(common.One[B]())
	if !ok {
		return ErrBlockNumberOverflow
	}
	p.blockNumber = next
	return nil
}

// Nonce returns the number of extrinsics processed for the given account.
func (p *Pallet[A, B, N]) Nonce(who A) (N, error) {
	nonce, found, err := p.nonces.Get(who)
	if err != nil {
		return common.Zero[N](), err
	}
	if !found {
		return common.Zero[N](), nil
	}
	return nonce, nil
}

// IncNonce increments the nonce of the given account by one. On overflow
// the nonce is left unchanged.
func (p *Pallet[A, B, N]) IncNonce(who A) error {
	current, err := p.Nonce(who)
	if err != nil {
		return err
	}
	next, ok := current.CheckedAdd(common.One[N]())
	if !ok {
		return ErrNonceOverflow
	}
	return p.nonces.Apply(store.Update[A, N]{
		Set: map[A]N{who: next},
	})
}

// Nonces lists the nonces of all accounts in ascending account order.
func (p *Pallet[A, B, N]) Nonces() ([]store.Entry[A, N], error) {
	return store.Entries(p.nonces)
}

func (p *Pallet[A, B, N]) Close() error {
	return p.nonces.Close()
}
