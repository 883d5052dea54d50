// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package claims implements a proof-of-existence pallet allowing accounts to
// claim ownership of some content. Each content can be owned by at most one
// account at a time.
package claims

import (
	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/store"
	"golang.org/x/exp/constraints"
)

const (
	ErrAlreadyClaimed   = common.ConstError("this content is already claimed")
	ErrClaimNotExisting = common.ConstError("claim not existing")
	ErrNotClaimOwner    = common.ConstError("cannot revoke claim that is not owned by caller")
	ErrUnknownCall      = common.ConstError("unknown claims call")
)

// Content is the contract for claimable content. Runtimes may use the
// content itself or, better, a hash of it.
type Content interface {
	constraints.Ordered
}

// Pallet is the claims pallet for account type A and content type C.
type Pallet[A common.AccountID, C Content] struct {
	claims store.Store[C, A]
}

// New creates a claims pallet on top of the given, empty store.
func New[A common.AccountID, C Content](claims store.Store[C, A]) *Pallet[A, C] {
	return &Pallet[A, C]{claims: claims}
}

// GetClaim returns the owner of the given claim, if there is any.
func (p *Pallet[A, C]) GetClaim(claim C) (A, bool, error) {
	return p.claims.Get(claim)
}

// CreateClaim registers caller as the owner of claim. It fails if the
// content is already claimed by anyone.
func (p *Pallet[A, C]) CreateClaim(caller A, claim C) error {
	_, found, err := p.claims.Get(claim)
	if err != nil {
		return err
	}
	if found {
		return ErrAlreadyClaimed
	}
	return p.claims.Apply(store.Update[C, A]{
		Set: map[C]A{claim: caller},
	})
}

// RevokeClaim removes an existing claim. Only the owner of a claim may
// revoke it.
func (p *Pallet[A, C]) RevokeClaim(caller A, claim C) error {
	owner, found, err := p.claims.Get(claim)
	if err != nil {
		return err
	}
	if !found {
		return ErrClaimNotExisting
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	return p.claims.Apply(store.Update[C, A]{
		Delete: []C{claim},
	})
}

// Claims lists all claims in ascending content order.
func (p *Pallet[A, C]) Claims() ([]store.Entry[C, A], error) {
	return store.Entries(p.claims)
}

func (p *Pallet[A, C]) Close() error {
	return p.claims.Close()
}

// Call is the set of calls offered by the claims pallet.
type Call[C Content] interface {
	isClaimsCall(C)
}

// CreateClaim claims Claim for the caller.
type CreateClaim[C Content] struct {
	Claim C
}

// RevokeClaim revokes the caller's claim on Claim.
type RevokeClaim[C Content] struct {
	Claim C
}

func (CreateClaim[C]) isClaimsCall(C) {}
func (RevokeClaim[C]) isClaimsCall(C) {}

// Dispatch executes the given call on behalf of caller.
func (p *Pallet[A, C]) Dispatch(caller A, call Call[C]) error {
	switch call := call.(type) {
	case CreateClaim[C]:
		return p.CreateClaim(caller, call.Claim)
	case RevokeClaim[C]:
		return p.RevokeClaim(caller, call.Claim)
	}
	return ErrUnknownCall
}
