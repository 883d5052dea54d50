// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package runtime

import (
	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/pallet/balances"
	"github.com/0xsoniclabs/stf/pallet/claims"
	"github.com/0xsoniclabs/stf/support"
)

const (
	ErrUnknownCall = common.ConstError("unknown runtime call")
)

// Call is the union of the calls of all pallets of this runtime. Each
// variant wraps the call type of exactly one pallet. Adding a pallet only
// requires adding a variant here and a case in Runtime.Dispatch.
type Call interface {
	isRuntimeCall()
}

// BalancesCall is a call routed to the balances pallet.
type BalancesCall struct {
	Call balances.Call[AccountID, Balance]
}

// ClaimsCall is a call routed to the claims pallet.
type ClaimsCall struct {
	Call claims.Call[Content]
}

func (BalancesCall) isRuntimeCall() {}
func (ClaimsCall) isRuntimeCall()   {}

var _ support.Dispatcher[AccountID, Call] = (*Runtime)(nil)

// Dispatch forwards the given call to the pallet owning it. Errors of the
// pallet are returned unchanged.
func (r *Runtime) Dispatch(caller AccountID, call Call) error {
	switch call := call.(type) {
	case BalancesCall:
		return r.balances.Dispatch(caller, call.Call)
	case ClaimsCall:
		return r.claims.Dispatch(caller, call.Call)
	}
	return ErrUnknownCall
}

// Transfer creates a call transferring amount from the caller to to.
func Transfer(to AccountID, amount Balance) Call {
	return BalancesCall{Call: balances.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

// CreateClaim creates a call claiming the given content for the caller.
func CreateClaim(claim Content) Call {
	return ClaimsCall{Call: claims.CreateClaim[Content]{Claim: claim}}
}

// RevokeClaim creates a call revoking the caller's claim on the content.
func RevokeClaim(claim Content) Call {
	return ClaimsCall{Call: claims.RevokeClaim[Content]{Claim: claim}}
}
