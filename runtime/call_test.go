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
	"testing"

	"github.com/0xsoniclabs/stf/common/amount"
	"github.com/0xsoniclabs/stf/pallet/balances"
	"github.com/0xsoniclabs/stf/pallet/claims"
	"github.com/stretchr/testify/require"
)

func TestRuntime_DispatchRoutesCallsToOwningPallet(t *testing.T) {
	require := require.New(t)
	runtime := New()
	require.NoError(runtime.Balances().SetBalance(alice, amount.New(5)))

	require.NoError(runtime.Dispatch(alice, Transfer(bob, amount.New(5))))
	requireBalance(t, runtime, bob, 5)

	require.NoError(runtime.Dispatch(bob, CreateClaim("x")))
	requireClaim(t, runtime, "x", bob)

	// Dispatching does not touch the system pallet.
	requireNonce(t, runtime, alice, 0)
	requireNonce(t, runtime, bob, 0)
}

func TestRuntime_DispatchReturnsPalletErrorsUnchanged(t *testing.T) {
	require := require.New(t)
	runtime := New()

	err := runtime.Dispatch(alice, Transfer(bob, amount.New(1)))
	require.Equal(balances.ErrInsufficientFunds, err)

	err = runtime.Dispatch(alice, RevokeClaim("x"))
	require.Equal(claims.ErrClaimNotExisting, err)

	err = runtime.Dispatch(alice, BalancesCall{})
	require.Equal(balances.ErrUnknownCall, err)

	err = runtime.Dispatch(alice, ClaimsCall{})
	require.Equal(claims.ErrUnknownCall, err)
}

func TestRuntime_DispatchRejectsUnknownCalls(t *testing.T) {
	runtime := New()
	require.ErrorIs(t, runtime.Dispatch(alice, nil), ErrUnknownCall)
}

func TestCall_ConstructorsWrapPalletCalls(t *testing.T) {
	require := require.New(t)
	require.Equal(
		BalancesCall{Call: balances.Transfer[AccountID, Balance]{To: bob, Amount: amount.New(3)}},
		Transfer(bob, amount.New(3)),
	)
	require.Equal(ClaimsCall{Call: claims.CreateClaim[Content]{Claim: "x"}}, CreateClaim("x"))
	require.Equal(ClaimsCall{Call: claims.RevokeClaim[Content]{Claim: "x"}}, RevokeClaim("x"))
}
