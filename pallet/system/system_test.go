// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package system

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/store"
	"github.com/stretchr/testify/require"
)

type testPallet = Pallet[string, common.U32, common.U32]

func newTestPallet() *testPallet {
	return New[string, common.U32, common.U32](store.NewMemory[string, common.U32]())
}

func TestPallet_InitialState(t *testing.T) {
	require := require.New(t)
	system := newTestPallet()

	require.Equal(common.U32(0), system.BlockNumber())
	nonce, err := system.Nonce("alice")
	require.NoError(err)
	require.Equal(common.U32(0), nonce)
}

func TestPallet_IncrementsBlockNumberAndNonce(t *testing.T) {
	require := require.New(t)
	system := newTestPallet()

	require.NoError(system.IncBlockNumber())
	require.Equal(common.U32(1), system.BlockNumber())

	require.NoError(system.IncNonce("alice"))
	require.NoError(system.IncNonce("alice"))
	require.NoError(system.IncNonce("bob"))

	nonce, err := system.Nonce("alice")
	require.NoError(err)
	require.Equal(common.U32(2), nonce)

	nonce, err = system.Nonce("bob")
	require.NoError(err)
	require.Equal(common.U32(1), nonce)

	nonces, err := system.Nonces()
	require.NoError(err)
	require.Equal([]store.Entry[string, common.U32]{
		{Key: "alice", Value: 2},
		{Key: "bob", Value: 1},
	}, nonces)
}

func TestPallet_BlockNumberOverflowLeavesStateUnchanged(t *testing.T) {
	require := require.New(t)
	system := newTestPallet()
	system.blockNumber = math.MaxUint32

	require.ErrorIs(system.IncBlockNumber(), ErrBlockNumberOverflow)
	require.Equal(common.U32(math.MaxUint32), system.BlockNumber())
}

func TestPallet_NonceOverflowLeavesStateUnchanged(t *testing.T) {
	require := require.New(t)
	system := newTestPallet()
	require.NoError(system.nonces.Apply(store.Update[string, common.U32]{
		Set: map[string]common.U32{"alice": math.MaxUint32},
	}))

	require.ErrorIs(system.IncNonce("alice"), ErrNonceOverflow)
	nonce, err := system.Nonce("alice")
	require.NoError(err)
	require.Equal(common.U32(math.MaxUint32), nonce)
}

func TestPallet_StoreErrorsArePropagated(t *testing.T) {
	require := require.New(t)
	system := newTestPallet()
	require.NoError(system.Close())

	_, err := system.Nonce("alice")
	require.ErrorIs(err, store.ErrClosed)
	require.ErrorIs(system.IncNonce("alice"), store.ErrClosed)
}
