// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package balances

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/common/amount"
	"github.com/0xsoniclabs/stf/store"
	"github.com/0xsoniclabs/stf/support"
	"github.com/stretchr/testify/require"
)

var _ support.Dispatcher[string, Call[string, common.U64]] = (*Pallet[string, common.U64])(nil)

func newTestPallet() *Pallet[string, common.U64] {
	return New(store.NewMemory[string, common.U64]())
}

func TestPallet_InitBalances(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()

	balance, err := balances.Balance("alice")
	require.NoError(err)
	require.Equal(common.U64(0), balance)

	require.NoError(balances.SetBalance("alice", 100))

	balance, err = balances.Balance("alice")
	require.NoError(err)
	require.Equal(common.U64(100), balance)

	balance, err = balances.Balance("bob")
	require.NoError(err)
	require.Equal(common.U64(0), balance)
}

func TestPallet_TransferBalance(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()

	require.ErrorIs(balances.Transfer("alice", "bob", 100), ErrInsufficientFunds)

	require.NoError(balances.SetBalance("alice", 100))
	require.NoError(balances.Transfer("alice", "bob", 100))

	requireBalance(t, balances, "alice", 0)
	requireBalance(t, balances, "bob", 100)
}

func TestPallet_TransferPreservesTotalIssuance(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()
	require.NoError(balances.SetBalance("alice", 70))
	require.NoError(balances.SetBalance("bob", 30))

	for _, value := range []common.U64{0, 1, 29, 40} {
		require.NoError(balances.Transfer("alice", "bob", value))
		total, err := balances.TotalIssuance()
		require.NoError(err)
		require.Equal(common.U64(100), total)
	}
	requireBalance(t, balances, "alice", 0)
	requireBalance(t, balances, "bob", 100)
}

func TestPallet_FailedTransferLeavesBalancesUnchanged(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()
	require.NoError(balances.SetBalance("alice", 100))
	require.NoError(balances.SetBalance("bob", math.MaxUint64-10))

	require.ErrorIs(balances.Transfer("alice", "bob", 101), ErrInsufficientFunds)
	requireBalance(t, balances, "alice", 100)
	requireBalance(t, balances, "bob", math.MaxUint64-10)

	require.ErrorIs(balances.Transfer("alice", "bob", 11), ErrBalanceOverflow)
	requireBalance(t, balances, "alice", 100)
	requireBalance(t, balances, "bob", math.MaxUint64-10)

	require.NoError(balances.Transfer("alice", "bob", 10))
	requireBalance(t, balances, "alice", 90)
	requireBalance(t, balances, "bob", math.MaxUint64)
}

func TestPallet_TransferToSelfDoesNotMint(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()
	require.NoError(balances.SetBalance("alice", 100))

	require.NoError(balances.Transfer("alice", "alice", 60))
	requireBalance(t, balances, "alice", 100)

	require.ErrorIs(balances.Transfer("alice", "alice", 101), ErrInsufficientFunds)
	requireBalance(t, balances, "alice", 100)
}

func TestPallet_ZeroTransferWritesNoEntries(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()

	require.NoError(balances.Transfer("bob", "charlie", 0))
	entries, err := balances.Balances()
	require.NoError(err)
	require.Empty(entries)
}

func TestPallet_TotalIssuanceOverflowIsReported(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()
	require.NoError(balances.SetBalance("alice", math.MaxUint64))
	require.NoError(balances.SetBalance("bob", 1))

	_, err := balances.TotalIssuance()
	require.ErrorIs(err, ErrIssuanceOverflow)
}

func TestPallet_WorksWithAmounts(t *testing.T) {
	require := require.New(t)
	balances := New(store.NewMemory[string, amount.Amount]())
	require.NoError(balances.SetBalance("bob", amount.Max()))
	require.NoError(balances.SetBalance("alice", amount.New(1)))

	require.ErrorIs(balances.Transfer("alice", "bob", amount.New(1)), ErrBalanceOverflow)
	require.NoError(balances.Transfer("bob", "alice", amount.New(1)))

	balance, err := balances.Balance("alice")
	require.NoError(err)
	require.Equal(amount.New(2), balance)
}

type unknownCall struct{}

func (unknownCall) isBalancesCall(string, common.U64) {}

func TestPallet_DispatchForwardsCalls(t *testing.T) {
	require := require.New(t)
	balances := newTestPallet()
	require.NoError(balances.SetBalance("alice", 100))

	require.NoError(balances.Dispatch("alice", Transfer[string, common.U64]{To: "bob", Amount: 30}))
	requireBalance(t, balances, "alice", 70)
	requireBalance(t, balances, "bob", 30)

	err := balances.Dispatch("bob", Transfer[string, common.U64]{To: "alice", Amount: 31})
	require.ErrorIs(err, ErrInsufficientFunds)

	require.ErrorIs(balances.Dispatch("alice", unknownCall{}), ErrUnknownCall)
	require.ErrorIs(balances.Dispatch("alice", nil), ErrUnknownCall)
}

func requireBalance(t *testing.T, balances *Pallet[string, common.U64], who string, want common.U64) {
	t.Helper()
	got, err := balances.Balance(who)
	require.NoError(t, err)
	require.Equal(t, want, got, "balance of %s", who)
}
