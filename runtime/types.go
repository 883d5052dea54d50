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
	"github.com/0xsoniclabs/stf/common/amount"
	"github.com/0xsoniclabs/stf/pallet/balances"
	"github.com/0xsoniclabs/stf/pallet/claims"
	"github.com/0xsoniclabs/stf/pallet/system"
	"github.com/0xsoniclabs/stf/support"
)

// The concrete types of this runtime. They satisfy the requirements of all
// configured pallets at the same time.
type (
	AccountID   = string
	Balance     = amount.Amount
	BlockNumber = common.U32
	Nonce       = common.U32
	Content     = string
)

type (
	Header    = support.Header[BlockNumber]
	Extrinsic = support.Extrinsic[AccountID, Call]
	Block     = support.Block[BlockNumber, AccountID, Call]
)

type (
	SystemPallet   = system.Pallet[AccountID, BlockNumber, Nonce]
	BalancesPallet = balances.Pallet[AccountID, Balance]
	ClaimsPallet   = claims.Pallet[AccountID, Content]
)
