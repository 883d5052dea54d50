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

//go:generate mockgen -source listener.go -destination listener_mock.go -package runtime

// Listener is informed about the outcome of block execution. Listeners are
// called synchronously from within ExecuteBlock.
type Listener interface {
	// OnExtrinsicFailed is called for every extrinsic of a block that could
	// not be applied. The extrinsic's effects, except for the nonce
	// increment, have been discarded.
	OnExtrinsicFailed(block BlockNumber, index int, caller AccountID, err error)
	// OnBlockExecuted is called once all extrinsics of an accepted block
	// have been processed.
	OnBlockExecuted(block BlockNumber, extrinsics int, failed int)
}

type noopListener struct{}

func (noopListener) OnExtrinsicFailed(BlockNumber, int, AccountID, error) {}
func (noopListener) OnBlockExecuted(BlockNumber, int, int)                {}
