// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package support defines the primitives shared by all pallets and the
// runtime: the dispatch protocol and the block and extrinsic containers.
package support

// Dispatcher is implemented by every pallet and by the runtime. Dispatch
// applies the given call on behalf of the caller. The caller is always
// supplied by the block execution, never taken from the call itself.
//
// A failing dispatch must not leave any partial modification behind.
type Dispatcher[Caller any, Call any] interface {
	Dispatch(caller Caller, call Call) error
}

// Header holds the metadata of a block.
type Header[BlockNumber any] struct {
	BlockNumber BlockNumber
}

// Extrinsic is a single request of a caller to execute a call.
type Extrinsic[Caller any, Call any] struct {
	Caller Caller
	Call   Call
}

// Block is an ordered list of extrinsics to be applied on top of the
// state of the previous block.
type Block[BlockNumber any, Caller any, Call any] struct {
	Header     Header[BlockNumber]
	Extrinsics []Extrinsic[Caller, Call]
}
