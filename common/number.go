// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AccountID is the contract every account identity type has to satisfy. It is
// totally ordered so that it can be used as a key of ordered stores and it is
// copied by value.
type AccountID interface {
	constraints.Ordered
}

// Number is the contract for abstract numeric types like block numbers,
// nonces, or balances. All arithmetic is checked: CheckedAdd and CheckedSub
// report false instead of wrapping around.
type Number[T any] interface {
	comparable
	Zero() T
	One() T
	IsZero() bool
	CheckedAdd(T) (T, bool)
	CheckedSub(T) (T, bool)
	Cmp(T) int
}

// Zero returns the neutral element of the given number type.
func Zero[T Number[T]]() T {
	var n T
	return n.Zero()
}

// One returns the unit of the given number type.
func One[T Number[T]]() T {
	var n T
	return n.One()
}

// U32 is a 32-bit unsigned number implementing Number.
type U32 uint32

func (U32) Zero() U32                      { return 0 }
func (U32) One() U32                       { return 1 }
func (n U32) IsZero() bool                 { return n == 0 }
func (n U32) CheckedAdd(o U32) (U32, bool) { return checkedAdd(n, o) }
func (n U32) CheckedSub(o U32) (U32, bool) { return checkedSub(n, o) }
func (n U32) Cmp(o U32) int                { return compare(n, o) }
func (n U32) String() string               { return fmt.Sprintf("%d", uint32(n)) }

// U64 is a 64-bit unsigned number implementing Number.
type U64 uint64

func (U64) Zero() U64                      { return 0 }
func (U64) One() U64                       { return 1 }
func (n U64) IsZero() bool                 { return n == 0 }
func (n U64) CheckedAdd(o U64) (U64, bool) { return checkedAdd(n, o) }
func (n U64) CheckedSub(o U64) (U64, bool) { return checkedSub(n, o) }
func (n U64) Cmp(o U64) int                { return compare(n, o) }
func (n U64) String() string               { return fmt.Sprintf("%d", uint64(n)) }

func checkedAdd[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

func checkedSub[T constraints.Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
