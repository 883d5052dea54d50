// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package amount

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Amount is a 256-bit unsigned integer used for balances. The zero value is
// a valid amount of zero. All arithmetic is checked.
type Amount struct {
	internal uint256.Int
}

// New creates a new Amount from the given value.
func New(value uint64) Amount {
	return Amount{internal: *uint256.NewInt(value)}
}

// NewFromBytes creates a new Amount from a big-endian byte slice. Inputs
// longer than 32 bytes are truncated to their least significant 32 bytes.
func NewFromBytes(bytes ...byte) Amount {
	var res Amount
	res.internal.SetBytes(bytes)
	return res
}

// NewFromDecimal parses a decimal string into an Amount.
func NewFromDecimal(value string) (Amount, error) {
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{internal: *v}, nil
}

// Max returns the largest representable amount.
func Max() Amount {
	var res Amount
	res.internal.SetAllOne()
	return res
}

func (Amount) Zero() Amount {
	return Amount{}
}

func (Amount) One() Amount {
	return New(1)
}

func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

// CheckedAdd returns a+b, or false if the sum exceeds Max().
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	var res Amount
	if _, overflow := res.internal.AddOverflow(&a.internal, &b.internal); overflow {
		return Amount{}, false
	}
	return res, true
}

// CheckedSub returns a-b, or false if b > a.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	var res Amount
	if _, underflow := res.internal.SubOverflow(&a.internal, &b.internal); underflow {
		return Amount{}, false
	}
	return res, true
}

func (a Amount) Cmp(b Amount) int {
	return a.internal.Cmp(&b.internal)
}

func (a Amount) IsUint64() bool {
	return a.internal.IsUint64()
}

func (a Amount) Uint64() uint64 {
	return a.internal.Uint64()
}

func (a Amount) Bytes32() [32]byte {
	return a.internal.Bytes32()
}

func (a Amount) String() string {
	return a.internal.Dec()
}

func (a Amount) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &a.internal)
}

func (a *Amount) DecodeRLP(s *rlp.Stream) error {
	return s.ReadUint256(&a.internal)
}
