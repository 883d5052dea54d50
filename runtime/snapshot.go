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
	"context"
	"fmt"
	"io"

	"github.com/0xsoniclabs/stf/common"
	"github.com/0xsoniclabs/stf/store"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang/snappy"
)

// Snapshot is a complete, ordered listing of the state of a runtime.
type Snapshot struct {
	BlockNumber BlockNumber
	Nonces      []store.Entry[AccountID, Nonce]
	Balances    []store.Entry[AccountID, Balance]
	Claims      []store.Entry[Content, AccountID]
}

// Hash computes the Keccak-256 hash of the RLP encoding of the snapshot.
func (s *Snapshot) Hash() (common.Hash, error) {
	data, err := rlp.EncodeToBytes(s)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256(data), nil
}

// Snapshot collects the current state of all pallets.
func (r *Runtime) Snapshot() (*Snapshot, error) {
	nonces, err := r.system.Nonces()
	if err != nil {
		return nil, fmt.Errorf("failed to list nonces: %w", err)
	}
	balances, err := r.balances.Balances()
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	claims, err := r.claims.Claims()
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return &Snapshot{
		BlockNumber: r.system.BlockNumber(),
		Nonces:      nonces,
		Balances:    balances,
		Claims:      claims,
	}, nil
}

// GetHash returns a commitment to the current state. Runtimes with equal
// state have equal hashes, independent of the used store implementation.
func (r *Runtime) GetHash() (common.Hash, error) {
	snapshot, err := r.Snapshot()
	if err != nil {
		return common.Hash{}, err
	}
	return snapshot.Hash()
}

// Export writes a snappy compressed snapshot of the current state to out
// and returns the hash of the exported state.
func (r *Runtime) Export(ctx context.Context, out io.Writer) (common.Hash, error) {
	if err := ctx.Err(); err != nil {
		return common.Hash{}, err
	}
	snapshot, err := r.Snapshot()
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := snapshot.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	writer := snappy.NewBufferedWriter(out)
	if err := rlp.Encode(writer, snapshot); err != nil {
		return common.Hash{}, err
	}
	if err := writer.Close(); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// ReadSnapshot decodes a snapshot produced by Export.
func ReadSnapshot(in io.Reader) (*Snapshot, error) {
	res := &Snapshot{}
	if err := rlp.Decode(snappy.NewReader(in), res); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return res, nil
}
