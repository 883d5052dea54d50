// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// levelDbStore is an implementation of Store on top of a LevelDB instance
// using in-memory storage. Keys and values are RLP encoded, so K and V must
// be RLP-encodable types (e.g. strings, unsigned integers, amounts).
type levelDbStore[K constraints.Ordered, V any] struct {
	db     *leveldb.DB
	closed bool
}

// NewLevelDb creates a new, empty LevelDB backed store. Data is kept in
// memory and lost on Close.
func NewLevelDb[K constraints.Ordered, V any]() (Store[K, V], error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &levelDbStore[K, V]{db: db}, nil
}

func (s *levelDbStore[K, V]) Get(key K) (V, bool, error) {
	var value V
	if s.closed {
		return value, false, ErrClosed
	}
	k, err := rlp.EncodeToBytes(key)
	if err != nil {
		return value, false, fmt.Errorf("failed to encode key %v: %w", key, err)
	}
	data, err := s.db.Get(k, &opt.ReadOptions{})
	if err == leveldb.ErrNotFound {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	if err := rlp.DecodeBytes(data, &value); err != nil {
		return value, false, fmt.Errorf("failed to decode value of key %v: %w", key, err)
	}
	return value, true, nil
}

func (s *levelDbStore[K, V]) Apply(update Update[K, V]) error {
	if s.closed {
		return ErrClosed
	}
	// All entries are encoded before anything is written.
	batch := new(leveldb.Batch)
	for key, value := range update.Set {
		k, err := rlp.EncodeToBytes(key)
		if err != nil {
			return fmt.Errorf("failed to encode key %v: %w", key, err)
		}
		v, err := rlp.EncodeToBytes(value)
		if err != nil {
			return fmt.Errorf("failed to encode value of key %v: %w", key, err)
		}
		batch.Put(k, v)
	}
	for _, key := range update.Delete {
		k, err := rlp.EncodeToBytes(key)
		if err != nil {
			return fmt.Errorf("failed to encode key %v: %w", key, err)
		}
		batch.Delete(k)
	}
	return s.db.Write(batch, &opt.WriteOptions{})
}

func (s *levelDbStore[K, V]) Keys() ([]K, error) {
	if s.closed {
		return nil, ErrClosed
	}
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	var keys []K
	for iter.Next() {
		var key K
		if err := rlp.DecodeBytes(iter.Key(), &key); err != nil {
			return nil, fmt.Errorf("failed to decode key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	// LevelDB orders by encoded bytes, which differs from the key order.
	slices.Sort(keys)
	return keys, nil
}

func (s *levelDbStore[K, V]) Len() (int, error) {
	keys, err := s.Keys()
	return len(keys), err
}

func (s *levelDbStore[K, V]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
