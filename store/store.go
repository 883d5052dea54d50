// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store provides the ordered key-value stores backing the state of
// all pallets. Stores are purely in-memory; updates are applied atomically.
package store

import (
	"fmt"

	"github.com/0xsoniclabs/stf/common"
	"golang.org/x/exp/constraints"
)

const (
	ErrClosed = common.ConstError("store is closed")
)

// Store is an ordered key-value store. Missing keys are reported through the
// boolean result of Get, not as errors.
type Store[K constraints.Ordered, V any] interface {
	// Get returns the value stored for the given key and whether it exists.
	Get(key K) (V, bool, error)
	// Apply writes the given update atomically. Either all entries of the
	// update are written, or none of them.
	Apply(update Update[K, V]) error
	// Keys returns all keys of the store in ascending order.
	Keys() ([]K, error)
	// Len returns the number of stored entries.
	Len() (int, error)
	Close() error
}

// Update summarizes a set of changes to a store. Deletes are applied after
// all Set entries.
type Update[K constraints.Ordered, V any] struct {
	Set    map[K]V
	Delete []K
}

// Entry is a single key-value pair of a store.
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Entries lists all entries of the given store in ascending key order.
func Entries[K constraints.Ordered, V any](s Store[K, V]) ([]Entry[K, V], error) {
	keys, err := s.Keys()
	if err != nil {
		return nil, err
	}
	res := make([]Entry[K, V], 0, len(keys))
	for _, key := range keys {
		value, found, err := s.Get(key)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("key %v listed but not found", key)
		}
		res = append(res, Entry[K, V]{Key: key, Value: value})
	}
	return res, nil
}

// Kind selects a store implementation.
type Kind string

const (
	Memory  Kind = "memory"
	LevelDb Kind = "leveldb"
)

// Open creates a new, empty store of the given kind. The empty kind defaults
// to Memory.
func Open[K constraints.Ordered, V any](kind Kind) (Store[K, V], error) {
	switch kind {
	case "", Memory:
		return NewMemory[K, V](), nil
	case LevelDb:
		return NewLevelDb[K, V]()
	}
	return nil, fmt.Errorf("unsupported store kind: %q", kind)
}
