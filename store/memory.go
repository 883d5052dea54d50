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
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// memoryStore is a map based implementation of Store.
type memoryStore[K constraints.Ordered, V any] struct {
	data   map[K]V
	closed bool
}

// NewMemory creates a new, empty map based store.
func NewMemory[K constraints.Ordered, V any]() Store[K, V] {
	return &memoryStore[K, V]{data: make(map[K]V)}
}

func (s *memoryStore[K, V]) Get(key K) (V, bool, error) {
	if s.closed {
		var empty V
		return empty, false, ErrClosed
	}
	value, found := s.data[key]
	return value, found, nil
}

func (s *memoryStore[K, V]) Apply(update Update[K, V]) error {
	if s.closed {
		return ErrClosed
	}
	for key, value := range update.Set {
		s.data[key] = value
	}
	for _, key := range update.Delete {
		delete(s.data, key)
	}
	return nil
}

func (s *memoryStore[K, V]) Keys() ([]K, error) {
	if s.closed {
		return nil, ErrClosed
	}
	keys := maps.Keys(s.data)
	slices.Sort(keys)
	return keys, nil
}

func (s *memoryStore[K, V]) Len() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return len(s.data), nil
}

func (s *memoryStore[K, V]) Close() error {
	s.closed = true
	s.data = nil
	return nil
}
