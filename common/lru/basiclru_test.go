// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLRU(t *testing.T) {
	cache := NewBasicLRU[int, int](128)

	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	assert.Equal(t, 128, cache.Len())

	// Check that Keys returns least-recent key first.
	keys := cache.Keys()
	assert.Len(t, keys, 128)
	for i, k := range keys {
		v, ok := cache.Peek(k)
		assert.True(t, ok, "expected key %d be present", i)
		assert.Equal(t, k, v, "expected %d == %d", k, v)
		assert.Equal(t, i+128, v, "wrong value at key %d", k)
	}

	for i := 0; i < 128; i++ {
		_, ok := cache.Get(i)
		assert.False(t, ok, "%d should be evicted", i)
	}
	for i := 128; i < 256; i++ {
		_, ok := cache.Get(i)
		assert.True(t, ok, "%d should not be evicted", i)
	}

	for i := 128; i < 192; i++ {
		assert.True(t, cache.Remove(i), "remove %d", i)
		assert.False(t, cache.Remove(i), "second remove %d", i)
	}

	cache.Purge()
	assert.Zero(t, cache.Len())
	_, ok := cache.Get(200)
	assert.False(t, ok)
}

func TestBasicLRUAddExistingKey(t *testing.T) {
	cache := NewBasicLRU[int, int](1)

	cache.Add(1, 1)
	assert.False(t, cache.Add(1, 2), "overwrite must not evict")

	v, _ := cache.Get(1)
	assert.Equal(t, 2, v)
}

func TestBasicLRUGetRefreshes(t *testing.T) {
	cache := NewBasicLRU[int, int](2)
	cache.Add(1, 1)
	cache.Add(2, 2)
	cache.Get(1)
	assert.True(t, cache.Add(3, 3))

	assert.True(t, cache.Contains(1))
	assert.False(t, cache.Contains(2), "least recently used key must be evicted")
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache[string, int](16)
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("%d-%d", w, i%8)
				cache.Add(key, i)
				cache.Get(key)
			}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}
	assert.LessOrEqual(t, cache.Len(), 16)
}
