// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"fmt"
	"strings"
)

// Set defines a generic set implementation backed by a map.  This is a true
// hashtable in that collisions are handle gracefully using buckets, rather than
// simply discarding them.  Items are additionally kept in insertion order, such
// that iterating a set is deterministic.
type Set[T Hasher[T]] struct {
	// buckets maps hashcodes to *buckets* of items.
	buckets map[uint64]hashSetBucket[T]
	// items holds every item exactly once, in the order of first insertion.
	items []T
}

// NewSet creates a new Set with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	buckets := make(map[uint64]hashSetBucket[T], size)
	return &Set[T]{buckets, make([]T, 0, size)}
}

// Size returns the number of unique items stored in this Set.
func (p *Set[T]) Size() uint {
	return uint(len(p.items))
}

// IsEmpty checks whether this set contains no items.
func (p *Set[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// MaxBucket returns the size of the largest bucket.
func (p *Set[T]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.buckets {
		m = max(m, b.size())
	}

	return m
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	b1 := p.buckets[hash]
	// Insert new item
	if b1.insert(item) {
		return true
	}
	// Update map
	p.buckets[hash] = b1
	p.items = append(p.items, item)
	// Done
	return false
}

// InsertAll inserts every item from a given set into this set.
func (p *Set[T]) InsertAll(other *Set[T]) {
	for _, item := range other.items {
		p.Insert(item)
	}
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	hash := item.Hash()

	if bucket, ok := p.buckets[hash]; ok {
		return bucket.contains(item)
	}

	return false
}

// Items returns the items of this set in insertion order.  The returned slice
// must not be modified.
func (p *Set[T]) Items() []T {
	return p.items
}

//nolint:revive
func (p *Set[T]) String() string {
	var r strings.Builder
	// Write opening brace
	r.WriteString("{")
	//
	for i, item := range p.items {
		if i != 0 {
			r.WriteString(",")
		}

		r.WriteString(fmt.Sprintf("%s", any(item)))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type hashSetBucket[T Hasher[T]] struct {
	items []T
}

// Get the number of items in this bucket.
func (b *hashSetBucket[T]) size() uint {
	return uint(len(b.items))
}

// Insert a new item into this bucket, returning true if it was already present.
func (b *hashSetBucket[T]) insert(item T) bool {
	if b.contains(item) {
		// Item already present, so nothing to do.
		return true
	}
	// Append item
	b.items = append(b.items, item)
	// Item not present
	return false
}

// Check whether this bucket contains a given item, or not.
func (b *hashSetBucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}

	return false
}
