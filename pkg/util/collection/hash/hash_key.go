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
	"hash/fnv"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the hash set and hash map.  Unlike a plain Go map key, the hash is not
// assumed to uniquely identify an item, hence equality is also required.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// ============================================================================
// StringKey Implementation
// ============================================================================

var _ Hasher[StringKey] = StringKey{}

// StringKey wraps a string as something which can be safely placed into a Set
// or used as the key of a Map.
type StringKey struct {
	text string
}

// NewStringKey constructs a new string key.
func NewStringKey(text string) StringKey {
	return StringKey{text}
}

// Equals compares two StringKeys.
func (p StringKey) Equals(other StringKey) bool {
	return p.text == other.text
}

// Hash generates a 64-bit hashcode from the underlying string.
func (p StringKey) Hash() uint64 {
	return String(p.text)
}

func (p StringKey) String() string {
	return p.text
}

// ============================================================================
// Hash helpers
// ============================================================================

// String computes the FNV-1a hash of a given string.
func String(text string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(text))
	// Done
	return hash.Sum64()
}

// Combine mixes a sequence of hashcodes into a single hashcode.  Observe that
// the result depends upon the order in which hashcodes are given.
func Combine(hashes ...uint64) uint64 {
	// FNV1a hash implementation
	hash := offset64
	//
	for _, c := range hashes {
		hash ^= c
		hash *= prime64
	}
	//
	return hash
}
