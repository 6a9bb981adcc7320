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
package parser

import (
	"sync"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/util/collection/hash"
)

// Memo caches the results of applying its child.  Entries are keyed by the
// complete input record, the requested channels and the direction, and are
// never evicted.  A memo table may be safely shared between goroutines parsing
// different words.
type Memo struct {
	child Parser
	mux   sync.RWMutex
	table *hash.Map[memoKey, *Results]
}

// Channels implementation for the Parser interface.
func (p *Memo) Channels() channel.Set {
	return p.child.Channels()
}

// Size returns the number of entries in this memo table.
func (p *Memo) Size() uint {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	return p.table.Size()
}

func (p *Memo) String() string {
	return p.child.String()
}

func (p *Memo) node() {}

func (p *Memo) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	key := memoKey{input, requested.String(), leftward}
	//
	p.mux.RLock()
	results, ok := p.table.Get(key)
	p.mux.RUnlock()
	//
	if ok {
		return results
	}
	// Computed outside the lock, since the child may re-enter this table.
	results = Apply(p.child, input, requested, leftward)
	//
	p.mux.Lock()
	p.table.Insert(key, results)
	p.mux.Unlock()
	//
	return results
}

type memoKey struct {
	input     record.Record
	requested string
	leftward  bool
}

func (p memoKey) Equals(other memoKey) bool {
	return p.leftward == other.leftward && p.requested == other.requested && p.input.Equals(other.input)
}

func (p memoKey) Hash() uint64 {
	var direction uint64
	//
	if p.leftward {
		direction = 1
	}
	//
	return hash.Combine(p.input.Hash(), hash.String(p.requested), direction)
}
