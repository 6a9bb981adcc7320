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
package record

import (
	"slices"
	"strings"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/segment"
	"github.com/consensys/go-morpar/pkg/util/collection/hash"
)

// Record is an immutable, sparse assignment of segment values to channel names.
// Records serve both as the output of a parse step and as its input (or
// remnant).  Entries are kept sorted by channel name, so two records holding the
// same assignments are structurally identical.
type Record struct {
	entries []entry
}

type entry struct {
	name  string
	value segment.Value
}

// Empty returns the record with no assignments.
func Empty() Record {
	return Record{nil}
}

// Of constructs a record assigning text to each of the given channels, using the
// channel's own delimiter.
func Of(text string, channels channel.Set) Record {
	r := Empty()
	//
	for _, c := range channels.Members() {
		r = r.With(c.Name(), segment.New(text, c.Delimiter()))
	}
	//
	return r
}

// Len returns the number of channels assigned in this record.
func (r Record) Len() int {
	return len(r.entries)
}

// IsEmpty checks whether this record assigns no channels.
func (r Record) IsEmpty() bool {
	return len(r.entries) == 0
}

// Get returns the value assigned to a given channel, if any.
func (r Record) Get(name string) (segment.Value, bool) {
	if i, ok := r.find(name); ok {
		return r.entries[i].value, true
	}
	//
	return segment.Value{}, false
}

// Has checks whether a given channel is assigned in this record.
func (r Record) Has(name string) bool {
	_, ok := r.find(name)
	return ok
}

// With returns a copy of this record in which name is assigned value.
func (r Record) With(name string, value segment.Value) Record {
	i, ok := r.find(name)
	entries := make([]entry, len(r.entries), len(r.entries)+1)
	copy(entries, r.entries)
	//
	if ok {
		entries[i].value = value
	} else {
		entries = slices.Insert(entries, i, entry{name, value})
	}
	//
	return Record{entries}
}

// Without returns a copy of this record with the given channels removed.
func (r Record) Without(names ...string) Record {
	entries := make([]entry, 0, len(r.entries))
	//
	for _, e := range r.entries {
		if !slices.Contains(names, e.name) {
			entries = append(entries, e)
		}
	}
	//
	return Record{entries}
}

// Names returns the assigned channel names in sorted order.
func (r Record) Names() []string {
	names := make([]string, len(r.entries))
	//
	for i, e := range r.entries {
		names[i] = e.name
	}
	//
	return names
}

// HasConflict checks whether any channel of this record holds the conflict
// sentinel.
func (r Record) HasConflict() bool {
	for _, e := range r.entries {
		if e.value.IsConflict() {
			return true
		}
	}
	//
	return false
}

// Cost returns the magnitude of the cost held on a given channel, or zero if
// it is unassigned.
func (r Record) Cost(c channel.Channel) int {
	if v, ok := r.Get(c.Name()); ok {
		return v.Len()
	}
	//
	return 0
}

// LeftOuter merges two records where the receiver was parsed before (i.e. lies
// to the left of) other.  Channels assigned in only one record are copied,
// whilst colliding values combine as other[k].Prepend(r[k]).  Values which
// cannot be combined yield the conflict sentinel, hence the merge never fails.
func (r Record) LeftOuter(other Record) Record {
	return merge(r, other, func(left, right segment.Value) segment.Value {
		return right.Prepend(left)
	})
}

// RightOuter merges two records where the receiver lies to the left of other.
// Channels assigned in only one record are copied, whilst colliding values
// combine as r[k].Append(other[k]).
func (r Record) RightOuter(other Record) Record {
	return merge(r, other, func(left, right segment.Value) segment.Value {
		return left.Append(right)
	})
}

// Equals checks whether two records make identical assignments.
func (r Record) Equals(other Record) bool {
	if len(r.entries) != len(other.entries) {
		return false
	}
	//
	for i, e := range r.entries {
		o := other.entries[i]
		if e.name != o.name || !e.value.Equals(o.value) {
			return false
		}
	}
	//
	return true
}

// Hash returns a hash of this record's assignments, consistent with Equals.
func (r Record) Hash() uint64 {
	hashes := make([]uint64, 0, 3*len(r.entries))
	//
	for _, e := range r.entries {
		hashes = append(hashes, hash.String(e.name), hash.String(e.value.Text()), hash.String(e.value.Delimiter()))
	}
	//
	return hash.Combine(hashes...)
}

func (r Record) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range r.entries {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(e.name)
		builder.WriteString("=")
		builder.WriteString(e.value.Text())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// find locates the position of a name, or where it would be inserted.
func (r Record) find(name string) (int, bool) {
	return slices.BinarySearchFunc(r.entries, name, func(e entry, n string) int {
		return strings.Compare(e.name, n)
	})
}

func merge(left, right Record, combine func(segment.Value, segment.Value) segment.Value) Record {
	var (
		entries = make([]entry, 0, len(left.entries)+len(right.entries))
		i, j    int
	)
	// Standard merge of two sorted lists
	for i < len(left.entries) && j < len(right.entries) {
		l, r := left.entries[i], right.entries[j]
		//
		switch c := strings.Compare(l.name, r.name); {
		case c < 0:
			entries = append(entries, l)
			i++
		case c > 0:
			entries = append(entries, r)
			j++
		default:
			entries = append(entries, entry{l.name, combine(l.value, r.value)})
			i++
			j++
		}
	}
	// Copy remainders
	entries = append(entries, left.entries[i:]...)
	entries = append(entries, right.entries[j:]...)
	//
	return Record{entries}
}
