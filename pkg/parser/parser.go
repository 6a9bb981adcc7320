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
	"fmt"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/util/collection/hash"
)

// Parser represents a node in a grammar.  Parsers form a closed family of node
// kinds (literals, patterns, guesses, lookups, sequences, choices, etc), each of
// which is interpreted by Apply.  Parsers are immutable once constructed, and
// may be shared freely between grammars and goroutines.
type Parser interface {
	// Channels returns the set of channels this parser can affect.
	Channels() channel.Set
	// String returns a human-readable rendering of this parser.
	String() string
	// Marks the closed family of parser kinds.
	node()
}

// Result is a single outcome of applying a parser: the output produced, and the
// remnant of the input which was not consumed.
type Result struct {
	Output  record.Record
	Remnant record.Record
}

// Equals checks whether two results are structurally identical.
func (p Result) Equals(other Result) bool {
	return p.Output.Equals(other.Output) && p.Remnant.Equals(other.Remnant)
}

// Hash returns a hashcode consistent with Equals.
func (p Result) Hash() uint64 {
	return hash.Combine(p.Output.Hash(), p.Remnant.Hash())
}

func (p Result) String() string {
	return fmt.Sprintf("(%s,%s)", p.Output, p.Remnant)
}

// Results is an insertion-ordered set of results, where duplicates collapse by
// structural equality.
type Results = hash.Set[Result]

// NewResults constructs an empty set of results.
func NewResults() *Results {
	return hash.NewSet[Result](0)
}

// trivial returns the singleton set containing the given output together with
// the unchanged input.
func trivial(output record.Record, input record.Record) *Results {
	results := NewResults()
	results.Insert(Result{output, input})
	//
	return results
}

// Apply a parser to a given input, returning every way in which it can succeed.
// The requested channels identify which channels of the input are being
// consumed: a leaf whose channels are disjoint from those requested is trivial
// for this call, and succeeds without inspecting the input.  The leftward flag
// determines whether affixes are sought at the start (leftward) or the end
// (rightward) of the input.  Failure is indicated by an empty result set.
func Apply(p Parser, input record.Record, requested channel.Set, leftward bool) *Results {
	switch p := p.(type) {
	case *Literal:
		return p.apply(input, requested, leftward)
	case *Pattern:
		return p.apply(input, requested)
	case *Guess:
		return p.apply(input, requested, leftward)
	case *Lookup:
		return p.apply(input, requested)
	case *Truncate:
		return p.apply(input, requested, leftward)
	case *Assertion:
		return p.apply(input, requested)
	case *Sequence:
		return p.apply(input, requested, leftward)
	case *Choice:
		return p.apply(input, requested, leftward)
	case *Negation:
		return p.apply(input, requested, leftward)
	case *Trimmer:
		return p.apply(input, requested, leftward)
	case *Delay:
		return p.apply(input, requested, leftward)
	case *Memo:
		return p.apply(input, requested, leftward)
	case *NullParser:
		return trivial(record.Empty(), input)
	default:
		panic(fmt.Sprintf("unknown parser encountered (%s)", p.String()))
	}
}

// keyChannel determines which of the requested channels a leaf consumes.  This
// is the first requested channel which the leaf itself covers.
func keyChannel(requested channel.Set, own channel.Set) (channel.Channel, bool) {
	for _, c := range requested.Members() {
		if own.Contains(c) {
			return c, true
		}
	}
	//
	return channel.Channel{}, false
}
