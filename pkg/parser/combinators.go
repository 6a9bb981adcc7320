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
)

// Direction determines the order in which a sequence applies its children.
type Direction uint8

const (
	// Ambient sequences follow the direction of their enclosing parser.
	Ambient Direction = iota
	// Leftwards sequences always apply their left child first.
	Leftwards
	// Rightwards sequences always apply their right child first.
	Rightwards
)

// resolve the effective direction of a sequence, given the direction of its
// enclosing parser.
func (d Direction) resolve(leftward bool) bool {
	switch d {
	case Leftwards:
		return true
	case Rightwards:
		return false
	default:
		return leftward
	}
}

func (d Direction) operator() string {
	switch d {
	case Leftwards:
		return ">>"
	case Rightwards:
		return "<<"
	default:
		return "+"
	}
}

// ============================================================================
// Sequence
// ============================================================================

// Sequence applies two parsers one after the other, the second to the remnant
// of the first.  Which is applied first depends upon the direction: leftward,
// the left child consumes a prefix before the right child consumes the rest;
// rightward, the right child consumes a suffix first.  Either way, outputs are
// merged so that morphemes appear in their left-to-right surface order.
type Sequence struct {
	left      Parser
	right     Parser
	direction Direction
}

// Channels implementation for the Parser interface.
func (p *Sequence) Channels() channel.Set {
	return p.left.Channels().And(p.right.Channels())
}

// Direction returns the direction in which this sequence is applied.
func (p *Sequence) Direction() Direction {
	return p.direction
}

func (p *Sequence) String() string {
	return fmt.Sprintf("(%s %s %s)", p.left, p.direction.operator(), p.right)
}

func (p *Sequence) node() {}

func (p *Sequence) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	var (
		results       = NewResults()
		first, second = p.right, p.left
	)
	//
	leftward = p.direction.resolve(leftward)
	//
	if leftward {
		first, second = p.left, p.right
	}
	//
	for _, r1 := range Apply(first, input, requested, leftward).Items() {
		for _, r2 := range Apply(second, r1.Remnant, requested, leftward).Items() {
			var output record.Record
			//
			if leftward {
				output = r1.Output.RightOuter(r2.Output)
			} else {
				output = r2.Output.LeftOuter(r1.Output)
			}
			//
			results.Insert(Result{output, r2.Remnant})
		}
	}
	//
	return results
}

// ============================================================================
// Choice
// ============================================================================

// Choice succeeds whenever either of its children does, returning the union of
// their results.
type Choice struct {
	left  Parser
	right Parser
}

// Channels implementation for the Parser interface.
func (p *Choice) Channels() channel.Set {
	return p.left.Channels().And(p.right.Channels())
}

func (p *Choice) String() string {
	return fmt.Sprintf("(%s | %s)", p.left, p.right)
}

func (p *Choice) node() {}

func (p *Choice) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	results := NewResults()
	results.InsertAll(Apply(p.left, input, requested, leftward))
	results.InsertAll(Apply(p.right, input, requested, leftward))
	//
	return results
}

// ============================================================================
// Negation
// ============================================================================

// Negation succeeds (consuming and producing nothing) exactly when its child
// fails.
type Negation struct {
	child Parser
}

// Channels implementation for the Parser interface.
func (p *Negation) Channels() channel.Set {
	return p.child.Channels()
}

func (p *Negation) String() string {
	return fmt.Sprintf("~%s", p.child)
}

func (p *Negation) node() {}

func (p *Negation) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	if Apply(p.child, input, requested, leftward).IsEmpty() {
		return trivial(record.Empty(), input)
	}
	//
	return NewResults()
}

// ============================================================================
// Trim
// ============================================================================

// Trimmer removes a set of channels from the outputs of its child.  This is used
// to discard scratch channels which should not leak into final results.
type Trimmer struct {
	child    Parser
	channels channel.Set
}

// Channels implementation for the Parser interface.
func (p *Trimmer) Channels() channel.Set {
	return p.child.Channels().Minus(p.channels)
}

func (p *Trimmer) String() string {
	return fmt.Sprintf("(%s - %s)", p.child, p.channels)
}

func (p *Trimmer) node() {}

func (p *Trimmer) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	var (
		results = NewResults()
		names   = p.channels.Names()
	)
	//
	for _, r := range Apply(p.child, input, requested, leftward).Items() {
		results.Insert(Result{r.Output.Without(names...), r.Remnant})
	}
	//
	return results
}

// ============================================================================
// Delay
// ============================================================================

// Delay is a named reference to a rule, which is resolved only when applied.
// This permits recursive grammars, and rules used before they are defined.
type Delay struct {
	name  string
	rules *arena
}

// Name returns the name of the rule referred to.
func (p *Delay) Name() string {
	return p.name
}

// Channels implementation for the Parser interface.  Observe that this is only
// meaningful once the grammar containing this reference has been built.
func (p *Delay) Channels() channel.Set {
	return p.rules.channelsOf(p.name)
}

func (p *Delay) String() string {
	return p.name
}

func (p *Delay) node() {}

func (p *Delay) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	return Apply(p.rules.resolve(p.name), input, requested, leftward)
}
