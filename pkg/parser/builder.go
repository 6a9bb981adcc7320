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
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/segment"
	"github.com/consensys/go-morpar/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// Builder constructs the parsers of a grammar.  A builder carries the channel
// configuration of the grammar being constructed, which determines the channels
// used by constructors not given explicit channels.  Builders also hold the named
// rules of a grammar, such that rules can refer to each other (or themselves)
// before they are defined.
type Builder struct {
	config channel.Config
	rules  *arena
	// Memoize determines whether defined rules are wrapped in memo tables.
	Memoize bool
	// Costs determines the costs assigned by lookups.
	Costs CostModel
	// CacheSize determines the capacity of each lookup's candidate cache.
	CacheSize int
}

// NewBuilder constructs a builder for a given channel configuration.
func NewBuilder(config channel.Config) *Builder {
	return &Builder{config, newArena(), false, DefaultCostModel(), DefaultCacheSize}
}

// Config returns the channel configuration of this builder.
func (b *Builder) Config() channel.Config {
	return b.config
}

// Lit constructs a literal (or a pattern, if text is enclosed in slashes) over
// the given channels, or the text channel if none are given.  A literal over
// several channels is a sequence of literals, one per channel.
func (b *Builder) Lit(text string, channels ...channel.Channel) Parser {
	channels = b.orText(channels)
	//
	if segment.New(text, "").IsPattern() {
		return b.Pattern(text, channels...)
	}
	//
	parsers := make([]Parser, len(channels))
	//
	for i, c := range channels {
		parsers[i] = NewLiteral(text, c)
	}
	//
	return Seq(parsers...)
}

// Aff constructs an affix, which is a literal over the affix channels.
func (b *Builder) Aff(text string) Parser {
	return b.Lit(text, b.config.Aff.Members()...)
}

// Pattern constructs a pattern over the given channels, or the text channel if
// none are given.
func (b *Builder) Pattern(pattern string, channels ...channel.Channel) Parser {
	channels = b.orText(channels)
	parsers := make([]Parser, len(channels))
	//
	for i, c := range channels {
		parsers[i] = NewPattern(pattern, c)
	}
	//
	return Seq(parsers...)
}

// Cost constructs a literal which adds a given cost to an analysis.
func (b *Builder) Cost(n int) Parser {
	if n <= 0 {
		return Null()
	}
	//
	return b.Lit(strings.Repeat("X", n), b.config.Cost)
}

// Guess constructs a stem guesser writing to the given channels, or to the stem
// channels if none are given.
func (b *Builder) Guess(channels ...channel.Channel) Parser {
	if len(channels) == 0 {
		return NewGuess(b.config.Lem)
	}
	//
	return NewGuess(channel.Of(channels...))
}

// Rap constructs a root-and-pattern stem: the text must match the pattern, and
// the material captured by its wildcards is the (guessed) root.
func (b *Builder) Rap(pattern string) Parser {
	return Rightward(Trim(b.Guess(), b.config.Text), b.Pattern(pattern, b.config.Text))
}

// Lookup constructs a dictionary-backed stem, which writes the stem to the stem
// channels, and definitions to the given output channels.
func (b *Builder) Lookup(dictionary Dictionary, frequency FrequencyModel, outputs ...channel.Channel) Parser {
	return NewLookup(dictionary, frequency, b.config.Lem, channel.Of(outputs...), b.config.Cost, b.Costs,
		b.CacheSize)
}

// LookupInto constructs a dictionary-backed stem which writes the stem to a
// given set of channels, rather than the stem channels.
func (b *Builder) LookupInto(dictionary Dictionary, frequency FrequencyModel, stems channel.Set,
	outputs ...channel.Channel) Parser {
	return NewLookup(dictionary, frequency, stems, channel.Of(outputs...), b.config.Cost, b.Costs, b.CacheSize)
}

// After asserts that a channel (by default the text channel) ends with some
// text.
func (b *Builder) After(text string, channels ...channel.Channel) Parser {
	return b.assert(channels, func(c channel.Channel) Parser { return NewAfter(text, c) })
}

// Before asserts that a channel (by default the text channel) starts with some
// text.
func (b *Builder) Before(text string, channels ...channel.Channel) Parser {
	return b.assert(channels, func(c channel.Channel) Parser { return NewBefore(text, c) })
}

// Assert asserts an arbitrary predicate of a channel (by default the text
// channel).
func (b *Builder) Assert(name string, predicate Predicate, channels ...channel.Channel) Parser {
	return b.assert(channels, func(c channel.Channel) Parser { return NewAssertion(name, predicate, c) })
}

// Truncate constructs a parser which restores text deleted from the surface of
// a word, on the given channels (or the text channel).
func (b *Builder) Truncate(text string, channels ...channel.Channel) Parser {
	channels = b.orText(channels)
	parsers := make([]Parser, len(channels))
	//
	for i, c := range channels {
		parsers[i] = NewTruncate(text, c)
	}
	//
	return Seq(parsers...)
}

// Mutate constructs a parser for an underlying form which surfaces differently,
// e.g. where two morphemes fuse.  The surface form is consumed and the
// underlying form restored in its place.
func (b *Builder) Mutate(underlying string, surface string, channels ...channel.Channel) Parser {
	return Seq(b.Lit(surface, channels...), b.Truncate(underlying, channels...))
}

// Define a named rule.  The rule is returned, wrapped in a memo table if
// memoization is enabled.
func (b *Builder) Define(name string, p Parser) Parser {
	if b.Memoize {
		p = Memoize(p)
	}
	//
	if b.rules.define(name, p) {
		log.Debugf("rule %s redefined", name)
	}
	//
	return p
}

// Ref refers to a named rule, which need not be defined yet.
func (b *Builder) Ref(name string) Parser {
	b.rules.refer(name)
	//
	return &Delay{name, b.rules}
}

// Build a grammar with a given root.  This fails if any rule referred to has not
// been defined.
func (b *Builder) Build(root Parser) (*Grammar, error) {
	if missing := b.rules.undefined(); len(missing) != 0 {
		return nil, fmt.Errorf("undefined rules: %s", strings.Join(missing, ", "))
	} else if root == nil {
		return nil, errors.New("missing root")
	}
	//
	b.rules.resolveChannels()
	log.Debugf("built grammar with %d rules over %s", len(b.rules.rules), root.Channels())
	//
	return &Grammar{root, b.config}, nil
}

func (b *Builder) orText(channels []channel.Channel) []channel.Channel {
	if len(channels) == 0 {
		return []channel.Channel{b.config.Text}
	}
	//
	return channels
}

func (b *Builder) assert(channels []channel.Channel, fn func(channel.Channel) Parser) Parser {
	channels = b.orText(channels)
	parsers := make([]Parser, len(channels))
	//
	for i, c := range channels {
		parsers[i] = fn(c)
	}
	//
	return Seq(parsers...)
}

// ============================================================================
// Combinators
// ============================================================================

// Seq sequences parsers, following the direction of the enclosing parser.  With
// more than two parsers, the sequence associates to the left.
func Seq(parsers ...Parser) Parser {
	return fold(parsers, func(l, r Parser) Parser { return &Sequence{l, r, Ambient} })
}

// Leftward sequences parsers, always applying the left before the right.
func Leftward(parsers ...Parser) Parser {
	return fold(parsers, func(l, r Parser) Parser { return &Sequence{l, r, Leftwards} })
}

// Rightward sequences parsers, always applying the right before the left.
func Rightward(parsers ...Parser) Parser {
	return fold(parsers, func(l, r Parser) Parser { return &Sequence{l, r, Rightwards} })
}

// Or constructs a choice between parsers.
func Or(parsers ...Parser) Parser {
	return fold(parsers, func(l, r Parser) Parser { return &Choice{l, r} })
}

// Not constructs the negation of a parser.
func Not(p Parser) Parser {
	return &Negation{p}
}

// Trim removes the given channels from the outputs of a parser.
func Trim(p Parser, channels ...channel.Channel) Parser {
	return &Trimmer{p, channel.Of(channels...)}
}

// Memoize wraps a parser in a memo table.
func Memoize(p Parser) Parser {
	if m, ok := p.(*Memo); ok {
		return m
	}
	//
	return &Memo{child: p, table: hash.NewMap[memoKey, *Results](0)}
}

// Null returns the parser which always succeeds, consuming nothing.
func Null() Parser {
	return null
}

func fold(parsers []Parser, fn func(Parser, Parser) Parser) Parser {
	if len(parsers) == 0 {
		return Null()
	}
	//
	p := parsers[0]
	//
	for _, q := range parsers[1:] {
		p = fn(p, q)
	}
	//
	return p
}

// ============================================================================
// Arena
// ============================================================================

// arena holds the named rules of a grammar.
type arena struct {
	rules map[string]Parser
	// referenced records every name referred to, in order.
	referenced []string
	// channels of each rule, determined when the grammar is built.
	channels map[string]channel.Set
}

func newArena() *arena {
	return &arena{make(map[string]Parser), nil, make(map[string]channel.Set)}
}

// define a rule, returning true if it was already defined.
func (a *arena) define(name string, p Parser) bool {
	_, ok := a.rules[name]
	a.rules[name] = p
	//
	return ok
}

func (a *arena) refer(name string) {
	if !slices.Contains(a.referenced, name) {
		a.referenced = append(a.referenced, name)
	}
}

func (a *arena) undefined() []string {
	var missing []string
	//
	for _, name := range a.referenced {
		if _, ok := a.rules[name]; !ok {
			missing = append(missing, name)
		}
	}
	//
	return missing
}

func (a *arena) resolve(name string) Parser {
	if p, ok := a.rules[name]; ok {
		return p
	}
	//
	panic(fmt.Sprintf("undefined rule %s", name))
}

func (a *arena) channelsOf(name string) channel.Set {
	return a.channels[name]
}

// resolveChannels determines the channels of every rule.  Since rules may be
// recursive, this iterates until a fixed point is reached, with references to
// rules not yet resolved contributing no channels.
func (a *arena) resolveChannels() {
	for changed := true; changed; {
		changed = false
		//
		for name, p := range a.rules {
			channels := p.Channels()
			//
			if !channels.Equals(a.channels[name]) {
				a.channels[name] = channels
				changed = true
			}
		}
	}
}
