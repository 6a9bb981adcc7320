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
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/segment"
)

// ============================================================================
// Literal
// ============================================================================

// Literal matches a fixed affix on a single channel.  When its channel is
// consumed, the affix is stripped from the matching edge of the input (the start
// when leftward, the end otherwise).  Otherwise, the literal generates its affix
// as output.
type Literal struct {
	channel channel.Channel
	affix   segment.Value
}

// NewLiteral constructs a literal over a single channel.
func NewLiteral(text string, ch channel.Channel) *Literal {
	return &Literal{ch, segment.New(text, ch.Delimiter())}
}

// Channels implementation for the Parser interface.
func (p *Literal) Channels() channel.Set {
	return p.channel.Set()
}

// Affix returns the affix matched (or generated) by this literal.
func (p *Literal) Affix() segment.Value {
	return p.affix
}

func (p *Literal) String() string {
	return fmt.Sprintf("%s(%q)", p.channel.Name(), p.affix.Text())
}

func (p *Literal) node() {}

func (p *Literal) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	if !requested.Contains(p.channel) {
		return trivial(record.Empty().With(p.channel.Name(), p.affix), input)
	}
	//
	results := NewResults()
	text, ok := input.Get(p.channel.Name())
	//
	switch {
	case !ok:
		return results
	case leftward && text.HasPrefix(p.affix):
		results.Insert(Result{record.Empty(), input.With(p.channel.Name(), text.StripPrefix(p.affix))})
	case !leftward && text.HasSuffix(p.affix):
		results.Insert(Result{record.Empty(), input.With(p.channel.Name(), text.StripSuffix(p.affix))})
	}
	//
	return results
}

// ============================================================================
// Pattern
// ============================================================================

// Pattern generalises a literal with wildcards.  When its channel is consumed,
// the whole input must match the pattern, and the remnant becomes the material
// captured by the wildcards.  Otherwise, the pattern generates itself as output,
// to be filled in once the material it stands for is known.
type Pattern struct {
	channel  channel.Channel
	template *segment.Template
}

// NewPattern constructs a pattern over a single channel.  The enclosing slashes
// of the pattern are optional.
func NewPattern(pattern string, ch channel.Channel) *Pattern {
	body := segment.New(pattern, ch.Delimiter()).Body()
	//
	return &Pattern{ch, segment.Compile(body, ch.Delimiter())}
}

// Channels implementation for the Parser interface.
func (p *Pattern) Channels() channel.Set {
	return p.channel.Set()
}

func (p *Pattern) String() string {
	return fmt.Sprintf("%s(%q)", p.channel.Name(), p.template.String())
}

func (p *Pattern) node() {}

func (p *Pattern) apply(input record.Record, requested channel.Set) *Results {
	if !requested.Contains(p.channel) {
		output := segment.New(p.template.String(), p.channel.Delimiter())
		return trivial(record.Empty().With(p.channel.Name(), output), input)
	}
	//
	results := NewResults()
	//
	if text, ok := input.Get(p.channel.Name()); ok {
		if groups, ok := p.template.Match(text.Text()); ok {
			remnant := segment.New(strings.Join(groups, p.channel.Delimiter()), p.channel.Delimiter())
			results.Insert(Result{record.Empty(), input.With(p.channel.Name(), remnant)})
		}
	}
	//
	return results
}

// ============================================================================
// Guess
// ============================================================================

// Guess enumerates every possible stem at the matching edge of the input.  For
// each split point, the stem is written to all of the guess's channels (other
// than the one being consumed) and the rest of the input becomes the remnant.
// No attempt is made to filter implausible stems.
type Guess struct {
	channels channel.Set
}

// NewGuess constructs a guess which writes stems to the given channels.
func NewGuess(channels channel.Set) *Guess {
	return &Guess{channels}
}

// Channels implementation for the Parser interface.
func (p *Guess) Channels() channel.Set {
	return p.channels
}

func (p *Guess) String() string {
	return fmt.Sprintf("Guess(%s)", p.channels)
}

func (p *Guess) node() {}

func (p *Guess) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	key, ok := keyChannel(requested, p.channels)
	if !ok {
		return trivial(record.Empty(), input)
	}
	//
	results := NewResults()
	//
	text, ok := input.Get(key.Name())
	if !ok {
		return results
	}
	//
	for _, split := range splits(text.Text()) {
		var stem segment.Value
		//
		if leftward {
			stem = segment.New(text.Text()[:split.end], key.Delimiter())
		} else {
			stem = segment.New(text.Text()[split.start:], key.Delimiter())
		}
		// Stems must respect delimiter boundaries
		var remnant segment.Value
		//
		if leftward && text.HasPrefix(stem) {
			remnant = text.StripPrefix(stem)
		} else if !leftward && text.HasSuffix(stem) {
			remnant = text.StripSuffix(stem)
		} else {
			continue
		}
		//
		output := record.Empty()
		//
		for _, c := range p.channels.Members() {
			if !c.Equals(key) {
				output = output.With(c.Name(), segment.New(stem.Text(), c.Delimiter()))
			}
		}
		//
		results.Insert(Result{output, input.With(key.Name(), remnant)})
	}
	//
	return results
}

// span identifies the byte range of a single rune.
type span struct {
	start int
	end   int
}

// splits returns the byte span of every rune in a string.  An invalid byte
// forms a span of its own.
func splits(text string) []span {
	spans := make([]span, 0, utf8.RuneCountInString(text))
	//
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		spans = append(spans, span{i, i + size})
		i += size
	}
	//
	return spans
}

// ============================================================================
// Truncate
// ============================================================================

// Truncate accounts for material which is present in the underlying form of a
// word, but deleted from its surface.  When its channel is consumed, the deleted
// material is restored to the remnant (at the start when leftward, the end
// otherwise) so that subsequent parsers see the underlying form.
type Truncate struct {
	channel channel.Channel
	deleted segment.Value
}

// NewTruncate constructs a truncation of some text on a given channel.
func NewTruncate(text string, ch channel.Channel) *Truncate {
	return &Truncate{ch, segment.New(text, ch.Delimiter())}
}

// Channels implementation for the Parser interface.
func (p *Truncate) Channels() channel.Set {
	return p.channel.Set()
}

func (p *Truncate) String() string {
	return fmt.Sprintf("Truncate(%q,%s)", p.deleted.Text(), p.channel.Name())
}

func (p *Truncate) node() {}

func (p *Truncate) apply(input record.Record, requested channel.Set, leftward bool) *Results {
	if !requested.Contains(p.channel) {
		return trivial(record.Empty(), input)
	}
	//
	text, ok := input.Get(p.channel.Name())
	if !ok {
		text = segment.Empty(p.channel.Delimiter())
	}
	//
	if leftward {
		text = text.Prepend(p.deleted)
	} else {
		text = text.Append(p.deleted)
	}
	//
	return trivial(record.Empty(), input.With(p.channel.Name(), text))
}

// ============================================================================
// Assertion
// ============================================================================

// Predicate is a test applied to the current value of a channel.
type Predicate func(segment.Value) bool

// Assertion checks a predicate against the current value of a channel, without
// consuming anything.  An assertion over a channel which is absent from the
// input, or not being consumed, holds vacuously.
type Assertion struct {
	name      string
	channel   channel.Channel
	predicate Predicate
}

// NewAssertion constructs an assertion with a given name (used only for
// display) over a given channel.
func NewAssertion(name string, predicate Predicate, ch channel.Channel) *Assertion {
	return &Assertion{name, ch, predicate}
}

// NewAfter constructs an assertion that the channel's value ends with a given
// string (ignoring trailing delimiters).
func NewAfter(text string, ch channel.Channel) *Assertion {
	return NewAssertion(fmt.Sprintf("After(%q)", text), func(v segment.Value) bool {
		return v.EndsWith(text)
	}, ch)
}

// NewBefore constructs an assertion that the channel's value starts with a given
// string (ignoring leading delimiters).
func NewBefore(text string, ch channel.Channel) *Assertion {
	return NewAssertion(fmt.Sprintf("Before(%q)", text), func(v segment.Value) bool {
		return v.StartsWith(text)
	}, ch)
}

// Channels implementation for the Parser interface.
func (p *Assertion) Channels() channel.Set {
	return p.channel.Set()
}

func (p *Assertion) String() string {
	return p.name
}

func (p *Assertion) node() {}

func (p *Assertion) apply(input record.Record, requested channel.Set) *Results {
	text, ok := input.Get(p.channel.Name())
	//
	if !ok || !requested.Contains(p.channel) || p.predicate(text) {
		return trivial(record.Empty(), input)
	}
	//
	return NewResults()
}

// ============================================================================
// Null
// ============================================================================

// NullParser is the parser which always succeeds, consuming and producing nothing.
// It is typically used as the final alternative of an optional affix.
type NullParser struct{}

var null = &NullParser{}

// Channels implementation for the Parser interface.
func (p *NullParser) Channels() channel.Set {
	return channel.Of()
}

func (p *NullParser) String() string {
	return "NULL"
}

func (p *NullParser) node() {}
