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
	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/util/collection/hash"
)

// Grammar is a built parser, together with the channel configuration it was
// built against.  Grammars are immutable, and can be used to parse words
// concurrently.
type Grammar struct {
	root   Parser
	config channel.Config
}

// Root returns the root parser of this grammar.
func (g *Grammar) Root() Parser {
	return g.root
}

// Config returns the channel configuration of this grammar.
func (g *Grammar) Config() channel.Config {
	return g.config
}

// Apply the root parser of this grammar to a given input.
func (g *Grammar) Apply(input record.Record, requested channel.Set, leftward bool) *Results {
	return Apply(g.root, input, requested, leftward)
}

// ParseWhole parses a word, returning the output of every analysis which
// consumes it entirely.  The word is written to each of the given channels (or
// the text channel, if none are given), and an analysis succeeds only if its
// remnant on all of these channels is empty.  Partial analyses are discarded.
func (g *Grammar) ParseWhole(text string, channels ...channel.Channel) []record.Record {
	if len(channels) == 0 {
		channels = []channel.Channel{g.config.Text}
	}
	//
	var (
		requested = channel.Of(channels...)
		input     = record.Of(text, requested)
		outputs   = hash.NewSet[record.Record](0)
	)
	//
	for _, r := range g.Apply(input, requested, false).Items() {
		if consumed(r.Remnant, requested) {
			outputs.Insert(r.Output)
		}
	}
	//
	return outputs.Items()
}

// consumed checks whether every requested channel of a remnant is empty.
func consumed(remnant record.Record, requested channel.Set) bool {
	for _, c := range requested.Members() {
		if v, ok := remnant.Get(c.Name()); ok && !v.IsEmpty() {
			return false
		}
	}
	//
	return true
}
