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
package affix

import (
	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/parser"
)

// Affix describes a single affix of a grammar as data: its surface form, its
// gloss, an optional natural-language pattern (e.g. "/the .*/") and a cost.
type Affix struct {
	Form    string
	Gloss   string
	Natural string
	Cost    int
}

// New constructs an affix.
func New(form string, gloss string, natural string, cost int) Affix {
	return Affix{form, gloss, natural, cost}
}

// Parser constructs the parser for a single affix.  The form is written to the
// affix channels, the gloss and natural pattern to the gloss and natural
// channels.
func (a Affix) Parser(b *parser.Builder) parser.Parser {
	parsers := []parser.Parser{b.Aff(a.Form)}
	//
	if a.Gloss != "" {
		parsers = append(parsers, b.Lit(a.Gloss, channel.Gloss))
	}
	//
	if a.Natural != "" {
		parsers = append(parsers, b.Lit(a.Natural, channel.Natural))
	}
	//
	if a.Cost > 0 {
		parsers = append(parsers, b.Cost(a.Cost))
	}
	//
	return parser.Seq(parsers...)
}

// Optional constructs a choice between the affixes of a table, or none of them.
func Optional(b *parser.Builder, table []Affix) parser.Parser {
	return parser.Or(append(parsers(b, table), parser.Null())...)
}

// Required constructs a choice between the affixes of a table.
func Required(b *parser.Builder, table []Affix) parser.Parser {
	return parser.Or(parsers(b, table)...)
}

func parsers(b *parser.Builder, table []Affix) []parser.Parser {
	ps := make([]parser.Parser, len(table))
	//
	for i, a := range table {
		ps[i] = a.Parser(b)
	}
	//
	return ps
}
