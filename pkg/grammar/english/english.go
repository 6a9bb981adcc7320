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
package english

import (
	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/grammar/affix"
	"github.com/consensys/go-morpar/pkg/parser"
)

// Config returns the channels of the English grammar.  Stems are also written
// to the natural channel, so that natural-language patterns can be filled even
// without a dictionary.
func Config() channel.Config {
	return channel.Config{
		Text: channel.Text,
		Lem:  channel.Of(channel.Text, channel.Breakdown, channel.Gloss, channel.Lemma, channel.Natural),
		Aff:  channel.Of(channel.Text, channel.Breakdown),
		Cost: channel.Cost,
	}
}

// Prefixes which may precede a stem.
var Prefixes = []affix.Affix{
	affix.New("un", "NEG", "/not .*/", 0),
	affix.New("re", "again", "/.* again/", 0),
}

// Nominal and verbal suffixes which need no conditioning.
var Suffixes = []affix.Affix{
	affix.New("s", "PL", "", 0),
	affix.New("er", "AGT", "/one who .*s/", 1),
	affix.New("ly", "ADV", "", 1),
}

// Root constructs the English grammar.  Stems are looked up in the dictionary
// when there is one, and guessed otherwise.  The past tense suffix surfaces as
// "d" after a stem-final e, and "ed" elsewhere; before "ing" a stem-final e is
// deleted.
func Root(b *parser.Builder, dictionary parser.Dictionary, frequency parser.FrequencyModel) parser.Parser {
	var stem parser.Parser
	//
	if dictionary != nil {
		stem = b.Lookup(dictionary, frequency, channel.Definition, channel.Natural)
	} else {
		stem = b.Guess()
	}
	//
	b.Define("STEM", stem)
	b.Define("PAST", parser.Seq(
		parser.Or(
			parser.Rightward(b.After("e"), b.Aff("d")),
			parser.Rightward(parser.Not(b.After("e")), b.Aff("ed"))),
		b.Lit("PAST", channel.Gloss),
		b.Lit("/did .*/", channel.Natural)))
	b.Define("PROG", parser.Seq(
		parser.Or(
			parser.Rightward(b.Truncate("e"), b.Aff("ing"), b.Cost(1)),
			b.Aff("ing")),
		b.Lit("PROG", channel.Gloss)))
	b.Define("SUFFIX", parser.Or(b.Ref("PAST"), b.Ref("PROG"), affix.Optional(b, Suffixes)))
	b.Define("PREFIX", affix.Optional(b, Prefixes))
	//
	return parser.Leftward(b.Ref("PREFIX"), parser.Rightward(b.Ref("STEM"), b.Ref("SUFFIX")))
}
