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
package amh

import (
	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/grammar/affix"
	"github.com/consensys/go-morpar/pkg/parser"
)

// Text is the working representation of Amharic words: space-separated phones.
var Text = channel.Spaced("text")

// Config returns the channels of the Amharic grammar.  Stems are written to
// every channel, since the definition and natural channels of a stem are only
// replaced when the stem is found in the dictionary.
func Config() channel.Config {
	return channel.Config{
		Text: Text,
		Lem:  channel.Of(Text, channel.Breakdown, channel.Gloss, channel.Lemma, channel.Definition, channel.Natural),
		Aff:  channel.Of(Text, channel.Breakdown),
		Cost: channel.Cost,
	}
}

// Enclitics attach to the end of a whole phonological word.
var Enclitics = []affix.Affix{
	affix.New("a", "DISC", "", 2),
	affix.New("m", "neither", "/neither .*/", 33),
	affix.New("ɨ m", "neither", "/neither .*/", 0),
	affix.New("ɨ m a", "as_for", "/as for .*/", 0),
	affix.New("m a", "as_for", "/as for .*/", 1),
	affix.New("ɨ s", "as_for", "/as for .*/", 0),
	affix.New("s", "as_for", "/as for .*/", 1),
	affix.New("ɨ n a", "because", "/because .*/", 0),
	affix.New("n a", "because", "/because .*/", 0),
}

// Prepositions are prefixed to nouns.
var Prepositions = []affix.Affix{
	affix.New("b ə", "by", "/by .*/", 0),
	affix.New("ə", "at", "/at .*/", 33),
	affix.New("l ə", "for", "/for .*/", 0),
	affix.New("k ə", "from", "/from .*/", 0),
	affix.New("t ə", "from", "/from .*/", 0),
	affix.New("j ə", "of", "/of .*/", 0),
}

// Number suffixes.
var Number = []affix.Affix{
	affix.New("o t͡ʃ", "PL", "/multiple .*/", 0),
	affix.New("w o t͡ʃ", "PL", "/multiple .*/", 0),
	affix.New("j o t͡ʃ", "PL", "/multiple .*/", 0),
}

// Definiteness suffixes.
var Definiteness = []affix.Affix{
	affix.New("w a", "DEF.F", "/the .*/", 0),
	affix.New("i t u", "DEF.FEM", "/the .*/", 0),
	affix.New("u", "DEF", "/the .*/", 1),
	affix.New("w ɨ", "DEF.MASC", "/the .*/", 0),
	affix.New("w", "DEF.PL", "/the multiple .*/", 1),
}

// Possessive suffixes.
var Possessives = []affix.Affix{
	affix.New("e", "1SG.POSS", "/my .*/", 2),
	affix.New("h", "2SG.MASC.POSS", "/your .*/", 2),
	affix.New("ɨ h", "2SG.MASC.POSS", "/your .*/", 0),
	affix.New("ɨ ʃ", "2SG.FEM.POSS", "/your .*/", 0),
	affix.New("u", "3SG.MASC.POSS", "/his .*/", 2),
	affix.New("ʷ a", "3SG.FEM.POSS", "/her .*/", 0),
	affix.New("a t͡ʃ ɨ n", "1PL.POSS", "/our .*/", 0),
	affix.New("a t͡ʃ ɨ h u", "2PL.POSS", "/your .*/", 0),
	affix.New("a t͡ʃ ə w ɨ", "3PL.POSS", "/their .*/", 0),
	affix.New("w o", "2.POL.POSS", "/your .*/", 0),
	affix.New("a t͡ʃ ə w ɨ", "3.POL.POSS", "/their .*/", 0),
}

// Case suffixes.
var Case = []affix.Affix{
	affix.New("n", "ACC", "", 0),
	affix.New("n ɨ", "ACC", "", 0),
	affix.New("ɨ n", "ACC", "", 0),
	affix.New("ɨ n ɨ", "ACC", "", 0),
}

// Root constructs the Amharic grammar.  Nominal stems are looked up in the
// dictionary, followed by suffixes for number, definiteness, possession and
// case, then an enclitic; a preposition may precede the whole.
func Root(b *parser.Builder, dictionary parser.Dictionary, frequency parser.FrequencyModel) parser.Parser {
	stem := b.Define("STEM", b.Lookup(dictionary, frequency, channel.Definition, channel.Natural))
	word := b.Define("WORD", parser.Rightward(stem,
		affix.Optional(b, Number),
		affix.Optional(b, Definiteness),
		affix.Optional(b, Possessives),
		affix.Optional(b, Case)))
	phonword := b.Define("PHONWORD", parser.Rightward(word, affix.Optional(b, Enclitics)))
	//
	return parser.Leftward(affix.Optional(b, Prepositions), phonword)
}
