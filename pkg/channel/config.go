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
package channel

// Config describes the channels a grammar is written against.  Each grammar
// builds its own configuration and hands it to the parser builder, which uses it
// to fill in the channels of combinators constructed without explicit ones.
type Config struct {
	// Text is the working representation of the input, and the channel which
	// whole-word parsing consumes by default.
	Text Channel
	// Lem lists the channels which a stem (guessed or looked up) is written to.
	Lem Set
	// Aff lists the channels an affix is written to.
	Aff Set
	// Cost is the concatenative channel whose length ranks analyses.
	Cost Channel
}

// Standard channels used by the bundled grammars.
var (
	// Text is the default concatenative working representation.
	Text = Concatenated("text")
	// Breakdown shows the morphemes of a word separated by hyphens.
	Breakdown = Hyphenated("breakdown")
	// Lemma is the citation form of a word's stem.
	Lemma = Hyphenated("lemma")
	// Gloss is the interlinear gloss of a word.
	Gloss = Hyphenated("gloss")
	// Citation is an alternative citation form.
	Citation = Hyphenated("citation")
	// Definition holds dictionary definitions of a stem.
	Definition = Spaced("definition")
	// Natural is a free-text translation.
	Natural = Spaced("natural")
	// Cost holds the ranking penalty of an analysis.
	Cost = Concatenated("cost")
)

// DefaultConfig returns the configuration used when a grammar has no special
// requirements: a concatenative text channel, stems written to text, breakdown,
// gloss and lemma, and affixes written to text and breakdown.
func DefaultConfig() Config {
	return NewConfig(Text)
}

// NewConfig builds the standard configuration around a given text channel.
func NewConfig(text Channel) Config {
	return Config{
		Text: text,
		Lem:  Of(text, Breakdown, Gloss, Lemma),
		Aff:  Of(text, Breakdown),
		Cost: Cost,
	}
}
