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
package analyzer

import (
	"strings"
	"testing"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/lexicon"
	"github.com/consensys/go-morpar/pkg/parser"
	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_Analyzer_01(t *testing.T) {
	a := New(testGrammar())
	analyses := a.Analyze("cats")
	// Cheapest first
	assert.Equal(t, 2, len(analyses))
	assert.Equal(t, 1, analyses[0].Cost)
	assert.Equal(t, 5, analyses[1].Cost)
	assert.False(t, analyses[0].Degenerate)
	assert.Equal(t, []string{"cat-s", "cats"}, a.Parse("cats", "breakdown"))
	assert.Equal(t, "cat", a.Best("cats", "lemma"))
}

func Test_Analyzer_02(t *testing.T) {
	a := New(testGrammar())
	analyses := a.Analyze("dog")
	// Unparseable words receive a degenerate analysis
	assert.Equal(t, 1, len(analyses))
	assert.True(t, analyses[0].Degenerate)
	assert.Equal(t, 0, analyses[0].Cost)
	assert.Equal(t, []string{"dog"}, a.Parse("dog", "lemma"))
	assert.Equal(t, "dog", a.Best("dog", "gloss"))
}

func Test_Analyzer_03(t *testing.T) {
	a := New(testGrammar())
	// Channels left empty fall back to the working form
	assert.Equal(t, []string{"cats", "cats"}, a.Parse("cats", "natural"))
}

func Test_Analyzer_04(t *testing.T) {
	a := New(testGrammar())
	a.Transliterator = lowercase{}
	a.Preparsed = lexicon.NewPreparsed()
	a.Preparsed.Add("cats", lexicon.Analysis{Breakdown: "ca ts", Lemma: "cat", Gloss: "cat-PL"})
	// Prepared analyses take priority, and are keyed by working form
	analyses := a.Analyze("CATS")
	assert.Equal(t, 1, len(analyses))
	assert.True(t, analyses[0].Preparsed)
	assert.Equal(t, "cats", a.Best("CATS", "breakdown"))
	assert.Equal(t, "cat-PL", a.Best("CATS", "gloss"))
	assert.Equal(t, "cats", a.Best("CATS", "natural"))
	// Other words are parsed as normal
	analyses = a.Analyze("CAT")
	assert.False(t, analyses[0].Preparsed)
	assert.True(t, analyses[0].Degenerate)
}

func Test_Analyzer_05(t *testing.T) {
	a := New(testGrammar())
	a.Squash = nil
	a.Preparsed = lexicon.NewPreparsed()
	a.Preparsed.Add("cats", lexicon.Analysis{Breakdown: "ca ts"})
	//
	assert.Equal(t, "ca ts", a.Best("cats", "breakdown"))
}

func Test_Analyzer_06(t *testing.T) {
	b := parser.NewBuilder(channel.DefaultConfig())
	// The same channel written with different delimiters
	root := parser.Seq(b.Lit("cat"), b.Lit("x", channel.Gloss), b.Lit("y", channel.Spaced("gloss")))
	g, err := b.Build(root)
	assert.True(t, err == nil)
	//
	analyses := New(g).Analyze("cat")
	assert.Equal(t, 1, len(analyses))
	assert.True(t, analyses[0].Conflicted)
	assert.False(t, analyses[0].Degenerate)
}

// ===================================================================
// Test Helpers
// ===================================================================

// lowercase converts words to lowercase, and removes spaces.
type lowercase struct{}

func (lowercase) Transliterate(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), " ", "")
}

func testGrammar() *parser.Grammar {
	b := parser.NewBuilder(channel.DefaultConfig())
	stem := func(text string) parser.Parser {
		return b.Lit(text, channel.Text, channel.Breakdown, channel.Lemma)
	}
	//
	root := parser.Or(
		parser.Seq(stem("cats"), b.Cost(5)),
		parser.Rightward(parser.Seq(stem("cat"), b.Cost(1)), b.Aff("s")))
	//
	g, err := b.Build(root)
	if err != nil {
		panic(err.Error())
	}
	//
	return g
}
