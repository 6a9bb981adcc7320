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
	"slices"
	"testing"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/util/assert"
)

// ===================================================================
// Scenarios
// ===================================================================

func Test_Suffix_01(t *testing.T) {
	check_Parse(t, pastTense(), "jumped", "breakdown", "jump-ed")
}

func Test_Suffix_02(t *testing.T) {
	check_Parse(t, pastTense(), "mined", "breakdown", "mine-d")
}

func Test_Suffix_03(t *testing.T) {
	check_Parse(t, pastTense(), "jumpd", "breakdown")
}

func Test_Suffix_04(t *testing.T) {
	check_Parse(t, pastTense(), "mineed", "breakdown")
}

func Test_Suffix_05(t *testing.T) {
	check_Parse(t, pastTense(), "jump", "lemma")
	check_Parse(t, pastTense(), "jumped", "lemma", "jump")
}

func Test_Template_01(t *testing.T) {
	g := rootAndPattern()
	// The text channel is concatenated, so the captured root renders as "ktb"
	check_Parse(t, g, "katabs", "breakdown", "ktb-s")
	check_Parse(t, g, "katabs", "gloss", "ktb-V-3SG-PRES")
	check_Parse(t, g, "katabs", "lemma", "ktb")
}

func Test_Template_02(t *testing.T) {
	g := rootAndPattern()
	// Nouns use the template .i.a., since kitab does not fit .a.a.
	check_Parse(t, g, "kitabs", "breakdown", "ktb-s")
	check_Parse(t, g, "kitabs", "gloss", "ktb-N-PLURAL")
}

func Test_Template_03(t *testing.T) {
	g := rootAndPattern()
	check_Parse(t, g, "katab", "gloss", "ktb-V")
	check_Parse(t, g, "katabing", "gloss", "ktb-V-PROG")
	check_Parse(t, g, "kitab", "gloss", "ktb-N")
	check_Parse(t, g, "kutab", "gloss")
}

func Test_Guess_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	g := build(t, b, Rightward(b.Guess(), b.Aff("s")))
	// Only the whole-word guess survives
	check_Parse(t, g, "cats", "lemma", "cat")
	check_Parse(t, g, "cats", "breakdown", "cat-s")
	check_Parse(t, g, "cat", "lemma")
}

func Test_Guess_02(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	g := build(t, b, Rightward(b.Guess(), b.Aff("s")))
	text := channel.Text.Set()
	// Every split point compatible with the suffix is enumerated
	results := g.Apply(record.Of("cats", text), text, false)
	check_Remnants(t, results, "", "c", "ca")
}

func Test_Guess_03(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	text := channel.Text.Set()
	// Leftward guesses enumerate prefixes
	results := Apply(b.Guess(), record.Of("ɨmə", text), text, true)
	check_Remnants(t, results, "mə", "ə", "")
}

func Test_Guess_04(t *testing.T) {
	config := channel.NewConfig(channel.Spaced("text"))
	b := NewBuilder(config)
	text := config.Text.Set()
	// Stems respect delimiter boundaries
	results := Apply(b.Guess(), record.Of("k ə t", text), text, false)
	check_Remnants(t, results, "", "k", "k ə")
}

func Test_Guess_05(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	neg := Seq(b.Aff("un"), b.Lit("NEG", channel.Gloss))
	g := build(t, b, Leftward(neg, b.Guess()))
	// Invalid bytes are guessed one byte at a time
	check_Parse(t, g, "un\xffa", "lemma", "\xffa")
	check_Parse(t, g, "un\xff", "breakdown", "un-\xff")
	//
	text := channel.Text.Set()
	results := Apply(b.Guess(), record.Of("\xffa\xfe", text), text, true)
	check_Remnants(t, results, "a\xfe", "\xfe", "")
}

func Test_Prefix_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	neg := Seq(b.Aff("un"), b.Lit("NEG", channel.Gloss))
	g := build(t, b, Leftward(neg, b.Guess()))
	//
	check_Parse(t, g, "untie", "breakdown", "un-tie")
	check_Parse(t, g, "untie", "gloss", "NEG-tie")
	check_Parse(t, g, "tie", "breakdown")
}

func Test_Prefix_02(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	neg := Or(Seq(b.Aff("un"), b.Lit("NEG", channel.Gloss)), Null())
	plural := Or(Seq(b.Aff("s"), b.Lit("PL", channel.Gloss)), Null())
	stem := b.Lit("tie", channel.Text, channel.Breakdown, channel.Gloss)
	// Prefixes outside, suffixes inside
	g := build(t, b, Leftward(neg, Rightward(stem, plural)))
	//
	check_Parse(t, g, "unties", "breakdown", "un-tie-s")
	check_Parse(t, g, "unties", "gloss", "NEG-tie-PL")
	check_Parse(t, g, "ties", "gloss", "tie-PL")
}

func Test_Pattern_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	stem := b.Lit("jump", channel.Text, channel.Natural)
	past := Seq(b.Aff("ed"), b.Lit("/did .*/", channel.Natural))
	g := build(t, b, Rightward(stem, past))
	// The pattern is filled by the stem
	check_Parse(t, g, "jumped", "natural", "did jump")
}

func Test_Truncate_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	// Stem-final e is deleted before -ing
	g := build(t, b, Rightward(b.Guess(), b.Truncate("e"), b.Aff("ing")))
	//
	check_Parse(t, g, "making", "lemma", "make")
	check_Parse(t, g, "making", "breakdown", "make-ing")
}

func Test_Truncate_02(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	// A fused prefix surfaces as "d", but is underlyingly "de"
	g := build(t, b, Leftward(b.Mutate("de", "d"), b.Guess()))
	//
	check_Parse(t, g, "dog", "lemma", "deog")
	check_Parse(t, g, "og", "lemma")
}

func Test_Assertion_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	text := channel.Text.Set()
	input := record.Of("cat", text)
	//
	assert.Equal(t, uint(1), Apply(b.After("t"), input, text, false).Size())
	assert.Equal(t, uint(0), Apply(b.After("s"), input, text, false).Size())
	assert.Equal(t, uint(1), Apply(b.Before("ca"), input, text, false).Size())
	assert.Equal(t, uint(0), Apply(b.Before("at"), input, text, false).Size())
	// Absent or unrequested channels hold vacuously
	assert.Equal(t, uint(1), Apply(b.After("x", channel.Gloss), input, text, false).Size())
	assert.Equal(t, uint(1), Apply(b.After("x"), input, channel.Gloss.Set(), false).Size())
}

func Test_Trim_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	g := build(t, b, Rightward(Trim(b.Guess(), channel.Gloss), b.Aff("s")))
	outputs := g.ParseWhole("cats")
	//
	assert.Equal(t, 1, len(outputs))
	assert.False(t, outputs[0].Has("gloss"))
	assert.True(t, outputs[0].Has("lemma"))
}

func Test_Cost_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	stem := Seq(b.Lit("cat", channel.Text, channel.Breakdown), b.Cost(2))
	suffix := Seq(b.Aff("s"), b.Cost(3))
	g := build(t, b, Rightward(stem, suffix))
	outputs := g.ParseWhole("cats")
	// Costs of sequenced parsers add
	assert.Equal(t, 1, len(outputs))
	assert.Equal(t, 5, outputs[0].Cost(channel.Cost))
}

func Test_Recursion_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	b.Define("SUFFIXES", Or(Rightward(b.Ref("SUFFIXES"), b.Aff("s")), Null()))
	g := build(t, b, Rightward(b.Lit("cat", channel.Text, channel.Breakdown), b.Ref("SUFFIXES")))
	//
	check_Parse(t, g, "cat", "breakdown", "cat")
	check_Parse(t, g, "catss", "breakdown", "cat-s-s")
	check_Parse(t, g, "catsx", "breakdown")
}

func Test_Recursion_02(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	_, err := b.Build(Seq(b.Ref("STEM"), b.Aff("s")))
	//
	assert.True(t, err != nil)
	assert.Equal(t, "undefined rules: STEM", err.Error())
}

func Test_Recursion_03(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	b.Define("PLURAL", Or(Rightward(b.Ref("PLURAL"), b.Lit("PL", channel.Gloss)), Null()))
	build(t, b, b.Ref("PLURAL"))
	// Channels of recursive rules are resolved on build
	assert.True(t, b.Ref("PLURAL").Channels().Equals(channel.Gloss.Set()))
}

func Test_Memo_01(t *testing.T) {
	plain := pastTense()
	memoized := pastTenseWith(true)
	//
	for _, word := range []string{"jumped", "mined", "jumpd", "mineed", "jumped"} {
		assert.Equal(t, render(plain.ParseWhole(word), "breakdown"), render(memoized.ParseWhole(word), "breakdown"))
	}
	// Rules are wrapped in memo tables which are populated by parsing
	memo, ok := memoized.Root().(*Sequence).right.(*Memo)
	assert.True(t, ok)
	assert.True(t, memo.Size() > 0)
}

// ===================================================================
// Properties
// ===================================================================

func Test_Choice_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	x := Rightward(b.Guess(), b.Aff("s"))
	y := Rightward(b.Guess(), b.Aff("ts"))
	//
	for _, word := range []string{"cats", "hats", "s", "dog", ""} {
		check_Superset(t, Or(x, y), x, word)
		check_Superset(t, Or(x, y), y, word)
	}
}

func Test_Negation_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	parsers := []Parser{b.Aff("s"), b.After("e"), Rightward(b.Guess(), b.Aff("ed")), Null(), b.Pattern(".a.")}
	//
	for _, p := range parsers {
		for _, word := range []string{"cats", "mine", "jumped", "", "bat"} {
			check_Negation(t, p, word)
		}
	}
}

func Test_Whole_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	g := build(t, b, Rightward(b.Guess(), Or(b.Aff("s"), b.Aff("es"), Null())))
	//
	for _, word := range []string{"boxes", "cats", "sheep", "s"} {
		outputs := g.ParseWhole(word)
		assert.True(t, len(outputs) > 0)
		// Each analysis accounts for the whole word
		for _, out := range outputs {
			lemma, _ := out.Get("lemma")
			assert.True(t, len(lemma.Text()) > 0)
			assert.True(t, len(word)-len(lemma.Text()) <= 2)
		}
	}
}

func Test_Channels_01(t *testing.T) {
	b := NewBuilder(channel.DefaultConfig())
	p := Seq(b.Aff("s"), b.Lit("PL", channel.Gloss))
	//
	assert.Equal(t, []string{"text", "breakdown", "gloss"}, p.Channels().Names())
	assert.Equal(t, []string{"text"}, Trim(p, channel.Gloss, channel.Breakdown).Channels().Names())
	assert.True(t, Null().Channels().IsEmpty())
}

// ===================================================================
// Test Helpers
// ===================================================================

// A conditional past tense: "d" after e, otherwise "ed".
func pastTense() *Grammar {
	return pastTenseWith(false)
}

func pastTenseWith(memoize bool) *Grammar {
	b := NewBuilder(channel.DefaultConfig())
	b.Memoize = memoize
	//
	root := b.Define("ROOT", Or(
		b.Lit("jump", channel.Text, channel.Breakdown, channel.Lemma),
		b.Lit("mine", channel.Text, channel.Breakdown, channel.Lemma)))
	past := b.Define("PAST", Or(
		Rightward(b.After("e"), b.Aff("d")),
		Rightward(Not(b.After("e")), b.Aff("ed"))))
	//
	g, err := b.Build(Rightward(root, past))
	if err != nil {
		panic(err.Error())
	}
	//
	return g
}

// Triliteral roots inserted into vowel templates.
func rootAndPattern() *Grammar {
	b := NewBuilder(channel.DefaultConfig())
	gloss := func(text string) Parser { return b.Lit(text, channel.Gloss) }
	//
	verb := Seq(b.Rap(".a.a."), gloss("V"))
	noun := Seq(b.Rap(".i.a."), gloss("N"))
	verbal := Or(
		Seq(b.Aff("ed"), gloss("PAST")),
		Seq(b.Aff("ing"), gloss("PROG")),
		Seq(b.Aff("s"), gloss("3SG-PRES")),
		Null())
	nominal := Or(
		Seq(b.Aff("s"), gloss("PLURAL")),
		Null())
	//
	g, err := b.Build(Or(Seq(verb, verbal), Seq(noun, nominal)))
	if err != nil {
		panic(err.Error())
	}
	//
	return g
}

func build(t *testing.T, b *Builder, root Parser) *Grammar {
	g, err := b.Build(root)
	if err != nil {
		t.Fatal(err)
	}
	//
	return g
}

// Check that parsing a word yields exactly the expected renderings of a channel
// (in any order).
func check_Parse(t *testing.T, g *Grammar, word string, name string, expected ...string) {
	t.Helper()
	//
	actual := render(g.ParseWhole(word), name)
	expected = slices.Clone(expected)
	slices.Sort(expected)
	//
	if expected == nil {
		expected = []string{}
	}
	//
	assert.Equal(t, expected, actual, "parsing %s", word)
}

func check_Remnants(t *testing.T, results *Results, expected ...string) {
	t.Helper()
	//
	var actual []string
	//
	for _, r := range results.Items() {
		v, _ := r.Remnant.Get("text")
		actual = append(actual, v.Text())
	}
	//
	slices.Sort(actual)
	slices.Sort(expected)
	assert.Equal(t, expected, actual)
}

func check_Superset(t *testing.T, choice Parser, child Parser, word string) {
	text := channel.Text.Set()
	input := record.Of(word, text)
	all := Apply(choice, input, text, false)
	//
	for _, r := range Apply(child, input, text, false).Items() {
		assert.True(t, all.Contains(r), "%s missing from choice on %q", r, word)
	}
}

func check_Negation(t *testing.T, p Parser, word string) {
	text := channel.Text.Set()
	input := record.Of(word, text)
	positive := Apply(p, input, text, false).IsEmpty()
	negative := Apply(Not(p), input, text, false).IsEmpty()
	// Exactly one of them is empty
	assert.True(t, positive != negative, "negation of %s on %q", p, word)
}

// render the value of a given channel in each output, sorted.
func render(outputs []record.Record, name string) []string {
	texts := []string{}
	//
	for _, out := range outputs {
		v, _ := out.Get(name)
		texts = append(texts, v.Text())
	}
	//
	slices.Sort(texts)
	//
	return texts
}
