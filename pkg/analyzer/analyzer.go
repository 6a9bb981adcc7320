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
	"cmp"
	"slices"
	"strings"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/lexicon"
	"github.com/consensys/go-morpar/pkg/parser"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/segment"
	log "github.com/sirupsen/logrus"
)

// Analysis is a single whole-word analysis of a word.
type Analysis struct {
	// Output holds the channels produced by the analysis.
	Output record.Record
	// Cost of this analysis (lower is better).
	Cost int
	// Degenerate indicates the word could not be analysed, and this analysis
	// merely echoes its working form.
	Degenerate bool
	// Conflicted indicates some channel of the output holds a merge conflict.
	Conflicted bool
	// Preparsed indicates the analysis was prepared by hand.
	Preparsed bool
}

// Analyzer is the entry point for analysing words.  Words are first converted
// into their working form, then looked up amongst the prepared analyses and
// finally parsed by the grammar.  Analyses are ranked by cost, and a word
// which cannot be analysed still receives a single degenerate analysis.
type Analyzer struct {
	grammar *parser.Grammar
	// Transliterator converts words into their working form.
	Transliterator lexicon.Transliterator
	// Preparsed holds prepared analyses, which take priority over the grammar.
	Preparsed *lexicon.Preparsed
	// Squash lists the channels whose rendering has spaces removed.
	Squash []string
}

// New constructs an analyzer for a given grammar, which leaves words unchanged,
// has no prepared analyses, and squashes the lemma and breakdown channels.
func New(grammar *parser.Grammar) *Analyzer {
	return &Analyzer{
		grammar:        grammar,
		Transliterator: lexicon.Identity{},
		Squash:         []string{channel.Lemma.Name(), channel.Breakdown.Name()},
	}
}

// Grammar returns the grammar used by this analyzer.
func (a *Analyzer) Grammar() *parser.Grammar {
	return a.grammar
}

// WorkingForm returns the form of a word which is actually parsed.
func (a *Analyzer) WorkingForm(word string) string {
	return a.Transliterator.Transliterate(word)
}

// Analyze a word, returning its analyses in ascending order of cost.  The
// result is never empty.
func (a *Analyzer) Analyze(word string) []Analysis {
	form := a.WorkingForm(word)
	// Prepared analyses take priority
	if prepared, ok := a.Preparsed.Lookup(form); ok {
		return []Analysis{preparsed(prepared)}
	}
	//
	var (
		cost     = a.grammar.Config().Cost
		outputs  = a.grammar.ParseWhole(form)
		analyses = make([]Analysis, len(outputs))
	)
	//
	if len(outputs) == 0 {
		log.Debugf("cannot parse %s (%s)", word, form)
		//
		text := a.grammar.Config().Text
		output := record.Empty().With(text.Name(), segment.New(form, text.Delimiter()))
		//
		return []Analysis{{Output: output, Degenerate: true}}
	}
	//
	for i, output := range outputs {
		analyses[i] = Analysis{Output: output, Cost: output.Cost(cost), Conflicted: output.HasConflict()}
	}
	//
	slices.SortStableFunc(analyses, func(l, r Analysis) int {
		if c := cmp.Compare(l.Cost, r.Cost); c != 0 {
			return c
		}
		//
		return strings.Compare(l.Output.String(), r.Output.String())
	})
	//
	return analyses
}

// Parse a word, returning the rendering of a given channel for each of its
// analyses in ascending order of cost.  Where an analysis leaves the channel
// empty (or unassigned), the working form of the word is used instead.
func (a *Analyzer) Parse(word string, representation string) []string {
	var (
		form     = a.WorkingForm(word)
		analyses = a.Analyze(word)
		renders  = make([]string, len(analyses))
	)
	//
	for i, analysis := range analyses {
		renders[i] = a.Render(analysis, representation, form)
	}
	//
	return renders
}

// Best returns the rendering of a given channel for the cheapest analysis of a
// word.
func (a *Analyzer) Best(word string, representation string) string {
	return a.Parse(word, representation)[0]
}

// Render a given channel of an analysis, falling back to a given form when it
// is empty or unassigned.
func (a *Analyzer) Render(analysis Analysis, representation string, fallback string) string {
	value, ok := analysis.Output.Get(representation)
	//
	if !ok || value.IsEmpty() {
		return fallback
	} else if slices.Contains(a.Squash, representation) {
		return strings.ReplaceAll(value.Text(), " ", "")
	}
	//
	return value.Text()
}

func preparsed(prepared lexicon.Analysis) Analysis {
	output := record.Empty().
		With(channel.Breakdown.Name(), segment.New(prepared.Breakdown, channel.Breakdown.Delimiter())).
		With(channel.Lemma.Name(), segment.New(prepared.Lemma, channel.Lemma.Delimiter())).
		With(channel.Gloss.Name(), segment.New(prepared.Gloss, channel.Gloss.Delimiter())).
		With(channel.Natural.Name(), segment.New(prepared.Natural, channel.Natural.Delimiter()))
	//
	return Analysis{Output: output, Preparsed: true}
}
