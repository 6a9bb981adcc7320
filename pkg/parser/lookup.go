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
	"math"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/record"
	"github.com/consensys/go-morpar/pkg/segment"
	lru "github.com/hashicorp/golang-lru"
)

// Dictionary maps the surface form of a stem to its candidate definitions.
type Dictionary interface {
	// Definitions returns the definitions of a given surface form, or nil if it
	// is unknown.
	Definitions(surface string) []string
}

// FrequencyModel describes how common the words of a definition are in some
// reference corpus.  It is used to rank definitions, such that definitions
// consisting of rarer words cost more.
type FrequencyModel interface {
	// IsKnown checks whether a word occurs in the reference corpus.
	IsKnown(word string) bool
	// RelativeFrequency returns the relative frequency of a known word, which
	// lies in (0,1].
	RelativeFrequency(word string) float64
}

// CostModel determines the costs assigned by a lookup.
type CostModel struct {
	// Penalty is the cost of each word of a definition which is unknown to the
	// frequency model.
	Penalty int
	// UnknownBase is the cost of a stem absent from the dictionary, to which the
	// length of the stem is added.
	UnknownBase int
}

// DefaultCostModel returns the standard costs: 15 for each unknown definition
// word, and 50 plus the stem length for an unknown stem.
func DefaultCostModel() CostModel {
	return CostModel{Penalty: 15, UnknownBase: 50}
}

// DefaultCacheSize is the default number of candidate sets retained by a lookup.
const DefaultCacheSize = 1000

// Lookup is a dictionary-backed stem.  It consumes the whole of the current
// value of the requested channel, writing the stem to its stem channels and
// each of the stem's definitions to its output channels, together with a cost.
// Stems absent from the dictionary are still accepted, but at a cost which
// exceeds that of any dictionary hit and grows with their length.
type Lookup struct {
	dictionary Dictionary
	frequency  FrequencyModel
	stems      channel.Set
	outputs    channel.Set
	cost       channel.Channel
	model      CostModel
	// cache of candidate outputs, keyed by consumed channel and surface form.
	cache *lru.Cache
}

// NewLookup constructs a lookup over a given dictionary and frequency model.  A
// nil frequency model assigns every definition zero cost.
func NewLookup(dictionary Dictionary, frequency FrequencyModel, stems channel.Set, outputs channel.Set,
	cost channel.Channel, model CostModel, cacheSize int) *Lookup {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	//
	cache, err := lru.New(cacheSize)
	// Only possible for a non-positive size
	if err != nil {
		panic(err.Error())
	}
	//
	return &Lookup{dictionary, frequency, stems, outputs, cost, model, cache}
}

// Channels implementation for the Parser interface.
func (p *Lookup) Channels() channel.Set {
	return p.stems.And(p.outputs).With(p.cost)
}

func (p *Lookup) String() string {
	return fmt.Sprintf("Lookup(%s,%s)", p.stems, p.outputs)
}

func (p *Lookup) node() {}

// Cost computes the cost of a given definition.  This is the sum, over each
// (lowercased) word of the definition, of a fixed penalty when the word is
// unknown, and otherwise of the floor of its negative log frequency.
func (p *Lookup) Cost(definition string) int {
	if p.frequency == nil {
		return 0
	}
	//
	cost := 0
	//
	for _, word := range strings.Fields(definition) {
		word = strings.ToLower(word)
		//
		if freq := p.frequency.RelativeFrequency(word); !p.frequency.IsKnown(word) || freq <= 0 {
			cost += p.model.Penalty
		} else {
			cost += int(math.Floor(-math.Log(freq)))
		}
	}
	//
	return cost
}

// Candidates returns the outputs generated for a given surface form, when
// consuming a given channel.
func (p *Lookup) Candidates(surface string, key channel.Channel) []record.Record {
	surface = strings.TrimSpace(surface)
	id := key.Name() + "\x00" + surface
	//
	if candidates, ok := p.cache.Get(id); ok {
		return candidates.([]record.Record)
	}
	//
	candidates := p.candidates(surface, key)
	p.cache.Add(id, candidates)
	//
	return candidates
}

func (p *Lookup) candidates(surface string, key channel.Channel) []record.Record {
	var (
		candidates []record.Record
		stem       = record.Empty()
	)
	//
	for _, c := range p.stems.Members() {
		if !c.Equals(key) {
			stem = stem.With(c.Name(), segment.New(surface, c.Delimiter()))
		}
	}
	//
	for _, definition := range p.dictionary.Definitions(surface) {
		candidates = append(candidates, p.candidate(stem, definition, p.Cost(definition)))
	}
	// Unknown stems are squashed and penalised
	if len(candidates) == 0 {
		cost := p.model.UnknownBase + utf8.RuneCountInString(surface)
		candidates = append(candidates, p.candidate(stem, strings.ReplaceAll(surface, " ", ""), cost))
	}
	//
	return candidates
}

func (p *Lookup) candidate(stem record.Record, definition string, cost int) record.Record {
	output := stem
	//
	for _, c := range p.outputs.Members() {
		output = output.With(c.Name(), segment.New(definition, c.Delimiter()))
	}
	//
	return output.With(p.cost.Name(), segment.Repeat("X", cost, p.cost.Delimiter()))
}

func (p *Lookup) apply(input record.Record, requested channel.Set) *Results {
	key, ok := keyChannel(requested, p.Channels())
	if !ok {
		return trivial(record.Empty(), input)
	}
	//
	results := NewResults()
	text, ok := input.Get(key.Name())
	// Stems are never empty
	if !ok || strings.TrimSpace(text.Text()) == "" {
		return results
	}
	//
	remnant := input.With(key.Name(), segment.Empty(key.Delimiter()))
	//
	for _, output := range p.Candidates(text.Text(), key) {
		results.Insert(Result{output, remnant})
	}
	//
	return results
}
