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
package grammar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/grammar/amh"
	"github.com/consensys/go-morpar/pkg/grammar/english"
	"github.com/consensys/go-morpar/pkg/parser"
	log "github.com/sirupsen/logrus"
)

// Resources are the external data and settings used to build a grammar.
type Resources struct {
	// Dictionary of stems, or nil if there is none.
	Dictionary parser.Dictionary
	// Frequency model used to rank definitions, or nil for zero costs.
	Frequency parser.FrequencyModel
	// Costs assigned by dictionary lookups.
	Costs parser.CostModel
	// CacheSize of each dictionary lookup.
	CacheSize int
	// Memoize determines whether the rules of the grammar are memoized.
	Memoize bool
}

// DefaultResources returns resources with no dictionary, default costs, and
// memoization enabled.
func DefaultResources() Resources {
	return Resources{nil, nil, parser.DefaultCostModel(), parser.DefaultCacheSize, true}
}

// Definition describes a bundled grammar.
type Definition struct {
	// Name identifies the grammar.
	Name string
	// Description summarises the language covered.
	Description string
	// Config returns the channels of the grammar.
	Config func() channel.Config
	// Root constructs the root parser of the grammar.
	Root func(*parser.Builder, parser.Dictionary, parser.FrequencyModel) parser.Parser
	// RequiresDictionary indicates whether the grammar is useful without a
	// dictionary.
	RequiresDictionary bool
}

var definitions = []Definition{
	{"amh", "Amharic nominal morphology over IPA phones", amh.Config, amh.Root, true},
	{"english", "English derivational and inflectional affixes", english.Config, english.Root, false},
}

// Names returns the names of the bundled grammars.
func Names() []string {
	names := make([]string, len(definitions))
	//
	for i, d := range definitions {
		names[i] = d.Name
	}
	//
	return names
}

// Lookup a bundled grammar by name.
func Lookup(name string) (Definition, bool) {
	i := slices.IndexFunc(definitions, func(d Definition) bool { return d.Name == name })
	//
	if i < 0 {
		return Definition{}, false
	}
	//
	return definitions[i], true
}

// Build a bundled grammar with the given resources.
func Build(name string, resources Resources) (*parser.Grammar, error) {
	definition, ok := Lookup(name)
	//
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q (expected one of %s)", name, strings.Join(Names(), ", "))
	} else if definition.RequiresDictionary && resources.Dictionary == nil {
		log.Warnf("grammar %s has no dictionary, so every stem is unknown", name)
	}
	//
	b := parser.NewBuilder(definition.Config())
	b.Memoize = resources.Memoize
	b.Costs = resources.Costs
	b.CacheSize = resources.CacheSize
	//
	dictionary := resources.Dictionary
	// Grammars needing a dictionary are given an empty one
	if dictionary == nil && definition.RequiresDictionary {
		dictionary = emptyDictionary{}
	}
	//
	g, err := b.Build(definition.Root(b, dictionary, resources.Frequency))
	if err != nil {
		return nil, fmt.Errorf("building grammar %s: %w", name, err)
	}
	//
	return g, nil
}

type emptyDictionary struct{}

func (emptyDictionary) Definitions(string) []string {
	return nil
}
