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
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/consensys/go-morpar/pkg/analyzer"
	"github.com/consensys/go-morpar/pkg/grammar"
	"github.com/consensys/go-morpar/pkg/lexicon"
	"github.com/consensys/go-morpar/pkg/parser"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// Dictionary formats.
const (
	// TSV dictionaries hold one definition<TAB>word entry per line.
	TSV = "tsv"
	// LLF dictionaries are a single LDC lexicon file.
	LLF = "llf"
	// LLFDir dictionaries are a directory of LDC lexicon files.
	LLFDir = "llfdir"
)

// Frequency formats.
const (
	// Counts files hold one word<TAB>count entry per line.
	Counts = "counts"
	// Corpus files are raw text, whose words are counted.
	Corpus = "corpus"
)

// Config determines the grammar used to analyse words, together with the
// resources it draws upon.  Relative paths are resolved against the directory
// of the configuration file.
type Config struct {
	// Grammar names one of the bundled grammars.
	Grammar string `yaml:"grammar"`
	// Representation is the channel reported by default.
	Representation string `yaml:"representation"`
	// Dictionaries of stems, which are merged.
	Dictionaries []DictionaryConfig `yaml:"dictionaries"`
	// Preparsed lists files of prepared analyses.
	Preparsed []string `yaml:"preparsed"`
	// Frequency model used to rank definitions.
	Frequency FrequencyConfig `yaml:"frequency"`
	// Transliteration into the working form of the grammar.
	Transliteration TransliterationConfig `yaml:"transliteration"`
	// CacheSize of each dictionary lookup.
	CacheSize int `yaml:"cache_size"`
	// Memoize the rules of the grammar.
	Memoize bool `yaml:"memoize"`
	// Workers used for batch processing, where zero means one per CPU.
	Workers int `yaml:"workers"`
	// Squash lists channels whose rendering has spaces removed.
	Squash []string `yaml:"squash"`
	// directory against which relative paths are resolved.
	dir string
}

// DictionaryConfig identifies a dictionary file and its format.
type DictionaryConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// FrequencyConfig identifies a frequency model, and the costs derived from it.
type FrequencyConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	Penalty     int    `yaml:"penalty"`
	UnknownBase int    `yaml:"unknown_base"`
}

// TransliterationConfig identifies a transliteration table.
type TransliterationConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
}

// Default returns the configuration of the English grammar without any
// external resources.
func Default() Config {
	costs := parser.DefaultCostModel()
	//
	return Config{
		Grammar:        "english",
		Representation: "breakdown",
		Frequency:      FrequencyConfig{Format: Counts, Penalty: costs.Penalty, UnknownBase: costs.UnknownBase},
		CacheSize:      parser.DefaultCacheSize,
		Memoize:        true,
		dir:            ".",
	}
}

// Load a configuration file.  Settings absent from the file retain their
// default values, whilst unknown settings are reported as errors.
func Load(filename string) (Config, error) {
	config := Default()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	//
	if err := yaml.UnmarshalStrict(bytes, &config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", filename, err)
	}
	//
	config.dir = filepath.Dir(filename)
	//
	return config, config.Validate()
}

// Marshal this configuration into YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate this configuration, returning every problem found.
func (c Config) Validate() error {
	var errs []error
	//
	if _, ok := grammar.Lookup(c.Grammar); !ok {
		errs = append(errs, fmt.Errorf("unknown grammar %q", c.Grammar))
	}
	//
	if c.Representation == "" {
		errs = append(errs, errors.New("missing representation"))
	}
	//
	for _, d := range c.Dictionaries {
		if d.Path == "" {
			errs = append(errs, errors.New("dictionary without path"))
		} else if !slices.Contains([]string{TSV, LLF, LLFDir}, d.Format) {
			errs = append(errs, fmt.Errorf("dictionary %s has unknown format %q", d.Path, d.Format))
		}
	}
	//
	if c.Frequency.Path != "" && c.Frequency.Format != Counts && c.Frequency.Format != Corpus {
		errs = append(errs, fmt.Errorf("frequency model %s has unknown format %q", c.Frequency.Path, c.Frequency.Format))
	}
	//
	if c.Frequency.Penalty < 0 || c.Frequency.UnknownBase < 0 {
		errs = append(errs, errors.New("negative cost"))
	}
	//
	if c.CacheSize < 0 {
		errs = append(errs, errors.New("negative cache size"))
	}
	//
	if c.Workers < 0 {
		errs = append(errs, errors.New("negative number of workers"))
	}
	//
	return errors.Join(errs...)
}

// NumWorkers returns the number of workers to use for batch processing.
func (c Config) NumWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	//
	return c.Workers
}

// Resolve a path from this configuration.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	//
	return filepath.Join(c.dir, path)
}

// Resources loads the transliterator and the grammar resources named by this
// configuration.
func (c Config) Resources() (lexicon.Transliterator, grammar.Resources, error) {
	resources := grammar.DefaultResources()
	resources.Costs = parser.CostModel{Penalty: c.Frequency.Penalty, UnknownBase: c.Frequency.UnknownBase}
	resources.CacheSize = c.CacheSize
	resources.Memoize = c.Memoize
	//
	tr, err := c.transliterator()
	if err != nil {
		return nil, resources, err
	} else if resources.Dictionary, err = c.dictionary(tr); err != nil {
		return nil, resources, err
	} else if resources.Frequency, err = c.frequency(); err != nil {
		return nil, resources, err
	}
	//
	return tr, resources, nil
}

// Build an analyzer from a given configuration, loading every resource it
// names.
func Build(c Config) (*analyzer.Analyzer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	//
	tr, resources, err := c.Resources()
	if err != nil {
		return nil, err
	}
	//
	g, err := grammar.Build(c.Grammar, resources)
	if err != nil {
		return nil, err
	}
	//
	a := analyzer.New(g)
	a.Transliterator = tr
	//
	if len(c.Squash) > 0 {
		a.Squash = c.Squash
	}
	//
	if len(c.Preparsed) > 0 {
		a.Preparsed = lexicon.NewPreparsed()
		//
		for _, path := range c.Preparsed {
			if err := a.Preparsed.LoadPreparsedFile(c.Resolve(path), tr); err != nil {
				return nil, err
			}
		}
		//
		log.Debugf("loaded %d preparsed words", a.Preparsed.Size())
	}
	//
	return a, nil
}

func (c Config) transliterator() (lexicon.Transliterator, error) {
	if c.Transliteration.Path == "" {
		return lexicon.Identity{}, nil
	}
	//
	table, err := lexicon.LoadTableFile(c.Resolve(c.Transliteration.Path), c.Transliteration.Delimiter)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("loaded %d transliterations", table.Size())
	//
	return table, nil
}

// Load and merge the dictionaries of this configuration, giving nil if there
// are none.
func (c Config) dictionary(tr lexicon.Transliterator) (parser.Dictionary, error) {
	if len(c.Dictionaries) == 0 {
		return nil, nil
	}
	//
	dictionaries := make([]*lexicon.Dictionary, len(c.Dictionaries))
	//
	for i, d := range c.Dictionaries {
		var (
			path = c.Resolve(d.Path)
			err  error
		)
		//
		switch d.Format {
		case TSV:
			dictionaries[i], err = lexicon.LoadTSVFile(path, tr)
		case LLF:
			dictionaries[i], err = lexicon.LoadLLFFile(path, tr)
		case LLFDir:
			dictionaries[i], err = lexicon.LoadLLFDir(path, tr)
		default:
			panic("unknown dictionary format")
		}
		//
		if err != nil {
			return nil, err
		}
	}
	//
	dictionary := lexicon.Merge(dictionaries...)
	log.Debugf("loaded %d stems with %d definitions", dictionary.Stems(), dictionary.Size())
	//
	return dictionary, nil
}

// Load the frequency model of this configuration, giving nil if there is none.
func (c Config) frequency() (parser.FrequencyModel, error) {
	var (
		unigram *lexicon.Unigram
		err     error
		path    = c.Resolve(c.Frequency.Path)
	)
	//
	switch {
	case c.Frequency.Path == "":
		return nil, nil
	case c.Frequency.Format == Corpus:
		unigram, err = lexicon.CountCorpusFile(path)
	default:
		unigram, err = lexicon.LoadCountsFile(path)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("loaded frequency model of %d word occurrences", unigram.Total())
	//
	return unigram, nil
}
