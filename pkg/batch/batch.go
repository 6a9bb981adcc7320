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
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/consensys/go-morpar/pkg/analyzer"
	"github.com/consensys/go-morpar/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/willf/bloom"
)

// DefaultGlob matches the documents of an input directory.
const DefaultGlob = "*.orig.*"

// Expected number of distinct unparseable words, and the acceptable rate of
// false positives, used to size the filter of reported words.
const (
	expectedUnparseable = 100000
	falsePositiveRate   = 0.001
)

// Line is the result of processing a single line of a document.
type Line struct {
	// Lemmas holds the lemma of each word.
	Lemmas []string
	// Glosses holds the gloss of each word, split into its morphemes.
	Glosses []string
}

// Processor converts documents into parallel lemma and gloss documents, where
// each word is replaced by the lemma (resp. gloss) of its cheapest analysis.
// Unparseable words are reported once each.
type Processor struct {
	analyzer *analyzer.Analyzer
	workers  int
	mux      sync.Mutex
	// Words already reported as unparseable.
	reported *bloom.BloomFilter
	// Number of distinct unparseable words reported.
	unparseable uint
	// Progress (if not nil) is called with the number of lines processed after
	// each line of a document.
	Progress func(done uint, total uint)
}

// NewProcessor constructs a processor using a given analyzer, which processes
// at most a given number of lines in parallel.
func NewProcessor(a *analyzer.Analyzer, workers int) *Processor {
	return &Processor{
		analyzer: a,
		workers:  workers,
		reported: bloom.NewWithEstimates(expectedUnparseable, falsePositiveRate),
	}
}

// Unparseable returns the number of distinct unparseable words reported so far.
func (p *Processor) Unparseable() uint {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return p.unparseable
}

// Word determines the lemma and gloss of a single word.  Spaces are removed
// from both, and the gloss is split into its morphemes.  A word which cannot be
// analysed is given its working form for both.
func (p *Processor) Word(word string) (string, []string) {
	var (
		form     = p.analyzer.WorkingForm(word)
		analysis = p.analyzer.Analyze(word)[0]
		lemma    = p.analyzer.Render(analysis, "lemma", form)
		gloss    = p.analyzer.Render(analysis, "gloss", form)
	)
	//
	if analysis.Degenerate {
		p.report(word, form)
		//
		return squash(form), []string{squash(form)}
	}
	//
	return squash(lemma), strings.Split(squash(gloss), "-")
}

// Line processes a single line of a document, whose words are separated by
// whitespace.
func (p *Processor) Line(line string) Line {
	var result Line
	//
	for _, word := range strings.Fields(line) {
		lemma, glosses := p.Word(word)
		result.Lemmas = append(result.Lemmas, lemma)
		result.Glosses = append(result.Glosses, glosses...)
	}
	//
	return result
}

// Lines processes the lines of a document in parallel.
func (p *Processor) Lines(ctx context.Context, lines []string) ([]Line, error) {
	var done uint
	//
	return util.ParMap(ctx, lines, p.workers, func(line string) (Line, error) {
		result := p.Line(line)
		//
		if p.Progress != nil {
			p.mux.Lock()
			done++
			p.Progress(done, uint(len(lines)))
			p.mux.Unlock()
		}
		//
		return result, nil
	})
}

// File processes a given document, writing its lemma and gloss documents into
// a given output directory.  The names of the written files are returned.
func (p *Processor) File(ctx context.Context, filename string, outputDir string) ([]string, error) {
	stats := util.NewPerfStats()
	//
	lines, err := util.ReadInputFile(filename)
	if err != nil {
		return nil, err
	}
	//
	results, err := p.Lines(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", filename, err)
	}
	//
	var (
		lemmas, glosses strings.Builder
		words           uint
		lemmaFile       = OutputName(filename, outputDir, "lemma")
		glossFile       = OutputName(filename, outputDir, "gloss")
	)
	//
	for _, line := range results {
		lemmas.WriteString(strings.Join(line.Lemmas, " "))
		lemmas.WriteString("\n")
		glosses.WriteString(strings.Join(line.Glosses, " "))
		glosses.WriteString("\n")
		words += uint(len(line.Lemmas))
	}
	//
	if err := os.WriteFile(lemmaFile, []byte(lemmas.String()), 0o644); err != nil {
		return nil, err
	} else if err := os.WriteFile(glossFile, []byte(glosses.String()), 0o644); err != nil {
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("processing %s", filename), words)
	//
	return []string{lemmaFile, glossFile}, nil
}

// Glob returns the documents of an input directory which match a given pattern.
func Glob(inputDir string, pattern string) ([]string, error) {
	filenames, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	//
	return filenames, nil
}

// OutputName determines the name of an output document of a given kind (e.g.
// "lemma") for a given input document.  For example, "doc.orig.amh" gives
// "doc.lemma.amh".  A compression suffix of the input is dropped.
func OutputName(filename string, outputDir string, kind string) string {
	base := strings.TrimSuffix(filepath.Base(filename), ".bz2")
	ext := filepath.Ext(base)
	// Strip everything after the first dot
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	//
	return filepath.Join(outputDir, base+"."+kind+ext)
}

func (p *Processor) report(word string, form string) {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	if !p.reported.TestAndAdd([]byte(form)) {
		p.unparseable++
		log.Warnf("cannot parse %s (%s)", word, form)
	}
}

func squash(text string) string {
	return strings.ReplaceAll(text, " ", "")
}
