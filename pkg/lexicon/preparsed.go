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
package lexicon

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-morpar/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Analysis is a hand-prepared analysis of a word, which takes priority over
// anything the grammar produces.
type Analysis struct {
	Breakdown string
	Lemma     string
	Gloss     string
	Natural   string
	Comment   string
}

// Preparsed maps the working form of a word to its prepared analysis.
type Preparsed struct {
	entries map[string]Analysis
}

// NewPreparsed constructs an empty table of prepared analyses.
func NewPreparsed() *Preparsed {
	return &Preparsed{make(map[string]Analysis)}
}

// Add (or replace) the analysis of a given word.
func (p *Preparsed) Add(form string, analysis Analysis) {
	p.entries[form] = analysis
}

// Lookup the analysis of a given word, if any.
func (p *Preparsed) Lookup(form string) (Analysis, bool) {
	if p == nil {
		return Analysis{}, false
	}
	//
	a, ok := p.entries[form]
	//
	return a, ok
}

// Size returns the number of analysed words.
func (p *Preparsed) Size() int {
	return len(p.entries)
}

// LoadPreparsed reads prepared analyses into this table, replacing any existing
// analyses of the same words.  Each line has seven tab-separated fields: the
// orthographic form, its pronunciation, gloss, natural translation, lemma,
// breakdown and a comment.  Words are keyed by their transliterated orthographic
// form, which also stands in for an empty gloss, lemma or breakdown.  Lines
// starting with "#" are ignored, whilst lines with too few fields are skipped
// with a warning.
func (p *Preparsed) LoadPreparsed(reader io.Reader, name string, tr Transliterator) error {
	lines, err := util.ReadLines(reader)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	//
	for i, line := range lines {
		if isComment(line) {
			continue
		}
		//
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			log.Warnf("%s:%d: insufficient fields in preparsed entry", name, i+1)
			continue
		}
		//
		form := tr.Transliterate(fields[0])
		p.Add(form, Analysis{
			Gloss:     orDefault(fields[2], form),
			Natural:   fields[3],
			Lemma:     orDefault(fields[4], form),
			Breakdown: orDefault(fields[5], form),
			Comment:   strings.TrimSpace(fields[6]),
		})
	}
	//
	return nil
}

// LoadPreparsedFile reads prepared analyses from a file into this table.
func (p *Preparsed) LoadPreparsedFile(filename string, tr Transliterator) error {
	_, err := loadFile(filename, func(r io.Reader) (struct{}, error) {
		return struct{}{}, p.LoadPreparsed(r, filename, tr)
	})
	//
	return err
}

func orDefault(text string, dflt string) string {
	if text == "" {
		return dflt
	}
	//
	return text
}
