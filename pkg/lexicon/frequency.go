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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/consensys/go-morpar/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Unigram is a frequency model built from word counts over some reference
// corpus.  Words are case-sensitive; callers are expected to lowercase them.
type Unigram struct {
	counts map[string]uint
	total  uint
}

// NewUnigram constructs an empty unigram model.
func NewUnigram() *Unigram {
	return &Unigram{make(map[string]uint), 0}
}

// Add a number of occurrences of a given word.
func (p *Unigram) Add(word string, count uint) {
	p.counts[word] += count
	p.total += count
}

// Count returns the number of occurrences of a word.
func (p *Unigram) Count(word string) uint {
	return p.counts[word]
}

// Total returns the total number of words counted.
func (p *Unigram) Total() uint {
	return p.total
}

// IsKnown implementation for the parser.FrequencyModel interface.
func (p *Unigram) IsKnown(word string) bool {
	return p.counts[word] > 0
}

// RelativeFrequency implementation for the parser.FrequencyModel interface.
func (p *Unigram) RelativeFrequency(word string) float64 {
	if p.total == 0 {
		return 0
	}
	//
	return float64(p.counts[word]) / float64(p.total)
}

// LoadCounts reads a unigram model consisting of one word<TAB>count entry per
// line.  Malformed lines are skipped with a warning.
func LoadCounts(reader io.Reader, name string) (*Unigram, error) {
	lines, err := util.ReadLines(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	//
	model := NewUnigram()
	//
	for i, line := range lines {
		if isComment(line) {
			continue
		}
		//
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 {
			log.Warnf("%s:%d: insufficient fields in frequency entry", name, i+1)
			continue
		}
		//
		count, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			log.Warnf("%s:%d: invalid count %q", name, i+1, parts[1])
			continue
		}
		//
		model.Add(parts[0], uint(count))
	}
	//
	return model, nil
}

// CountCorpus builds a unigram model by counting the (lowercased) words of some
// running text, where words are separated by whitespace.
func CountCorpus(reader io.Reader, name string) (*Unigram, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	//
	model := NewUnigram()
	//
	for scanner.Scan() {
		model.Add(strings.ToLower(scanner.Text()), 1)
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	//
	return model, nil
}

// LoadCountsFile reads a unigram model from a file of counts.
func LoadCountsFile(filename string) (*Unigram, error) {
	return loadFile(filename, func(r io.Reader) (*Unigram, error) {
		return LoadCounts(r, filename)
	})
}

// CountCorpusFile builds a unigram model from a file of running text.
func CountCorpusFile(filename string) (*Unigram, error) {
	return loadFile(filename, func(r io.Reader) (*Unigram, error) {
		return CountCorpus(r, filename)
	})
}

// ZeroCost is the frequency model under which every definition costs nothing.
// Every word is known and maximally frequent.
type ZeroCost struct{}

// IsKnown implementation for the parser.FrequencyModel interface.
func (ZeroCost) IsKnown(string) bool {
	return true
}

// RelativeFrequency implementation for the parser.FrequencyModel interface.
func (ZeroCost) RelativeFrequency(string) float64 {
	return 1
}
