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
	"unicode/utf8"

	"github.com/consensys/go-morpar/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Transliterator converts words from their orthographic form into the working
// form which a grammar parses (e.g. from Ethiopic script into phones).
type Transliterator interface {
	Transliterate(word string) string
}

// Identity is the transliterator which leaves words unchanged.
type Identity struct{}

// Transliterate implementation for the Transliterator interface.
func (Identity) Transliterate(word string) string {
	return word
}

// Table is a transliterator defined by a table of graphemes.  Words are
// transliterated greedily from left to right, always converting the longest
// grapheme which matches.  Characters without an entry are copied unchanged.
type Table struct {
	entries map[string]string
	// longest grapheme (in runes)
	longest int
	// delimiter placed between converted graphemes
	delimiter string
}

// NewTable constructs an empty transliteration table, whose converted graphemes
// are separated by a given delimiter.
func NewTable(delimiter string) *Table {
	return &Table{make(map[string]string), 0, delimiter}
}

// Add an entry to this table.
func (p *Table) Add(grapheme string, output string) {
	p.entries[grapheme] = output
	p.longest = max(p.longest, utf8.RuneCountInString(grapheme))
}

// Size returns the number of entries in this table.
func (p *Table) Size() int {
	return len(p.entries)
}

// Transliterate implementation for the Transliterator interface.
func (p *Table) Transliterate(word string) string {
	var (
		runes  = []rune(word)
		pieces []string
	)
	//
	for i := 0; i < len(runes); {
		n := min(p.longest, len(runes)-i)
		// Find longest match
		for ; n > 0; n-- {
			if output, ok := p.entries[string(runes[i:i+n])]; ok {
				pieces = append(pieces, output)
				break
			}
		}
		// Unmatched characters are copied
		if n == 0 {
			pieces = append(pieces, string(runes[i]))
			n = 1
		}
		//
		i += n
	}
	//
	return strings.Join(pieces, p.delimiter)
}

// LoadTable reads a transliteration table, consisting of one grapheme<TAB>output
// entry per line.  Blank lines and lines starting with "#" are ignored, whilst
// malformed lines are skipped with a warning.
func LoadTable(reader io.Reader, name string, delimiter string) (*Table, error) {
	lines, err := util.ReadLines(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	//
	table := NewTable(delimiter)
	//
	for i, line := range lines {
		if isComment(line) {
			continue
		}
		//
		parts := strings.Split(line, "\t")
		if len(parts) < 2 || parts[0] == "" {
			log.Warnf("%s:%d: malformed transliteration entry", name, i+1)
			continue
		}
		//
		table.Add(parts[0], parts[1])
	}
	//
	return table, nil
}

// LoadTableFile reads a transliteration table from a file.
func LoadTableFile(filename string, delimiter string) (*Table, error) {
	return loadFile(filename, func(r io.Reader) (*Table, error) {
		return LoadTable(r, filename, delimiter)
	})
}

func isComment(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}

func loadFile[T any](filename string, fn func(io.Reader) (T, error)) (T, error) {
	var empty T
	//
	file, err := util.OpenInputFile(filename)
	if err != nil {
		return empty, err
	}
	//
	defer file.Close()
	//
	return fn(file)
}
