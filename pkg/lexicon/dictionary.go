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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/consensys/go-morpar/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Dictionary maps the working form of a stem to its definitions, in the order
// they were added.
type Dictionary struct {
	entries map[string][]string
	// number of definitions
	size int
}

// NewDictionary constructs an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{make(map[string][]string), 0}
}

// Add a definition for a given stem.  Duplicate definitions are ignored.
func (p *Dictionary) Add(surface string, definition string) {
	for _, d := range p.entries[surface] {
		if d == definition {
			return
		}
	}
	//
	p.entries[surface] = append(p.entries[surface], definition)
	p.size++
}

// Definitions returns the definitions of a given stem, or nil if it is unknown.
func (p *Dictionary) Definitions(surface string) []string {
	return p.entries[surface]
}

// Stems returns the number of distinct stems in this dictionary.
func (p *Dictionary) Stems() int {
	return len(p.entries)
}

// Size returns the number of definitions in this dictionary.
func (p *Dictionary) Size() int {
	return p.size
}

// Merge combines several dictionaries into one.  Definitions from earlier
// dictionaries come first.
func Merge(dictionaries ...*Dictionary) *Dictionary {
	merged := NewDictionary()
	//
	for _, d := range dictionaries {
		for surface, definitions := range d.entries {
			for _, definition := range definitions {
				merged.Add(surface, definition)
			}
		}
	}
	//
	return merged
}

// ============================================================================
// Delimited text
// ============================================================================

// LoadTSV reads a dictionary consisting of one definition<TAB>word entry per
// line, where each word is converted to its working form using a given
// transliterator.  Any further fields are ignored, whilst lines with too few
// fields are skipped with a warning.
func LoadTSV(reader io.Reader, name string, tr Transliterator) (*Dictionary, error) {
	lines, err := util.ReadLines(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	//
	dictionary := NewDictionary()
	//
	for i, line := range lines {
		if isComment(line) {
			continue
		}
		//
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			log.Warnf("%s:%d: insufficient fields in dictionary entry", name, i+1)
			continue
		}
		//
		dictionary.Add(tr.Transliterate(parts[1]), parts[0])
	}
	//
	return dictionary, nil
}

// LoadTSVFile reads a delimited text dictionary from a file.
func LoadTSVFile(filename string, tr Transliterator) (*Dictionary, error) {
	return loadFile(filename, func(r io.Reader) (*Dictionary, error) {
		return LoadTSV(r, filename, tr)
	})
}

// ============================================================================
// Lexicon Language Format
// ============================================================================

// LoadLLF reads a dictionary in the XML lexicon format of the LDC.  Each ENTRY
// element provides a LEMMA (converted to its working form using the given
// transliterator) and any number of GLOSS elements, each holding a
// comma-separated list of definitions.  Entries without a lemma are skipped
// with a warning.
func LoadLLF(reader io.Reader, name string, tr Transliterator) (*Dictionary, error) {
	var (
		decoder    = xml.NewDecoder(reader)
		dictionary = NewDictionary()
		entry      *llfEntry
		// element whose text is being collected
		current string
	)
	//
	for {
		token, err := decoder.Token()
		//
		if errors.Is(err, io.EOF) {
			return dictionary, nil
		} else if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		//
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "ENTRY" {
				entry = &llfEntry{}
			} else if entry != nil {
				current = t.Name.Local
			}
		case xml.EndElement:
			if t.Name.Local == "ENTRY" && entry != nil {
				entry.addTo(dictionary, name, tr)
				entry = nil
			}
			//
			current = ""
		case xml.CharData:
			if entry != nil {
				entry.collect(current, string(t))
			}
		}
	}
}

// LoadLLFFile reads an XML lexicon from a file.
func LoadLLFFile(filename string, tr Transliterator) (*Dictionary, error) {
	return loadFile(filename, func(r io.Reader) (*Dictionary, error) {
		return LoadLLF(r, filename, tr)
	})
}

// LoadLLFDir reads every XML lexicon (i.e. "*.llf.xml" file) in a directory
// into a single dictionary.
func LoadLLFDir(dir string, tr Transliterator) (*Dictionary, error) {
	filenames, err := filepath.Glob(filepath.Join(dir, "*.llf.xml"))
	if err != nil {
		return nil, err
	}
	//
	dictionaries := make([]*Dictionary, len(filenames))
	//
	for i, filename := range filenames {
		if dictionaries[i], err = LoadLLFFile(filename, tr); err != nil {
			return nil, err
		}
	}
	//
	return Merge(dictionaries...), nil
}

type llfEntry struct {
	lemma   string
	words   []string
	glosses []string
}

func (p *llfEntry) collect(element string, text string) {
	text = strings.TrimSpace(text)
	//
	if text == "" {
		return
	}
	//
	switch element {
	case "LEMMA":
		if p.lemma == "" {
			p.lemma = text
		}
	case "WORD":
		p.words = append(p.words, text)
	case "GLOSS":
		p.glosses = append(p.glosses, text)
	}
}

func (p *llfEntry) addTo(dictionary *Dictionary, name string, tr Transliterator) {
	if p.lemma == "" {
		log.Warnf("%s: cannot find pronunciation for %s", name, strings.Join(p.words, "; "))
		return
	}
	//
	surface := tr.Transliterate(p.lemma)
	//
	for _, gloss := range p.glosses {
		for _, definition := range strings.Split(gloss, ",") {
			if definition = strings.TrimSpace(definition); definition != "" {
				dictionary.Add(surface, definition)
			}
		}
	}
}
