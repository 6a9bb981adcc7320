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
package segment

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// wildcard recognises the wildcard tokens of a pattern: ".", ".+", ".?" and ".*".
var wildcard = regexp.MustCompile(`\.[\+\?\*]?`)

// templates caches compiled patterns, since the same patterns are filled
// repeatedly during parsing.
var templates sync.Map

// Template is a compiled pattern.  Every wildcard in the pattern becomes a
// numbered capture group, both in a matcher for the whole pattern (used when a
// pattern consumes input) and in a finder consisting only of the wildcards
// joined by the delimiter (used when a pattern is filled).
type Template struct {
	body      string
	delimiter string
	// matcher matches the whole pattern, capturing each wildcard span.
	matcher *regexp.Regexp
	// finder locates a delimiter-joined run of wildcard spans.
	finder *regexp.Regexp
	// output is the pattern with wildcards replaced by group references.
	output string
	// wildcards is the number of wildcards in the pattern.
	wildcards int
}

// Compile compiles a pattern body (i.e. without its enclosing slashes) for a
// given delimiter.  Compiled patterns are cached.
func Compile(body string, delimiter string) *Template {
	key := delimiter + "\x00" + body
	//
	if t, ok := templates.Load(key); ok {
		return t.(*Template)
	}
	//
	t := compile(body, delimiter)
	templates.Store(key, t)
	//
	return t
}

func compile(body string, delimiter string) *Template {
	var (
		matcher strings.Builder
		output  strings.Builder
		groups  []string
		last    = 0
	)
	//
	matcher.WriteString("^")
	//
	for i, span := range wildcard.FindAllStringIndex(body, -1) {
		literal := body[last:span[0]]
		token := body[span[0]:span[1]]
		// Everything between wildcards is matched literally.
		matcher.WriteString(regexp.QuoteMeta(literal))
		matcher.WriteString("(" + token + ")")
		output.WriteString(strings.ReplaceAll(literal, "$", "$$"))
		output.WriteString(fmt.Sprintf("${%d}", i+1))
		groups = append(groups, "("+token+")")
		last = span[1]
	}
	//
	matcher.WriteString(regexp.QuoteMeta(body[last:]))
	matcher.WriteString("$")
	output.WriteString(strings.ReplaceAll(body[last:], "$", "$$"))
	//
	finder := strings.Join(groups, regexp.QuoteMeta(delimiter))
	//
	return &Template{
		body:      body,
		delimiter: delimiter,
		matcher:   regexp.MustCompile(matcher.String()),
		finder:    regexp.MustCompile(finder),
		output:    output.String(),
		wildcards: len(groups),
	}
}

// Wildcards returns the number of wildcards (and hence capture groups) in this
// pattern.
func (t *Template) Wildcards() int {
	return t.wildcards
}

// Match matches the whole of text against this pattern, returning the text
// captured by each wildcard.
func (t *Template) Match(text string) ([]string, bool) {
	m := t.matcher.FindStringSubmatch(text)
	//
	if m == nil {
		return nil, false
	}
	//
	return m[1:], true
}

// Fill replaces the first run of wildcard material in input with the pattern,
// such that each wildcard is substituted by the span it captured.  Input which
// does not match is returned unchanged.
func (t *Template) Fill(input string) string {
	loc := t.finder.FindStringSubmatchIndex(input)
	//
	if loc == nil {
		return input
	}
	//
	var filled []byte
	filled = t.finder.ExpandString(filled, t.output, input, loc)
	//
	return input[:loc[0]] + string(filled) + input[loc[1]:]
}

func (t *Template) String() string {
	return "/" + t.body + "/"
}
