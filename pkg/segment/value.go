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
	"strings"
	"unicode/utf8"
)

// Value is an immutable, delimiter-aware string carried on a channel.  A value
// whose text is enclosed in slashes (e.g. "/did .*/") is a pattern, whose
// wildcards are filled in once the material they stand for becomes known.
type Value struct {
	text      string
	delimiter string
	conflict  bool
}

// New constructs a value with a given delimiter.
func New(text string, delimiter string) Value {
	return Value{text, delimiter, false}
}

// Empty constructs the empty value for a given delimiter.
func Empty(delimiter string) Value {
	return Value{"", delimiter, false}
}

// Conflict returns the sentinel recorded when two values cannot be combined.
func Conflict() Value {
	return Value{"ERROR", "", true}
}

// Repeat constructs a value consisting of n copies of filler.  This is how
// costs are represented: the length of the value is the magnitude of the cost.
func Repeat(filler string, n int, delimiter string) Value {
	if n <= 0 {
		return Empty(delimiter)
	}
	//
	return New(strings.Repeat(filler, n), delimiter)
}

// Text returns the underlying text of this value.
func (v Value) Text() string {
	return v.text
}

// Delimiter returns the delimiter of this value.
func (v Value) Delimiter() string {
	return v.delimiter
}

// Len returns the number of characters (runes) in this value.
func (v Value) Len() int {
	return utf8.RuneCountInString(v.text)
}

// IsEmpty checks whether this value has no text.
func (v Value) IsEmpty() bool {
	return v.text == ""
}

// IsConflict checks whether this value is the merge conflict sentinel.
func (v Value) IsConflict() bool {
	return v.conflict
}

// IsPattern checks whether this value is a pattern, i.e. whether it is
// enclosed in slashes.
func (v Value) IsPattern() bool {
	return len(v.text) >= 2 && v.text[0] == '/' && v.text[len(v.text)-1] == '/'
}

// Body returns the text of a pattern without its enclosing slashes, or the text
// itself for a literal.
func (v Value) Body() string {
	if v.IsPattern() {
		return v.text[1 : len(v.text)-1]
	}
	//
	return v.text
}

// WithDelimiter returns the same text carried with a different delimiter.
func (v Value) WithDelimiter(delimiter string) Value {
	return Value{v.text, delimiter, v.conflict}
}

// Equals checks whether two values are identical.
func (v Value) Equals(other Value) bool {
	return v == other
}

// HasPrefix checks whether other is this value, or occupies a delimiter-bounded
// run at the start of this value.
func (v Value) HasPrefix(other Value) bool {
	return v.text == other.text || strings.HasPrefix(v.text, other.text+v.delimiter)
}

// HasSuffix checks whether other is this value, or occupies a delimiter-bounded
// run at the end of this value.
func (v Value) HasSuffix(other Value) bool {
	return v.text == other.text || strings.HasSuffix(v.text, v.delimiter+other.text)
}

// StripPrefix removes a prefix (and one delimiter) from this value.  Asking to
// strip a prefix which is not present is a programming error.
func (v Value) StripPrefix(other Value) Value {
	if !v.HasPrefix(other) {
		panic(fmt.Sprintf("%q has no prefix %q", v.text, other.text))
	} else if v.text == other.text {
		return Empty(v.delimiter)
	}
	//
	return New(v.text[len(other.text)+len(v.delimiter):], v.delimiter)
}

// StripSuffix removes a suffix (and one delimiter) from this value.  Asking to
// strip a suffix which is not present is a programming error.
func (v Value) StripSuffix(other Value) Value {
	if !v.HasSuffix(other) {
		panic(fmt.Sprintf("%q has no suffix %q", v.text, other.text))
	} else if v.text == other.text {
		return Empty(v.delimiter)
	}
	//
	return New(v.text[:len(v.text)-len(other.text)-len(v.delimiter)], v.delimiter)
}

// StartsWith checks whether this value, ignoring leading delimiters, starts
// with a given string.
func (v Value) StartsWith(s string) bool {
	return strings.HasPrefix(trimLeft(v.text, v.delimiter), s)
}

// EndsWith checks whether this value, ignoring trailing delimiters, ends with a
// given string.
func (v Value) EndsWith(s string) bool {
	return strings.HasSuffix(trimRight(v.text, v.delimiter), s)
}

// Append places other after this value.  When this value is a pattern, other
// fills its wildcards; when other is a pattern, the result remains a pattern.
func (v Value) Append(other Value) Value {
	switch {
	case v.conflict || other.conflict || v.delimiter != other.delimiter:
		return Conflict()
	case v.IsPattern():
		return v.Fill(other)
	case other.IsPattern():
		return New("/"+join(v.text, other.Body(), v.delimiter)+"/", v.delimiter)
	default:
		return New(join(v.text, other.text, v.delimiter), v.delimiter)
	}
}

// Prepend places other before this value.  When this value is a pattern, other
// fills its wildcards; when other is a pattern, the result remains a pattern.
func (v Value) Prepend(other Value) Value {
	switch {
	case v.conflict || other.conflict || v.delimiter != other.delimiter:
		return Conflict()
	case v.IsPattern():
		return v.Fill(other)
	case other.IsPattern():
		return New("/"+join(other.Body(), v.text, v.delimiter)+"/", v.delimiter)
	default:
		return New(join(other.text, v.text, v.delimiter), v.delimiter)
	}
}

// Fill substitutes the material in input for the wildcards of this pattern,
// yielding a literal.  For example, filling "/not .*/" with "jump" gives
// "not jump".
func (v Value) Fill(input Value) Value {
	return New(Compile(v.Body(), v.delimiter).Fill(input.text), v.delimiter)
}

func (v Value) String() string {
	return v.text
}

func join(left, right, delimiter string) string {
	if left == "" {
		return right
	} else if right == "" {
		return left
	}
	//
	return left + delimiter + right
}

func trimLeft(text, delimiter string) string {
	if delimiter == "" {
		return text
	}
	//
	for strings.HasPrefix(text, delimiter) {
		text = text[len(delimiter):]
	}
	//
	return text
}

func trimRight(text, delimiter string) string {
	if delimiter == "" {
		return text
	}
	//
	for strings.HasSuffix(text, delimiter) {
		text = text[:len(text)-len(delimiter)]
	}
	//
	return text
}
