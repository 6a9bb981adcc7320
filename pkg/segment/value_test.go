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
	"testing"

	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_Value_01(t *testing.T) {
	v := New("jumped", "")
	assert.True(t, v.HasSuffix(New("ed", "")))
	assert.True(t, v.HasPrefix(New("jump", "")))
	assert.True(t, v.HasSuffix(New("jumped", "")))
	assert.False(t, v.HasSuffix(New("ing", "")))
}

func Test_Value_02(t *testing.T) {
	// Affixes must align with delimiters.
	v := New("k a t a b s", " ")
	assert.True(t, v.HasSuffix(New("b s", " ")))
	assert.False(t, v.HasSuffix(New(" s", " ")))
	assert.False(t, v.HasPrefix(New("k a t a b s x", " ")))
	assert.Equal(t, "k a t a b", v.StripSuffix(New("s", " ")).Text())
	assert.Equal(t, "t a b s", v.StripPrefix(New("k a", " ")).Text())
}

func Test_Value_03(t *testing.T) {
	v := New("mine", "-")
	assert.True(t, v.StripSuffix(v).IsEmpty())
	assert.True(t, v.StripPrefix(v).IsEmpty())
}

func Test_Value_04(t *testing.T) {
	assert.Panics(t, func() { New("jump", "").StripSuffix(New("ed", "")) })
	assert.Panics(t, func() { New("jump", "").StripPrefix(New("ed", "")) })
}

func Test_Value_05(t *testing.T) {
	// Round trip: stripping an appended literal affix restores the base.
	for _, d := range []string{"", " ", "-"} {
		for _, base := range []string{"jump", "k t b", "a"} {
			for _, affix := range []string{"ed", "s", "i n g"} {
				v, a := New(base, d), New(affix, d)
				assert.Equal(t, v, v.Append(a).StripSuffix(a))
				assert.Equal(t, v, a.Append(v).StripPrefix(a))
			}
		}
	}
}

func Test_Value_06(t *testing.T) {
	assert.Equal(t, "jump-ed", New("jump", "-").Append(New("ed", "-")).Text())
	assert.Equal(t, "jump-ed", New("ed", "-").Prepend(New("jump", "-")).Text())
	// Empty operands join without delimiters
	assert.Equal(t, "ed", Empty("-").Append(New("ed", "-")).Text())
	assert.Equal(t, "jump", New("jump", "-").Append(Empty("-")).Text())
}

func Test_Value_07(t *testing.T) {
	// Costs add by concatenation
	a, b := Repeat("X", 3, ""), Repeat("X", 4, "")
	assert.Equal(t, 7, a.Append(b).Len())
	assert.Equal(t, 7, b.Prepend(a).Len())
	assert.Equal(t, 0, Repeat("X", -2, "").Len())
}

func Test_Value_08(t *testing.T) {
	assert.True(t, New("/did .*/", " ").IsPattern())
	assert.False(t, New("/", " ").IsPattern())
	assert.False(t, New("did", " ").IsPattern())
	assert.Equal(t, "did .*", New("/did .*/", " ").Body())
}

func Test_Value_09(t *testing.T) {
	outer := New("/did .*/", " ")
	inner := New("jump", " ")
	// A pattern receiving material is filled, whichever side it arrives on.
	assert.Equal(t, "did jump", outer.Append(inner).Text())
	assert.Equal(t, "did jump", outer.Prepend(inner).Text())
	// A literal receiving a pattern is absorbed into a larger pattern.
	assert.Equal(t, "/did .* jump/", inner.Prepend(outer).Text())
	assert.Equal(t, "/jump did .*/", inner.Append(outer).Text())
}

func Test_Value_10(t *testing.T) {
	assert.True(t, New("a", "-").Append(New("b", " ")).IsConflict())
	assert.True(t, Conflict().Prepend(New("b", " ")).IsConflict())
	assert.True(t, New("b", "").Append(Conflict()).IsConflict())
}

func Test_Value_11(t *testing.T) {
	v := New("m i n e ", " ")
	assert.True(t, v.EndsWith("e"))
	assert.True(t, New("  j u m p", " ").StartsWith("j"))
	assert.False(t, New("jumped", "").EndsWith("e"))
}

func Test_Pattern_01(t *testing.T) {
	p := Compile(".a.a.", "")
	assert.Equal(t, 3, p.Wildcards())
	//
	groups, ok := p.Match("katab")
	assert.True(t, ok)
	assert.Equal(t, []string{"k", "t", "b"}, groups)
	//
	_, ok = p.Match("kitab")
	assert.False(t, ok)
	_, ok = p.Match("katabs")
	assert.False(t, ok)
}

func Test_Pattern_02(t *testing.T) {
	p := Compile(". a . a .", " ")
	groups, ok := p.Match("k a t a b")
	assert.True(t, ok)
	assert.Equal(t, []string{"k", "t", "b"}, groups)
	assert.Equal(t, "k a t a b", p.Fill("k t b"))
}

func Test_Pattern_03(t *testing.T) {
	p := Compile(".um.*", "")
	groups, ok := p.Match("sumulat")
	assert.True(t, ok)
	assert.Equal(t, []string{"s", "ulat"}, groups)
	assert.Equal(t, "sumulat", p.Fill("sulat"))
}

func Test_Pattern_04(t *testing.T) {
	// Regular expression syntax outside wildcards is literal.
	p := Compile("a(b).", "")
	_, ok := p.Match("a(b)c")
	assert.True(t, ok)
	_, ok = p.Match("abc")
	assert.False(t, ok)
}

func Test_Pattern_05(t *testing.T) {
	// Filling the citation template with a spaced consonantal root.
	p := Compile("y i . . u .", " ")
	assert.Equal(t, "y i k t u b", p.Fill("k t b"))
	// Input without wildcard material is returned unchanged.
	assert.Equal(t, "", Compile(". .", " ").Fill(""))
}
