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
package record

import (
	"testing"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/segment"
	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_Record_01(t *testing.T) {
	r := Empty().With("text", text("jump")).With("breakdown", hyphen("jump"))
	//
	assert.Equal(t, []string{"breakdown", "text"}, r.Names())
	assert.Equal(t, "{breakdown=jump, text=jump}", r.String())
	// Records are immutable
	s := r.With("text", text(""))
	v, _ := r.Get("text")
	assert.Equal(t, "jump", v.Text())
	v, _ = s.Get("text")
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 1, s.Without("text").Len())
	assert.Equal(t, 2, r.Len())
}

func Test_Record_02(t *testing.T) {
	r := Of("jumped", channel.Of(channel.Text, channel.Breakdown))
	s := Empty().With("breakdown", hyphen("jumped")).With("text", text("jumped"))
	//
	assert.True(t, r.Equals(s))
	assert.Equal(t, r.Hash(), s.Hash())
	assert.False(t, r.Equals(s.With("text", text("jump"))))
}

func Test_Record_03(t *testing.T) {
	// Stem parsed before suffix (rightward parsing)
	stem := Empty().With("breakdown", hyphen("jump")).With("lemma", hyphen("jump"))
	suffix := Empty().With("breakdown", hyphen("ed")).With("gloss", hyphen("PAST"))
	//
	merged := stem.LeftOuter(suffix)
	assert.Equal(t, "{breakdown=jump-ed, gloss=PAST, lemma=jump}", merged.String())
}

func Test_Record_04(t *testing.T) {
	// Prefix parsed before stem (leftward parsing)
	prefix := Empty().With("breakdown", hyphen("un"))
	stem := Empty().With("breakdown", hyphen("tie")).With("lemma", hyphen("tie"))
	//
	merged := prefix.RightOuter(stem)
	assert.Equal(t, "{breakdown=un-tie, lemma=tie}", merged.String())
}

func Test_Record_05(t *testing.T) {
	// Costs add by concatenation
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			left := Empty().With("cost", segment.Repeat("X", i, ""))
			right := Empty().With("cost", segment.Repeat("X", j, ""))
			//
			assert.Equal(t, i+j, left.LeftOuter(right).Cost(channel.Cost))
			assert.Equal(t, i+j, left.RightOuter(right).Cost(channel.Cost))
		}
	}
	// An absent cost counts as zero
	assert.Equal(t, 0, Empty().Cost(channel.Cost))
}

func Test_Record_06(t *testing.T) {
	left := Empty().With("gloss", hyphen("NEG"))
	right := Empty().With("gloss", segment.New("not", " "))
	// Mismatching delimiters conflict, but the merge still succeeds.
	merged := left.RightOuter(right)
	v, ok := merged.Get("gloss")
	assert.True(t, ok)
	assert.True(t, v.IsConflict())
	assert.True(t, merged.HasConflict())
	assert.False(t, left.HasConflict())
}

func Test_Record_07(t *testing.T) {
	// A pattern is filled by the material merged into it.
	outer := Empty().With("natural", segment.New("/did .*/", " "))
	inner := Empty().With("natural", segment.New("jump", " "))
	//
	assert.Equal(t, "{natural=did jump}", inner.LeftOuter(outer).String())
	assert.Equal(t, "{natural=did jump}", outer.RightOuter(inner).String())
}

func Test_Record_08(t *testing.T) {
	// Merging with the empty record is the identity.
	r := Empty().With("breakdown", hyphen("cat")).With("cost", segment.Repeat("X", 3, ""))
	//
	assert.True(t, r.Equals(r.LeftOuter(Empty())))
	assert.True(t, r.Equals(Empty().LeftOuter(r)))
	assert.True(t, r.Equals(r.RightOuter(Empty())))
	assert.True(t, r.Equals(Empty().RightOuter(r)))
}

// ===================================================================
// Test Helpers
// ===================================================================

func text(s string) segment.Value {
	return segment.New(s, "")
}

func hyphen(s string) segment.Value {
	return segment.New(s, "-")
}
