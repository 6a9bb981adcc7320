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
package channel

import (
	"strings"
)

// Channel is a named output dimension of a parse, such as "gloss" or "lemma".
// The delimiter is used both to join the morphemes written to this channel and
// to recognise morpheme boundaries when matching affixes.  Two channels are
// considered the same channel when their names are equal.
type Channel struct {
	name      string
	delimiter string
}

// New constructs a channel with a given name and delimiter.
func New(name string, delimiter string) Channel {
	return Channel{name, delimiter}
}

// Concatenated constructs a channel whose morphemes are joined directly.
func Concatenated(name string) Channel {
	return Channel{name, ""}
}

// Spaced constructs a channel whose morphemes are joined by a single space.
func Spaced(name string) Channel {
	return Channel{name, " "}
}

// Hyphenated constructs a channel whose morphemes are joined by a hyphen.
func Hyphenated(name string) Channel {
	return Channel{name, "-"}
}

// Name returns the name of this channel.
func (c Channel) Name() string {
	return c.name
}

// Delimiter returns the delimiter of this channel.
func (c Channel) Delimiter() string {
	return c.delimiter
}

// Equals checks whether two channels have the same name.
func (c Channel) Equals(other Channel) bool {
	return c.name == other.name
}

// Set returns the singleton set containing just this channel.
func (c Channel) Set() Set {
	return Set{[]Channel{c}}
}

// And combines this channel with another to form a composite set.
func (c Channel) And(other Channel) Set {
	return Of(c, other)
}

func (c Channel) String() string {
	return c.name
}

// Set is a composite channel: an ordered list of simple channels with no two
// members sharing a name.  Sets are immutable.
type Set struct {
	members []Channel
}

// Of constructs a set from zero or more channels, dropping any channel whose
// name was already seen.
func Of(channels ...Channel) Set {
	var members []Channel
	//
	for _, c := range channels {
		if !containsName(members, c.name) {
			members = append(members, c)
		}
	}
	//
	return Set{members}
}

// And returns the union of two sets, preserving the order of this set followed
// by the new members of the other.
func (s Set) And(other Set) Set {
	members := make([]Channel, len(s.members), len(s.members)+len(other.members))
	copy(members, s.members)
	//
	for _, c := range other.members {
		if !containsName(members, c.name) {
			members = append(members, c)
		}
	}
	//
	return Set{members}
}

// With returns this set extended with a given channel.
func (s Set) With(c Channel) Set {
	return s.And(c.Set())
}

// Members returns the simple channels making up this set, in order.  The
// returned slice must not be modified.
func (s Set) Members() []Channel {
	return s.members
}

// Len returns the number of simple channels in this set.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty checks whether this set has no members.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Contains checks whether a channel (by name) is a member of this set.
func (s Set) Contains(c Channel) bool {
	return containsName(s.members, c.name)
}

// ContainsName checks whether a channel with the given name is a member of
// this set.
func (s Set) ContainsName(name string) bool {
	return containsName(s.members, name)
}

// Lookup returns the member of this set with the given name, if any.
func (s Set) Lookup(name string) (Channel, bool) {
	for _, c := range s.members {
		if c.name == name {
			return c, true
		}
	}
	//
	return Channel{}, false
}

// SubsetOf checks whether every member of this set is a member of other.
func (s Set) SubsetOf(other Set) bool {
	for _, c := range s.members {
		if !other.Contains(c) {
			return false
		}
	}
	//
	return true
}

// Disjoint checks whether this set shares no member with other.  A node whose
// channels are disjoint from the requested channels is trivial for that call.
func (s Set) Disjoint(other Set) bool {
	for _, c := range s.members {
		if other.Contains(c) {
			return false
		}
	}
	//
	return true
}

// Intersect returns the members of this set which are also members of other,
// in the order of this set.
func (s Set) Intersect(other Set) Set {
	var members []Channel
	//
	for _, c := range s.members {
		if other.Contains(c) {
			members = append(members, c)
		}
	}
	//
	return Set{members}
}

// Minus returns the members of this set which are not members of other.
func (s Set) Minus(other Set) Set {
	var members []Channel
	//
	for _, c := range s.members {
		if !other.Contains(c) {
			members = append(members, c)
		}
	}
	//
	return Set{members}
}

// Equals checks whether two sets contain the same channel names, irrespective
// of order.
func (s Set) Equals(other Set) bool {
	return s.SubsetOf(other) && other.SubsetOf(s)
}

// Names returns the names of the members of this set, in order.
func (s Set) Names() []string {
	names := make([]string, len(s.members))
	//
	for i, c := range s.members {
		names[i] = c.name
	}
	//
	return names
}

func (s Set) String() string {
	return strings.Join(s.Names(), "+")
}

func containsName(channels []Channel, name string) bool {
	for _, c := range channels {
		if c.name == name {
			return true
		}
	}
	//
	return false
}
