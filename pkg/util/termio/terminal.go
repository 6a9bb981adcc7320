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
package termio

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Width returns the width (in columns) of the terminal attached to a given
// file, or false if there is none.
func Width(file *os.File) (uint, bool) {
	if !IsTerminal(file) {
		return 0, false
	}
	//
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	//
	return uint(width), true
}

// Progress reports the progress of a long-running task on a single line,
// which is rewritten in place.  Nothing is written when disabled.
type Progress struct {
	out     io.Writer
	label   string
	enabled bool
}

// NewProgress constructs a progress line, which is enabled only when the output
// is a terminal.
func NewProgress(out *os.File, label string) *Progress {
	return &Progress{out, label, IsTerminal(out)}
}

// Update the progress line to show a given number of completed steps, out of a
// given total.
func (p *Progress) Update(done uint, total uint) {
	if !p.enabled {
		return
	}
	//
	percent := uint(100)
	//
	if total > 0 {
		percent = (100 * done) / total
	}
	//
	fmt.Fprintf(p.out, "\r%s %d/%d (%d%%)", p.label, done, total, percent)
}

// Done clears the progress line.
func (p *Progress) Done() {
	if p.enabled {
		fmt.Fprint(p.out, "\r\033[K")
	}
}
