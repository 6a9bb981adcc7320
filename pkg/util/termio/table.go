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
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.  Widths are
// measured in runes, since cells frequently hold phonetic transcriptions.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]AnsiEscape
	enableEscapes bool
}

// NewTablePrinter constructs a new (initially empty) table with a given number
// of columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], width(val))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]AnsiEscape, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the escape to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// SetRowEscape sets the escape used for every cell of a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.escapes[row] {
		p.escapes[row][col] = escape
	}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// FitTo shrinks the widest columns of this table until it fits within a given
// overall width (e.g. that of the terminal).
func (p *TablePrinter) FitTo(total uint) {
	// Each column is padded by a space either side, plus a separator.
	for p.Width() > total {
		widest := 0
		//
		for i, w := range p.widths {
			if w > p.widths[widest] {
				widest = i
			}
		}
		// Cannot shrink any further
		if p.widths[widest] <= 3 {
			return
		}
		//
		p.widths[widest]--
	}
}

// Width returns the total printed width of this table.
func (p *TablePrinter) Width() uint {
	total := uint(0)
	//
	for _, w := range p.widths {
		total += w + 3
	}
	//
	return total
}

// Print the table to stdout.
func (p *TablePrinter) Print() {
	if _, err := p.WriteTo(stdout{}); err != nil {
		panic(err.Error())
	}
}

// WriteTo writes this table to a given writer.
func (p *TablePrinter) WriteTo(w io.Writer) (int64, error) {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			text := truncate(col, p.widths[j])
			padding := strings.Repeat(" ", int(p.widths[j]-width(text)))
			// Apply colour (if applicable)
			if p.enableEscapes {
				text = p.escapes[i][j].Wrap(text)
			}
			//
			builder.WriteString(" ")
			builder.WriteString(text)
			builder.WriteString(padding)
			builder.WriteString(" |")
		}
		//
		builder.WriteString("\n")
	}
	//
	n, err := io.WriteString(w, builder.String())
	//
	return int64(n), err
}

func width(text string) uint {
	return uint(utf8.RuneCountInString(text))
}

// Truncate text to a given width, marking truncation with "..".
func truncate(text string, w uint) string {
	if width(text) <= w {
		return text
	}
	//
	runes := []rune(text)
	//
	return string(runes[:w-2]) + ".."
}

type stdout struct{}

func (stdout) Write(bytes []byte) (int, error) {
	return fmt.Print(string(bytes))
}
