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
	"bytes"
	"testing"

	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_Table_01(t *testing.T) {
	table := NewTablePrinter(2)
	table.AddRow("cost", "breakdown")
	table.AddRow("0", "jump-ed")
	//
	check_Table(t, table, " cost | breakdown |\n 0    | jump-ed   |\n")
}

func Test_Table_02(t *testing.T) {
	table := NewTablePrinter(1)
	table.AddRow("bəsəwot͡ʃ")
	// Widths are measured in runes
	assert.Equal(t, uint(9), table.Width()-3)
	table.SetMaxWidth(0, 5)
	check_Table(t, table, " bəs.. |\n")
}

func Test_Table_03(t *testing.T) {
	table := NewTablePrinter(2)
	row := table.AddRow("a", "b")
	table.SetRowEscape(row, NewAnsiEscape().FgColour(TERM_RED))
	//
	check_Table(t, table, " \033[31ma\033[0m | \033[31mb\033[0m |\n")
	//
	table.AnsiEscapes(false)
	check_Table(t, table, " a | b |\n")
}

func Test_Table_04(t *testing.T) {
	table := NewTablePrinter(2)
	table.AddRow("abcdefgh", "ab")
	table.FitTo(12)
	//
	assert.Equal(t, uint(12), table.Width())
	check_Table(t, table, " ab.. | ab |\n")
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;32m", NewAnsiEscape().Bold().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "text", NewAnsiEscape().Wrap("text"))
}

func check_Table(t *testing.T, table *TablePrinter, expected string) {
	var buffer bytes.Buffer
	//
	if _, err := table.WriteTo(&buffer); err != nil {
		t.Fatal(err)
	}
	//
	assert.Equal(t, expected, buffer.String())
}
