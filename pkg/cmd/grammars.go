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
package cmd

import (
	"os"

	"github.com/consensys/go-morpar/pkg/grammar"
	"github.com/consensys/go-morpar/pkg/util/termio"
	"github.com/spf13/cobra"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "list the available grammars.",
	Long:  `List the bundled grammars, together with the channels they produce.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := termio.NewTablePrinter(3)
		table.SetRowEscape(table.AddRow("name", "channels", "description"), termio.NewAnsiEscape().Bold())
		//
		for _, name := range grammar.Names() {
			definition, _ := grammar.Lookup(name)
			config := definition.Config()
			table.AddRow(name, config.Lem.And(config.Aff).String(), definition.Description)
		}
		//
		table.AnsiEscapes(termio.IsTerminal(os.Stdout))
		table.Print()
	},
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
}
