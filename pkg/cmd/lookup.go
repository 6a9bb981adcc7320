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
	"fmt"
	"os"

	"github.com/consensys/go-morpar/pkg/channel"
	"github.com/consensys/go-morpar/pkg/parser"
	"github.com/consensys/go-morpar/pkg/util/termio"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] stem1 stem2 ...",
	Short: "look up stems in the dictionary.",
	Long: `Look up the definitions of one or more stems in the configured dictionaries,
	along with the cost assigned to each definition.  Stems are converted to their
	working form before lookup.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := readConfig(cmd)
		//
		tr, resources, err := cfg.Resources()
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		} else if resources.Dictionary == nil {
			fmt.Println("no dictionary configured")
			os.Exit(2)
		}
		//
		lookup := parser.NewLookup(resources.Dictionary, resources.Frequency, channel.Of(channel.Lemma),
			channel.Of(channel.Definition), channel.Cost, resources.Costs, resources.CacheSize)
		table := termio.NewTablePrinter(4)
		table.SetRowEscape(table.AddRow("stem", "form", "cost", "definition"), termio.NewAnsiEscape().Bold())
		//
		for _, stem := range args {
			form := tr.Transliterate(stem)
			//
			for i, candidate := range lookup.Candidates(form, channel.Text) {
				definition, _ := candidate.Get(channel.Definition.Name())
				row := table.AddRow(stem, form, fmt.Sprintf("%d", candidate.Cost(channel.Cost)), definition.Text())
				//
				if i == 0 && resources.Dictionary.Definitions(form) == nil {
					table.SetRowEscape(row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
				}
			}
		}
		//
		table.AnsiEscapes(termio.IsTerminal(os.Stdout))
		table.Print()
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(lookupCmd)
}
