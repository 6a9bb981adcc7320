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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-morpar/pkg/analyzer"
	"github.com/consensys/go-morpar/pkg/util"
	"github.com/consensys/go-morpar/pkg/util/termio"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] word1 word2 ...",
	Short: "parse words and print their analyses.",
	Long: `Parse one or more words, printing a table of their analyses in order of
	increasing cost.  When no words are given, they are read from standard input
	(one or more per line).`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg      = readConfig(cmd)
			channels = GetStringArray(cmd, "channel")
			limit    = GetUint(cmd, "max")
			stats    = util.NewPerfStats()
		)
		//
		if len(channels) == 0 {
			channels = []string{cfg.Representation}
		}
		//
		a := buildAnalyzer(cfg)
		words := args
		//
		if len(words) == 0 {
			words = readWords()
		}
		//
		table := termio.NewTablePrinter(uint(2 + len(channels)))
		table.SetRowEscape(table.AddRow(append([]string{"word", "cost"}, channels...)...), termio.NewAnsiEscape().Bold())
		//
		for _, word := range words {
			analyses := a.Analyze(word)
			//
			for i, analysis := range analyses {
				if limit != 0 && uint(i) >= limit {
					break
				}
				//
				row := table.AddRow(analysisRow(a, word, i, analysis, channels)...)
				table.SetRowEscape(row, analysisEscape(i, analysis))
			}
		}
		// Only colour output for a terminal
		table.AnsiEscapes(termio.IsTerminal(os.Stdout))
		//
		if width, ok := termio.Width(os.Stdout); ok {
			table.FitTo(width)
		}
		//
		table.Print()
		stats.Log("parsing", uint(len(words)))
	},
}

func analysisRow(a *analyzer.Analyzer, word string, index int, analysis analyzer.Analysis, channels []string) []string {
	var (
		row  = make([]string, 2+len(channels))
		form = a.WorkingForm(word)
	)
	//
	if index == 0 {
		row[0] = word
	}
	//
	switch {
	case analysis.Preparsed:
		row[1] = "*"
	case analysis.Degenerate:
		row[1] = "?"
	default:
		row[1] = fmt.Sprintf("%d", analysis.Cost)
	}
	//
	for i, c := range channels {
		row[2+i] = a.Render(analysis, c, form)
	}
	//
	return row
}

// Highlight prepared and unparseable analyses, as well as conflicts.
func analysisEscape(index int, analysis analyzer.Analysis) termio.AnsiEscape {
	escape := termio.NewAnsiEscape()
	//
	if index == 0 {
		escape = escape.Bold()
	}
	//
	switch {
	case analysis.Preparsed:
		return escape.FgColour(termio.TERM_GREEN)
	case analysis.Degenerate:
		return escape.FgColour(termio.TERM_RED)
	case analysis.Conflicted:
		return escape.FgColour(termio.TERM_YELLOW)
	default:
		return escape
	}
}

// Read whitespace-separated words from standard input.
func readWords() []string {
	var (
		words   []string
		scanner = bufio.NewScanner(os.Stdin)
	)
	//
	for scanner.Scan() {
		words = append(words, strings.Fields(scanner.Text())...)
	}
	//
	if err := scanner.Err(); err != nil {
		fmt.Println(err)
		os.Exit(4)
	}
	//
	return words
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringArray("channel", nil, "channel(s) to show (default from configuration)")
	parseCmd.Flags().Uint("max", 5, "maximum number of analyses shown per word (0 for all)")
}
