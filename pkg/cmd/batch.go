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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/go-morpar/pkg/batch"
	"github.com/consensys/go-morpar/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] input_dir output_dir",
	Short: "lemmatise and gloss a directory of documents.",
	Long: `Process every matching document of an input directory, writing the
	lemma and gloss of each word into parallel documents of the output directory.
	For example, "doc.orig.amh" gives "doc.lemma.amh" and "doc.gloss.amh".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg       = readConfig(cmd)
			inputDir  = args[0]
			outputDir = args[1]
			glob      = GetString(cmd, "glob")
			workers   = cfg.NumWorkers()
		)
		//
		if n := GetUint(cmd, "workers"); n != 0 {
			workers = int(n)
		}
		//
		filenames, err := batch.Glob(inputDir, glob)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if len(filenames) == 0 {
			log.Warnf("no files matching %s in %s", glob, inputDir)
		}
		//
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		processor := batch.NewProcessor(buildAnalyzer(cfg), workers)
		failures := 0
		//
		for _, filename := range filenames {
			fmt.Fprintf(os.Stderr, "Processing %s\n", filename)
			//
			progress := termio.NewProgress(os.Stderr, filepath.Base(filename))
			processor.Progress = progress.Update
			//
			written, err := processor.File(context.Background(), filename, outputDir)
			progress.Done()
			//
			if err != nil {
				log.Errorf("%s: %v", filename, err)
				failures++
			} else {
				log.Debugf("wrote %v", written)
			}
		}
		//
		log.Infof("processed %d files (%d words could not be parsed)", len(filenames), processor.Unparseable())
		//
		if failures > 0 {
			os.Exit(4)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().String("glob", batch.DefaultGlob, "pattern matching documents of the input directory")
	batchCmd.Flags().Uint("workers", 0, "number of lines processed in parallel (default from configuration)")
}
