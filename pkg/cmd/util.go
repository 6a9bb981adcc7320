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
	"path/filepath"

	"github.com/consensys/go-morpar/pkg/analyzer"
	"github.com/consensys/go-morpar/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the configuration file given on the command line (if any), and apply
// any overriding flags.
func readConfig(cmd *cobra.Command) config.Config {
	var (
		cfg      = config.Default()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		log.Debugf("reading configuration %s", filename)
		//
		if cfg, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	// Apply overrides
	if name := GetString(cmd, "grammar"); name != "" {
		cfg.Grammar = name
	}
	//
	for _, dict := range GetStringArray(cmd, "dict") {
		// Command-line paths are relative to the working directory
		if dict, err = filepath.Abs(dict); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		cfg.Dictionaries = append(cfg.Dictionaries, config.DictionaryConfig{Path: dict, Format: config.TSV})
	}
	//
	if GetFlag(cmd, "no-memo") {
		cfg.Memoize = false
	}
	//
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

// Construct the analyzer described by a given configuration.
func buildAnalyzer(cfg config.Config) *analyzer.Analyzer {
	a, err := config.Build(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return a
}
