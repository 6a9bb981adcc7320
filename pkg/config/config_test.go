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
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_Config_01(t *testing.T) {
	config := Default()
	//
	assert.True(t, config.Validate() == nil)
	//
	a, err := Build(config)
	if err != nil {
		t.Fatal(err)
	}
	//
	assert.Contains(t, a.Parse("jumped", "breakdown"), "jump-ed")
}

func Test_Config_02(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stems.tsv", "leap\tjump\nbuild\tmake\n")
	writeFile(t, dir, "counts.tsv", "leap\t1\nthe\t9\n")
	writeFile(t, dir, "preparsed.tsv", "went\twɛnt\tgo-PAST\twent\tgo\tgo-PAST\tirregular\n")
	writeFile(t, dir, "morpar.yaml", `
grammar: english
representation: natural
dictionaries:
  - path: stems.tsv
    format: tsv
preparsed:
  - preparsed.tsv
frequency:
  path: counts.tsv
  format: counts
workers: 2
`)
	//
	config, err := Load(filepath.Join(dir, "morpar.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	// Unspecified settings take their defaults
	assert.Equal(t, 15, config.Frequency.Penalty)
	assert.Equal(t, 2, config.NumWorkers())
	assert.True(t, config.Memoize)
	//
	a, err := Build(config)
	if err != nil {
		t.Fatal(err)
	}
	//
	assert.Equal(t, "did leap", a.Best("jumped", config.Representation))
	assert.Equal(t, 2, a.Analyze("jumped")[0].Cost)
	assert.Equal(t, "go", a.Best("went", "lemma"))
	assert.True(t, a.Analyze("went")[0].Preparsed)
}

func Test_Config_03(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "morpar.yaml", "grammar: english\nrepresentations: gloss\n")
	// Unknown settings are rejected
	_, err := Load(filepath.Join(dir, "morpar.yaml"))
	assert.True(t, err != nil)
}

func Test_Config_04(t *testing.T) {
	config := Default()
	config.Grammar = "klingon"
	config.Dictionaries = []DictionaryConfig{{Path: "stems.csv", Format: "csv"}}
	config.Workers = -1
	//
	err := config.Validate()
	assert.True(t, err != nil)
	// Every problem is reported
	for _, msg := range []string{"unknown grammar", "unknown format \"csv\"", "negative number of workers"} {
		assert.True(t, strings.Contains(err.Error(), msg), msg)
	}
}

func Test_Config_05(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "morpar.yaml", "grammar: amh\nrepresentation: gloss\ndictionaries:\n  - path: missing.tsv\n    format: tsv\n")
	//
	config, err := Load(filepath.Join(dir, "morpar.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	// Relative paths resolved against configuration file
	assert.Equal(t, filepath.Join(dir, "missing.tsv"), config.Resolve("missing.tsv"))
	assert.Equal(t, "/abs/missing.tsv", config.Resolve("/abs/missing.tsv"))
	// Missing resources are reported
	_, err = Build(config)
	assert.True(t, err != nil)
}

func Test_Config_06(t *testing.T) {
	bytes, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	//
	assert.True(t, strings.Contains(string(bytes), "grammar: english"))
	assert.True(t, strings.Contains(string(bytes), "unknown_base: 50"))
}

func writeFile(t *testing.T, dir string, name string, contents string) {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
