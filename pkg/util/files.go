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
package util

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"path"
)

type compressedFile struct {
	io.Reader
	file *os.File
}

func (p compressedFile) Close() error {
	return p.file.Close()
}

// OpenInputFile opens a resource file for reading, transparently decompressing
// it when it has a ".bz2" extension.
func OpenInputFile(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	// check extension
	switch path.Ext(filename) {
	case ".bz2":
		return compressedFile{bzip2.NewReader(file), file}, nil
	default:
		return file, nil
	}
}

// ReadInputFile reads a resource file as a sequence of lines.
func ReadInputFile(filename string) ([]string, error) {
	file, err := OpenInputFile(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	return ReadLines(file)
}

// ReadLines reads input as a sequence of lines.
func ReadLines(reader io.Reader) ([]string, error) {
	bufReader := bufio.NewReaderSize(reader, 1024*128)
	lines := make([]string, 0)
	// Read input line-by-line
	for {
		line, err := readLine(bufReader)
		// Check whether for EOF
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}
}

// Read a single line
func readLine(reader *bufio.Reader) (string, error) {
	var (
		bytes []byte
		bit   []byte
		err   error
	)
	//
	cont := true
	//
	for cont {
		bit, cont, err = reader.ReadLine()
		if err != nil {
			return "", err
		}

		bytes = append(bytes, bit...)
	}
	// Done
	return string(bytes), nil
}
