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
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/consensys/go-morpar/pkg/util/assert"
)

func Test_ParMap_01(t *testing.T) {
	words := []string{"jumped", "untied", "cats", "dog"}
	//
	for _, workers := range []int{0, 1, 2, 8} {
		results, err := ParMap(context.Background(), words, workers, func(w string) (string, error) {
			return strings.ToUpper(w), nil
		})
		//
		assert.True(t, err == nil)
		assert.Equal(t, []string{"JUMPED", "UNTIED", "CATS", "DOG"}, results)
	}
}

func Test_ParMap_02(t *testing.T) {
	var count atomic.Int32
	//
	_, err := ParMap(context.Background(), []int{1, 2, 3, 4}, 1, func(i int) (int, error) {
		count.Add(1)
		//
		if i == 2 {
			return 0, errors.New("failed")
		}
		//
		return i, nil
	})
	//
	assert.Equal(t, "failed", err.Error())
	// Nothing is started after the failure
	assert.True(t, count.Load() <= 3)
}

func Test_ParMap_03(t *testing.T) {
	results, err := ParMap(context.Background(), []int{}, 4, func(i int) (int, error) { return i, nil })
	//
	assert.True(t, err == nil)
	assert.Equal(t, 0, len(results))
}
