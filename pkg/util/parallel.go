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

	"golang.org/x/sync/errgroup"
)

// ParMap applies a function to every item of a worklist in parallel, using at
// most a given number of go-routines (or one per item when this is not
// positive).  Results are returned in the order of the worklist.  The first
// error encountered is returned, after which no further items are started.
func ParMap[T any, R any](ctx context.Context, worklist []T, workers int, fn func(T) (R, error)) ([]R, error) {
	var (
		results  = make([]R, len(worklist))
		group, c = errgroup.WithContext(ctx)
	)
	//
	if workers > 0 {
		group.SetLimit(workers)
	}
	//
	for i, item := range worklist {
		// Stop scheduling once a job has failed
		if c.Err() != nil {
			break
		}
		//
		group.Go(func() error {
			var err error
			// Each job writes only its own slot
			results[i], err = fn(item)
			//
			return err
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}
