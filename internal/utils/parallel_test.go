// Copyright 2026 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelizeCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 997 // prime, deliberately not a multiple of NumCPU
	seen := make([]int, n)
	var mu sync.Mutex

	Parallelize(n, func(start, end int) {
		for i := start; i < end; i++ {
			mu.Lock()
			seen[i]++
			mu.Unlock()
		}
	})

	for i, count := range seen {
		require.Equal(t, 1, count, "index %d must be visited exactly once", i)
	}
}

func TestParallelizeChunksPassesDisjointContiguousRanges(t *testing.T) {
	const total = 100
	var mu sync.Mutex
	var ranges [][2]int

	ParallelizeChunks(total, 4, func(chunkIndex, chunkSize, start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})

	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
	require.Equal(t, 0, ranges[0][0])
	for i := 1; i < len(ranges); i++ {
		require.Equal(t, ranges[i-1][1], ranges[i][0], "chunks must be contiguous")
	}
	require.Equal(t, total, ranges[len(ranges)-1][1])
}
