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
	"runtime"
	"sync"
)

// Parallelize splits [0, nbIterations) into chunks and dispatches fn over a
// worker pool sized to the host's CPU count, waiting for every chunk to
// finish before returning. Each call of fn sees a disjoint index range; the
// row-by-row expression compression is built on it.
func Parallelize(nbIterations int, fn func(start, end int), maxCPU ...int) {
	nbTasks := runtime.NumCPU()
	if len(maxCPU) == 1 {
		nbTasks = maxCPU[0]
	}
	if nbTasks <= 0 {
		nbTasks = 1
	}
	if nbIterations <= 0 {
		return
	}

	nbIterationsPerCpus := nbIterations / nbTasks
	// more CPUs than tasks: fall back to one iteration per task.
	if nbIterationsPerCpus < 1 {
		nbIterationsPerCpus = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup

	extraTasks := 0
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		start := i*nbIterationsPerCpus + extraTasksOffset
		end := start + nbIterationsPerCpus
		if extraTasks < (nbIterations - nbTasks*nbIterationsPerCpus) {
			extraTasks++
			end++
		}
		extraTasksOffset += end - start - nbIterationsPerCpus
		if start == end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}

// ChunkCallback is a pure function over a disjoint slice of a field-element
// vector, addressed by its chunk index and chunk size. The grand-product
// numerator and denominator callbacks are expressed this way so that no
// captured state is shared between workers.
type ChunkCallback func(chunkIndex, chunkSize, start, end int)

// ParallelizeChunks partitions [0, total) into contiguous chunks of
// ceil(total/nbChunks) elements (the last chunk is shorter when total is not
// a multiple, and fewer than nbChunks chunks run when the rounding leaves
// none for the tail) and runs fn over each chunk on its own goroutine,
// returning once every chunk has completed.
func ParallelizeChunks(total, nbChunks int, fn ChunkCallback) {
	if total <= 0 {
		return
	}
	if nbChunks <= 0 {
		nbChunks = runtime.NumCPU()
	}
	if nbChunks > total {
		nbChunks = total
	}

	chunkSize := (total + nbChunks - 1) / nbChunks

	var wg sync.WaitGroup
	for c := 0; c < nbChunks; c++ {
		start := c * chunkSize
		if start >= total {
			break
		}
		end := start + chunkSize
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(chunkIndex, start, end int) {
			defer wg.Done()
			fn(chunkIndex, chunkSize, start, end)
		}(c, start, end)
	}
	wg.Wait()
}
