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

package lookup

import (
	"errors"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrPermutationFailure is returned when the compressed input column's
// multiset of values is not contained in the compressed table column's —
// some row of the circuit's input is simply absent from the table, which
// means the circuit itself is invalid.
var ErrPermutationFailure = errors.New("lookup: permutation failure, input not contained in table")

// PermuteExpressionPair returns the canonical halo2-style lookup
// permutation (A', S') of a compressed (input, table) pair.
//
// A' is the input column sorted. S' is built in two passes: the first row
// of every run of equal values in A' claims one matching occurrence out of
// the table's value histogram; every other row is left open. The second
// pass walks the table in its original order and drops each still-unclaimed
// value into the next open row of S'. The result is a column-wise
// reordering under which every row either has A'[i] == S'[i] (a claimed
// occurrence) or carries a genuine leftover table value — exactly what the
// grand-product argument needs to certify set membership with only
// adjacent-row comparisons.
func PermuteExpressionPair(pair Pair) (Pair, error) {
	n := len(pair.Input)
	if len(pair.Table) != n {
		return Pair{}, errors.New("lookup: input/table length mismatch")
	}

	sortedInput := make([]fr.Element, n)
	copy(sortedInput, pair.Input)
	sort.Slice(sortedInput, func(i, j int) bool {
		return sortedInput[i].Cmp(&sortedInput[j]) < 0
	})

	leftover := make(map[fr.Element]int, n)
	for _, v := range pair.Table {
		leftover[v]++
	}

	permutedTable := make([]fr.Element, n)
	filled := make([]bool, n)
	for i := 0; i < n; i++ {
		if i == 0 || !sortedInput[i].Equal(&sortedInput[i-1]) {
			v := sortedInput[i]
			if leftover[v] == 0 {
				return Pair{}, ErrPermutationFailure
			}
			leftover[v]--
			permutedTable[i] = v
			filled[i] = true
		}
	}

	tableIdx := 0
	for i := 0; i < n; i++ {
		if filled[i] {
			continue
		}
		for tableIdx < len(pair.Table) {
			v := pair.Table[tableIdx]
			tableIdx++
			if leftover[v] > 0 {
				leftover[v]--
				permutedTable[i] = v
				filled[i] = true
				break
			}
		}
		if !filled[i] {
			// Every value the input needed was claimed above; any value
			// still unaccounted for here means the table had fewer rows
			// than the input demanded, which the first pass should already
			// have caught. Reaching this is an invariant violation.
			return Pair{}, ErrPermutationFailure
		}
	}

	return Pair{Input: sortedInput, Table: permutedTable}, nil
}
