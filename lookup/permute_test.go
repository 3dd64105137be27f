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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func values(xs ...int64) []fr.Element {
	out := make([]fr.Element, len(xs))
	for i, x := range xs {
		out[i] = elt(x)
	}
	return out
}

// S5's input column, permuted: every input value must be claimable against
// the table's histogram.
func TestPermuteExpressionPairSucceedsWhenContained(t *testing.T) {
	pair := Pair{
		Input: values(1, 2, 3, 1),
		Table: values(1, 2, 3, 4),
	}
	permuted, err := PermuteExpressionPair(pair)
	require.NoError(t, err)
	require.Len(t, permuted.Input, 4)
	require.Len(t, permuted.Table, 4)

	// A' is the input column sorted.
	require.Equal(t, values(1, 1, 2, 3), permuted.Input)

	// Every value of the table column appears somewhere in S'.
	seen := map[string]bool{}
	for _, v := range permuted.Table {
		seen[v.String()] = true
	}
	for _, v := range pair.Table {
		require.True(t, seen[v.String()], "every table value must survive the permutation")
	}
}

func TestPermuteExpressionPairFailsWhenNotContained(t *testing.T) {
	pair := Pair{
		Input: values(1, 2, 5),
		Table: values(1, 2, 3),
	}
	_, err := PermuteExpressionPair(pair)
	require.ErrorIs(t, err, ErrPermutationFailure)
}

func TestPermuteExpressionPairRejectsLengthMismatch(t *testing.T) {
	pair := Pair{
		Input: values(1, 2),
		Table: values(1),
	}
	_, err := PermuteExpressionPair(pair)
	require.Error(t, err)
}
