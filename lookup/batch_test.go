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
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/stretchr/testify/require"

	"github.com/vivianjeng/tachyon/internal/blinder"
	"github.com/vivianjeng/tachyon/internal/pcs"
	"github.com/vivianjeng/tachyon/internal/transcript"
)

func TestBatchCompressPairsAppliesToEveryInstance(t *testing.T) {
	domainSize := 2
	arg := Argument{
		InputExpressions: []Expression{indexedExpr([]int64{1, 2})},
		TableExpressions: []Expression{indexedExpr([]int64{1, 2})},
	}
	provers := []*Prover{NewProver(domainSize), NewProver(domainSize)}
	BatchCompressPairs(provers, domainSize, []Argument{arg}, elt(1))

	for _, p := range provers {
		require.Equal(t, stateCompressed, p.state)
	}
}

func TestBatchCommitPermutedPairsCommitsEveryInstance(t *testing.T) {
	domainSize := 2
	arg := Argument{
		InputExpressions: []Expression{indexedExpr([]int64{1, 2})},
		TableExpressions: []Expression{indexedExpr([]int64{1, 2})},
	}

	srs, err := kzg.NewSRS(8, big.NewInt(3))
	require.NoError(t, err)
	tr := transcript.New("commit")
	backend := pcs.New(srs, tr)
	b := blinder.New()

	provers := []*Prover{NewProver(domainSize), NewProver(domainSize)}
	BatchCompressPairs(provers, domainSize, []Argument{arg}, elt(1))
	for _, p := range provers {
		require.NoError(t, p.PermutePairs(b))
	}

	require.NoError(t, BatchCommitPermutedPairs(provers, backend, "commit"))
}
