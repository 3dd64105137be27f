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
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vivianjeng/tachyon/internal/utils"
)

// Pair holds a lookup argument's compressed (or permuted) input/table
// columns, in Lagrange (evaluation) form over the circuit's domain.
type Pair struct {
	Input []fr.Element
	Table []fr.Element
}

// CompressExpressions computes the theta-linear combination of expressions
// over domainSize rows:
//
//	compressed(X) = theta^(m-1) e_0(X) + theta^(m-2) e_1(X) + ... + e_{m-1}(X)
//
// evaluated row by row, parallelized over disjoint row ranges.
func CompressExpressions(domainSize int, expressions []Expression, theta fr.Element) []fr.Element {
	out := make([]fr.Element, domainSize)
	if len(expressions) == 0 {
		return out
	}

	// theta powers, highest degree first: thetaPowers[0] == theta^(m-1).
	thetaPowers := make([]fr.Element, len(expressions))
	thetaPowers[len(expressions)-1].SetOne()
	for i := len(expressions) - 2; i >= 0; i-- {
		thetaPowers[i].Mul(&thetaPowers[i+1], &theta)
	}

	utils.Parallelize(domainSize, func(start, end int) {
		for row := start; row < end; row++ {
			var acc fr.Element
			for j, expr := range expressions {
				v := expr(row)
				v.Mul(&v, &thetaPowers[j])
				acc.Add(&acc, &v)
			}
			out[row] = acc
		}
	})
	return out
}

// CompressPair compresses both the input and table expressions of a single
// lookup argument under the same theta challenge.
func CompressPair(domainSize int, argument Argument, theta fr.Element) Pair {
	return Pair{
		Input: CompressExpressions(domainSize, argument.InputExpressions, theta),
		Table: CompressExpressions(domainSize, argument.TableExpressions, theta),
	}
}

// BatchCompressPairs compresses the same set of arguments for every prover
// in an aggregated proof, applying the shared theta challenge to each
// instance's own evaluation tables.
func BatchCompressPairs(provers []*Prover, domainSize int, arguments []Argument, theta fr.Element) {
	for _, p := range provers {
		p.CompressPairs(domainSize, arguments, theta)
	}
}
