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

// NumeratorCallback and DenominatorCallback compute, for the disjoint row
// range [start, end), the per-row numerator or denominator factor the
// grand-product accumulator folds in at that row. They are pure functions
// of (start, end) — no shared mutable captures — so the worker pool in
// CreateGrandProductPoly can run them over disjoint chunks without
// synchronization until the barrier that follows.
type NumeratorCallback func(start, end int, out []fr.Element)
type DenominatorCallback func(start, end int, out []fr.Element)

// CreateNumeratorCallback builds the numerator callback for one lookup
// argument's grand product: (A_compressed(x_i)+beta)*(S_compressed(x_i)+gamma).
func CreateNumeratorCallback(compressed Pair, beta, gamma fr.Element) NumeratorCallback {
	return func(start, end int, out []fr.Element) {
		for i := start; i < end; i++ {
			var a, s fr.Element
			a.Add(&compressed.Input[i], &beta)
			s.Add(&compressed.Table[i], &gamma)
			out[i-start].Mul(&a, &s)
		}
	}
}

// CreateDenominatorCallback builds the denominator callback for one lookup
// argument's grand product: (A'(x_i)+beta)*(S'(x_i)+gamma).
func CreateDenominatorCallback(permuted Pair, beta, gamma fr.Element) DenominatorCallback {
	return func(start, end int, out []fr.Element) {
		for i := start; i < end; i++ {
			var a, s fr.Element
			a.Add(&permuted.Input[i], &beta)
			s.Add(&permuted.Table[i], &gamma)
			out[i-start].Mul(&a, &s)
		}
	}
}

// CreateGrandProductPoly builds the telescoping accumulator Z, in Lagrange
// (evaluation) form, with Z(omega^0) = 1 and
//
//	Z(omega^i) = Prod_{k<i} numerator(k) / denominator(k).
//
// Numerator and denominator factors for every row are computed in parallel
// over disjoint chunks of the domain (no synchronization between workers
// within one invocation); a barrier then separates that computation from
// the strictly sequential running-product combination.
func CreateGrandProductPoly(domainSize int, numerator NumeratorCallback, denominator DenominatorCallback) []fr.Element {
	num := make([]fr.Element, domainSize)
	den := make([]fr.Element, domainSize)

	utils.ParallelizeChunks(domainSize, 0, func(chunkIndex, chunkSize, start, end int) {
		numerator(start, end, num[start:end])
		denominator(start, end, den[start:end])
	})

	// Barrier: every chunk's numerator/denominator factors are resolved
	// before the sequential running-product combination below begins.
	denInv := fr.BatchInvert(den)

	z := make([]fr.Element, domainSize)
	if domainSize == 0 {
		return z
	}
	z[0].SetOne()
	for i := 1; i < domainSize; i++ {
		var step fr.Element
		step.Mul(&num[i-1], &denInv[i-1])
		z[i].Mul(&z[i-1], &step)
	}
	return z
}
