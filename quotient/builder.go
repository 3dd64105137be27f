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

// Package quotient builds the combined quotient polynomial that a
// polynomial commitment scheme consumes for a single OpeningGroup: one low
// degree extension per oracle, folded against a verifier challenge and
// divided by the group's vanishing polynomial.
package quotient

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vivianjeng/tachyon/internal/poly"
	"github.com/vivianjeng/tachyon/opening"
)

// ErrInterpolationFailure is returned when Lagrange interpolation cannot
// produce a low degree extension (non-distinct points, rank deficiency).
var ErrInterpolationFailure = errors.New("quotient: interpolation failure")

// ErrDivisibilityFailure is returned when the vanishing polynomial does not
// divide the combined numerator exactly, i.e. the claimed values were not
// the true evaluations of the corresponding oracles.
var ErrDivisibilityFailure = errors.New("quotient: divisibility failure")

// ErrEmptyGroup is returned for a group with no oracles; the Grouper never
// produces one, so a caller hitting this has bypassed it.
var ErrEmptyGroup = errors.New("quotient: empty opening group")

// Result is the per-group output the PCS consumes.
type Result struct {
	// LowDegreeExtensions[i] is Rᵢ(X), the LDE of PolyClaims[i].
	LowDegreeExtensions []poly.Polynomial
	// H is the combined quotient H(X) = N(X) / Z(X).
	H poly.Polynomial
}

// Build constructs H(X) = N(X)/Z(X) for one OpeningGroup under challenge r,
// where N(X) = Sum_i r^i (Pᵢ(X) - Rᵢ(X)) and Z(X) = Prod_j (X - xⱼ).
//
// polyOf resolves a group's opaque opening.Oracle back to the dense
// polynomial it names; the Grouper is oracle-agnostic (it also serves
// commitment-only verifier oracles), so the builder takes this resolver
// rather than assuming every Oracle implementation carries a polynomial.
func Build(group opening.OpeningGroup, r fr.Element, polyOf func(opening.Oracle) poly.Polynomial) (*Result, error) {
	if len(group.PolyClaims) == 0 {
		return nil, ErrEmptyGroup
	}

	points := make([]fr.Element, len(group.Points))
	for i, p := range group.Points {
		points[i] = p.X
	}

	ldes := make([]poly.Polynomial, len(group.PolyClaims))
	numerators := make([]poly.Polynomial, len(group.PolyClaims))
	for i, pc := range group.PolyClaims {
		lde, err := poly.Interpolate(points, pc.Values)
		if err != nil {
			return nil, fmt.Errorf("%w: oracle %d: %v", ErrInterpolationFailure, i, err)
		}
		ldes[i] = lde

		p := polyOf(pc.Oracle)
		numerators[i] = poly.Sub(p, lde)
	}

	// N(X) = n0 + r(n1 + r(n2 + ...)), Horner form of the r-power linear
	// combination; equivalent to (and cheaper than) allocating r^i directly.
	n := poly.LinearizeInPlace(numerators, r)

	h, err := poly.DivideExact(n, points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDivisibilityFailure, err)
	}

	return &Result{LowDegreeExtensions: ldes, H: h}, nil
}
