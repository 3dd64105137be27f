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

// Package poly implements the small surface of dense-polynomial arithmetic
// over github.com/consensys/gnark-crypto/ecc/bn254/fr that the opening
// aggregator needs: evaluation, subtraction, construction from roots,
// Lagrange interpolation and exact division by a vanishing polynomial. The
// FFT-based machinery (domains, coset evaluation, commitment) lives entirely
// in gnark-crypto and is treated as opaque by this package.
package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrNotDivisible is returned when a vanishing polynomial does not divide a
// numerator exactly, i.e. the numerator does not vanish at every root.
var ErrNotDivisible = errors.New("poly: vanishing polynomial does not divide numerator exactly")

// ErrNonDistinctPoints is returned by Interpolate when two evaluation points
// collide, making the Vandermonde system singular.
var ErrNonDistinctPoints = errors.New("poly: interpolation points are not distinct")

// Polynomial is a dense univariate polynomial in coefficient form,
// Polynomial[i] being the coefficient of X^i.
type Polynomial []fr.Element

// Clone returns an independent copy.
func (p Polynomial) Clone() Polynomial {
	q := make(Polynomial, len(p))
	copy(q, p)
	return q
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x *fr.Element) fr.Element {
	var r fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		r.Mul(&r, x).Add(&r, &p[i])
	}
	return r
}

// Sub returns p - q, zero-extending the shorter operand.
func Sub(p, q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		r[i].Sub(&a, &b)
	}
	return r
}

// LinearizeInPlace folds numerators[1:] into numerators[0] using Horner's
// rule on the challenge r: result = n0 + r(n1 + r(n2 + ...)). Each Horner step
// allocates a fresh polynomial, so the numerators are left unmodified; with a
// single numerator that numerator itself is returned.
func LinearizeInPlace(numerators []Polynomial, r fr.Element) Polynomial {
	if len(numerators) == 0 {
		return nil
	}
	acc := numerators[len(numerators)-1]
	for i := len(numerators) - 2; i >= 0; i-- {
		acc = addScaled(numerators[i], acc, r)
	}
	return acc
}

// addScaled returns a + r*b, zero-extending the shorter operand.
func addScaled(a, b Polynomial, r fr.Element) Polynomial {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var bi fr.Element
		if i < len(b) {
			bi.Mul(&b[i], &r)
		}
		if i < len(a) {
			out[i].Add(&a[i], &bi)
		} else {
			out[i] = bi
		}
	}
	return out
}

// FromRoots builds the monic vanishing polynomial Z(X) = Prod (X - roots[i]).
func FromRoots(roots []fr.Element) Polynomial {
	z := make(Polynomial, 1, len(roots)+1)
	z[0].SetOne()
	for _, root := range roots {
		z = mulLinear(z, root)
	}
	return z
}

// mulLinear multiplies p by the monic linear factor (X - root).
func mulLinear(p Polynomial, root fr.Element) Polynomial {
	out := make(Polynomial, len(p)+1)
	for i, c := range p {
		var t fr.Element
		t.Mul(&c, &root)
		out[i].Sub(&out[i], &t)
		out[i+1].Add(&out[i+1], &c)
	}
	return out
}

// Interpolate returns the unique polynomial of degree < len(points) agreeing
// with points[i] -> values[i], via Lagrange interpolation in the monomial
// basis. Points must be pairwise distinct.
func Interpolate(points, values []fr.Element) (Polynomial, error) {
	if len(points) != len(values) {
		return nil, errors.New("poly: points/values length mismatch")
	}
	k := len(points)
	if k == 0 {
		return Polynomial{}, nil
	}
	if err := requireDistinct(points); err != nil {
		return nil, err
	}

	result := make(Polynomial, k)
	for i := 0; i < k; i++ {
		// basis_i(X) = Prod_{j != i} (X - x_j) / (x_i - x_j)
		var one fr.Element
		one.SetOne()
		basis := Polynomial{one}
		var denom fr.Element
		denom.SetOne()
		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			basis = mulLinear(basis, points[j])
			var diff fr.Element
			diff.Sub(&points[i], &points[j])
			denom.Mul(&denom, &diff)
		}
		denom.Inverse(&denom)
		var coeff fr.Element
		coeff.Mul(&values[i], &denom)
		for d := range basis {
			var t fr.Element
			t.Mul(&basis[d], &coeff)
			result[d].Add(&result[d], &t)
		}
	}
	return result, nil
}

func requireDistinct(points []fr.Element) error {
	seen := make(map[fr.Element]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return ErrNonDistinctPoints
		}
		seen[p] = struct{}{}
	}
	return nil
}

// DivideExact divides n by the vanishing polynomial of roots, returning the
// quotient H such that H * Z = n exactly. It fails with ErrNotDivisible if n
// does not vanish at every root, which signals an inconsistent claim set
// upstream rather than a bug in the division itself.
func DivideExact(n Polynomial, roots []fr.Element) (Polynomial, error) {
	z := FromRoots(roots)
	q, r := divRem(n, z)
	for i := range r {
		if !r[i].IsZero() {
			return nil, ErrNotDivisible
		}
	}
	return q, nil
}

// divRem performs schoolbook polynomial long division, returning (quotient,
// remainder) such that n = q*d + r. The leading coefficient of d is inverted
// once, so d need not be monic; a zero d yields an empty quotient and r = n.
func divRem(n, d Polynomial) (q, r Polynomial) {
	r = n.Clone()
	degD := degree(d)
	if degD < 0 {
		return Polynomial{}, r
	}
	degN := degree(r)
	if degN < degD {
		return Polynomial{}, r
	}

	lead := d[degD]
	var leadInv fr.Element
	leadInv.Inverse(&lead)

	q = make(Polynomial, degN-degD+1)
	for degN >= degD {
		var coeff fr.Element
		coeff.Mul(&r[degN], &leadInv)
		q[degN-degD] = coeff
		for i := 0; i <= degD; i++ {
			var t fr.Element
			t.Mul(&coeff, &d[i])
			r[degN-degD+i].Sub(&r[degN-degD+i], &t)
		}
		degN = degree(r)
	}
	return q, r
}

func degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}
