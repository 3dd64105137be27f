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

// Package opening holds the opening-claim data model and the Grouper that
// partitions claims by shared evaluation-point sets, the way the polynomial
// commitment scheme needs them batched for a combined quotient.
package opening

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInconsistentClaim is returned when two claims on the same
// (oracle, point) pair disagree on the claimed value.
var ErrInconsistentClaim = errors.New("opening: inconsistent claim for (oracle, point)")

// Oracle is a handle that resolves to either a dense polynomial (prover
// side) or its commitment (verifier side). Grouping is parametric in this
// choice: the same Grouper serves both, as long as Oracle compares and
// orders by the value of what it refers to rather than by storage address.
//
// Equal returns whether two handles refer to the same logical polynomial.
// Less provides a stable total order used only for canonicalization
// (tie-breaking groups deterministically); it need not have any
// cryptographic meaning.
type Oracle interface {
	Equal(other Oracle) bool
	Less(other Oracle) bool
}

// Point wraps a field element so that two distinct Go values holding the
// same field element compare equal and order identically — "deep reference"
// semantics, per the design notes: grouping keys on value, never address.
type Point struct {
	X fr.Element
}

// NewPoint wraps x as a Point handle.
func NewPoint(x fr.Element) Point { return Point{X: x} }

// Equal reports whether two points carry the same field value.
func (p Point) Equal(q Point) bool { return p.X.Equal(&q.X) }

// Less gives the canonical total order over F used to sort point sets.
func (p Point) Less(q Point) bool { return p.X.Cmp(&q.X) < 0 }

// OpeningClaim is an immutable (oracle, point, value) triple with the
// invariant value == P(point) whenever oracle resolves to a polynomial.
// Claims are deduplicated by (oracle, point).
type OpeningClaim struct {
	Oracle Oracle
	Point  Point
	Value  fr.Element
}

// PolyClaims groups every claimed value of one oracle across an ordered list
// of points: one oracle, one value per point in a shared point list.
type PolyClaims struct {
	Oracle Oracle
	Values []fr.Element
}

// OpeningGroup is a set of oracles that share an identical point set,
// together with that point set in canonical (sorted) order.
//
// Invariants: every PolyClaims.Values has length len(Points); every oracle
// in PolyClaims appears at most once; the point multiset equals the set of
// Points, with no duplicates; Points is sorted by Point.Less.
type OpeningGroup struct {
	PolyClaims []PolyClaims
	Points     []Point
}

// SuperPointSet is the sorted union of every point referenced by any claim
// in an input batch, used by the PCS to know which evaluations must appear
// in the transcript.
type SuperPointSet struct {
	points []Point
}

// Points returns the sorted, deduplicated point list.
func (s *SuperPointSet) Points() []Point {
	return s.points
}

// insert adds p, keeping points sorted and free of duplicates. It runs in
// O(log n) to locate the slot and O(n) to shift, matching the ordered
// point-set container the grouper relies on throughout.
func (s *SuperPointSet) insert(p Point) {
	i := searchPoints(s.points, p)
	if i < len(s.points) && s.points[i].Equal(p) {
		return
	}
	s.points = append(s.points, Point{})
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p
}

// searchPoints returns the index of the first point not less than p
// (the conventional lower-bound binary search over the canonical order).
func searchPoints(points []Point, p Point) int {
	lo, hi := 0, len(points)
	for lo < hi {
		mid := (lo + hi) / 2
		if points[mid].Less(p) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// pointSet is the ordered container used within the Grouper to track, per
// oracle, the distinct points it has been opened at. Locating a point is
// O(log n) and insertion shifts the tail in O(n); structural equality between two point sets (used
// to decide whether two oracles share the exact same opening points) is
// O(n) over their canonical order.
type pointSet struct {
	points []Point
}

func (ps *pointSet) insert(p Point) {
	i := searchPoints(ps.points, p)
	if i < len(ps.points) && ps.points[i].Equal(p) {
		return
	}
	ps.points = append(ps.points, Point{})
	copy(ps.points[i+1:], ps.points[i:])
	ps.points[i] = p
}

// equal reports structural equality over the ordered point values.
func (ps *pointSet) equal(other *pointSet) bool {
	if len(ps.points) != len(other.points) {
		return false
	}
	for i := range ps.points {
		if !ps.points[i].Equal(other.points[i]) {
			return false
		}
	}
	return true
}
