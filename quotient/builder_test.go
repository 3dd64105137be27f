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

package quotient

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/vivianjeng/tachyon/internal/poly"
	"github.com/vivianjeng/tachyon/opening"
)

func elt(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func eltStr(v int64) string {
	e := elt(v)
	return e.String()
}

// S1 — minimal quotient. P(X) = 2X + 3, point x0 = 5, claimed value 13.
// Expect R0(X) = 13, H(X) = 2.
func TestBuildMinimalQuotient(t *testing.T) {
	p := poly.Polynomial{elt(3), elt(2)}
	oracle := opening.PolyOracle{Name: "p", Poly: p}

	group := opening.OpeningGroup{
		PolyClaims: []opening.PolyClaims{{Oracle: oracle, Values: []fr.Element{elt(13)}}},
		Points:     []opening.Point{opening.NewPoint(elt(5))},
	}

	result, err := Build(group, elt(1), func(o opening.Oracle) poly.Polynomial {
		return o.(opening.PolyOracle).Poly
	})
	require.NoError(t, err)

	require.Len(t, result.LowDegreeExtensions, 1)
	require.Equal(t, elt(13).String(), result.LowDegreeExtensions[0][0].String())

	require.Len(t, result.H, 1)
	require.Equal(t, elt(2).String(), result.H[0].String())
}

// S3 — linearization. Two oracles both opened at {0,1}, challenge r = 5,
// with values matching each oracle's true evaluation exactly: N(X) = 0,
// H(X) = 0.
func TestBuildLinearizationZeroNumerator(t *testing.T) {
	p0 := poly.Polynomial{elt(0), elt(1)} // P0(X) = X
	p1 := poly.Polynomial{elt(1), elt(1)} // P1(X) = X + 1

	o0 := opening.PolyOracle{Name: "p0", Poly: p0}
	o1 := opening.PolyOracle{Name: "p1", Poly: p1}

	points := []opening.Point{opening.NewPoint(elt(0)), opening.NewPoint(elt(1))}
	group := opening.OpeningGroup{
		PolyClaims: []opening.PolyClaims{
			{Oracle: o0, Values: []fr.Element{elt(0), elt(1)}},
			{Oracle: o1, Values: []fr.Element{elt(1), elt(2)}},
		},
		Points: points,
	}

	result, err := Build(group, elt(5), func(o opening.Oracle) poly.Polynomial {
		return o.(opening.PolyOracle).Poly
	})
	require.NoError(t, err)

	for _, h := range result.H {
		require.True(t, h.IsZero())
	}

	// Invariant 6 — interpolation sanity: Ri(xj) == vi,j.
	for i, pc := range group.PolyClaims {
		for j, x := range points {
			got := result.LowDegreeExtensions[i].Eval(&x.X)
			require.Equal(t, pc.Values[j].String(), got.String())
		}
	}
}

func TestBuildRejectsEmptyGroup(t *testing.T) {
	_, err := Build(opening.OpeningGroup{}, elt(1), nil)
	require.ErrorIs(t, err, ErrEmptyGroup)
}

func TestBuildDivisibilityFailureOnWrongClaim(t *testing.T) {
	p := poly.Polynomial{elt(3), elt(2)} // P(X) = 2X + 3
	oracle := opening.PolyOracle{Name: "p", Poly: p}

	group := opening.OpeningGroup{
		// P(5) = 13, but we claim 99 — the LDE R(X) = 99 is a constant, and
		// N(X) = P(X) - 99 does not vanish at X = 5.
		PolyClaims: []opening.PolyClaims{{Oracle: oracle, Values: []fr.Element{elt(99)}}},
		Points:     []opening.Point{opening.NewPoint(elt(5))},
	}

	_, err := Build(group, elt(1), func(o opening.Oracle) poly.Polynomial {
		return o.(opening.PolyOracle).Poly
	})
	require.ErrorIs(t, err, ErrDivisibilityFailure)
}

// Invariant 5 — exactness: for any polynomial and any single opening point,
// as long as the claimed value is that polynomial's true evaluation, the
// quotient H built from it must satisfy H(t)*(t-x) + value == P(t) at every
// other point t, not just at the points already checked by the table cases
// above.
func TestBuildQuotientSatisfiesDivisionIdentityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("H(t)*(t-x) + value == P(t) for any probe point t != x", prop.ForAll(
		func(pCoeffs []int64, x, probe int64) bool {
			if probe == x {
				return true // degenerate probe, skip
			}
			p := make(poly.Polynomial, len(pCoeffs))
			for i, c := range pCoeffs {
				p[i] = elt(c)
			}
			xElt := elt(x)
			value := p.Eval(&xElt)
			oracle := opening.PolyOracle{Name: "p", Poly: p}

			group := opening.OpeningGroup{
				PolyClaims: []opening.PolyClaims{{Oracle: oracle, Values: []fr.Element{value}}},
				Points:     []opening.Point{opening.NewPoint(xElt)},
			}

			result, err := Build(group, elt(1), func(o opening.Oracle) poly.Polynomial {
				return o.(opening.PolyOracle).Poly
			})
			if err != nil {
				return false
			}

			probeElt := elt(probe)
			lhs := result.H.Eval(&probeElt)
			lhs.Mul(&lhs, new(fr.Element).Sub(&probeElt, &xElt))
			lhs.Add(&lhs, &value)

			rhs := p.Eval(&probeElt)
			return lhs.Equal(&rhs)
		},
		gen.SliceOfN(4, gen.Int64Range(-1000, 1000)),
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
