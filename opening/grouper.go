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

package opening

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vivianjeng/tachyon/logger"
)

// Grouper partitions a batch of OpeningClaims into groups that share an
// identical point set, and records the super-set of every distinct point
// seen. It runs in two deterministic passes rather than hashing point sets,
// which would collapse a polynomial opened at the same point twice before
// the duplicate-with-differing-value case can be caught.
type Grouper struct {
	superPointSet SuperPointSet
}

// NewGrouper returns a fresh Grouper.
func NewGrouper() *Grouper { return &Grouper{} }

// SuperPointSet returns the sorted union of every point seen by
// GroupByPolyAndPoints so far.
func (g *Grouper) SuperPointSet() *SuperPointSet { return &g.superPointSet }

type oracleGroup struct {
	oracle Oracle
	points pointSet
}

type pointGroup struct {
	points  pointSet
	oracles []Oracle
}

// GroupByPolyAndPoints runs the grouping algorithm over claims and returns
// the resulting OpeningGroups. Claims may arrive in any order; the returned
// groups preserve the order in which distinct oracles and distinct point
// sets were first encountered.
func (g *Grouper) GroupByPolyAndPoints(claims []OpeningClaim) ([]OpeningGroup, error) {
	byPoly, err := g.groupByPoly(claims)
	if err != nil {
		return nil, err
	}
	byPoints := groupByPoints(byPoly)
	return materialize(claims, byPoints), nil
}

// groupByPoly is pass 1: build an ordered list of (oracle, point-set)
// entries, growing the super point set as a side effect, and reject any
// (oracle, point) pair that appears twice with differing claimed values.
func (g *Grouper) groupByPoly(claims []OpeningClaim) ([]oracleGroup, error) {
	var groups []oracleGroup
	for _, claim := range claims {
		g.superPointSet.insert(claim.Point)

		idx := -1
		for i := range groups {
			if groups[i].oracle.Equal(claim.Oracle) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, oracleGroup{oracle: claim.Oracle})
			idx = len(groups) - 1
		}

		for _, other := range claims {
			if other.Oracle.Equal(claim.Oracle) && other.Point.Equal(claim.Point) && !other.Value.Equal(&claim.Value) {
				logger.Logger(logger.ComponentOpening).Warn().Msg("opening: rejecting inconsistent claim")
				return nil, ErrInconsistentClaim
			}
		}

		groups[idx].points.insert(claim.Point)
	}
	return groups, nil
}

// groupByPoints is pass 2: build a list of (point-set, oracles) entries by
// structural equality of the ordered point values.
func groupByPoints(byPoly []oracleGroup) []pointGroup {
	var groups []pointGroup
	for _, og := range byPoly {
		idx := -1
		for i := range groups {
			if groups[i].points.equal(&og.points) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, pointGroup{points: og.points})
			idx = len(groups) - 1
		}
		groups[idx].oracles = append(groups[idx].oracles, og.oracle)
	}
	return groups
}

// materialize resolves, for every (point-set, oracles) entry, the claimed
// value of each oracle at each point in canonical order, assembling the
// final OpeningGroups. Any lookup miss here is a programmer error: by
// construction, groupByPoly has already recorded every (oracle, point) pair
// it saw, so the value must exist in claims.
func materialize(claims []OpeningClaim, groups []pointGroup) []OpeningGroup {
	out := make([]OpeningGroup, 0, len(groups))
	for _, pg := range groups {
		points := pg.points.points

		polyClaims := make([]PolyClaims, 0, len(pg.oracles))
		for _, oracle := range pg.oracles {
			values := make([]fr.Element, len(points))
			for j, point := range points {
				values[j] = lookupValue(claims, oracle, point)
			}
			polyClaims = append(polyClaims, PolyClaims{Oracle: oracle, Values: values})
		}

		out = append(out, OpeningGroup{PolyClaims: polyClaims, Points: points})
	}
	return out
}

func lookupValue(claims []OpeningClaim, oracle Oracle, point Point) fr.Element {
	for _, c := range claims {
		if c.Oracle.Equal(oracle) && c.Point.Equal(point) {
			return c.Value
		}
	}
	panic("opening: materialize found no claim for a point recorded during grouping")
}
