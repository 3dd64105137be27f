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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
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

func TestPointEqualityIsByValueNotAddress(t *testing.T) {
	a := NewPoint(elt(7))
	b := NewPoint(elt(7))
	require.True(t, a.Equal(b), "two Points wrapping the same field value must compare equal")
	require.NotSame(t, &a, &b)
}

func TestSuperPointSetInsertDeduplicatesAndSorts(t *testing.T) {
	var s SuperPointSet
	s.insert(NewPoint(elt(3)))
	s.insert(NewPoint(elt(1)))
	s.insert(NewPoint(elt(2)))
	s.insert(NewPoint(elt(1))) // duplicate

	points := s.Points()
	require.Len(t, points, 3)
	require.Equal(t, elt(1).String(), points[0].X.String())
	require.Equal(t, elt(2).String(), points[1].X.String())
	require.Equal(t, elt(3).String(), points[2].X.String())
}

func TestPointSetStructuralEquality(t *testing.T) {
	var a, b pointSet
	a.insert(NewPoint(elt(1)))
	a.insert(NewPoint(elt(2)))

	b.insert(NewPoint(elt(2)))
	b.insert(NewPoint(elt(1)))

	require.True(t, a.equal(&b), "insertion order must not affect structural equality")

	var c pointSet
	c.insert(NewPoint(elt(1)))
	require.False(t, a.equal(&c))
}
