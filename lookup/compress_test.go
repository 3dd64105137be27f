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

func elt(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func eltStr(v int64) string {
	e := elt(v)
	return e.String()
}

func constExpr(v int64) Expression {
	c := elt(v)
	return func(row int) fr.Element { return c }
}

func TestCompressExpressionsWeightsByDescendingThetaPower(t *testing.T) {
	// Two expressions, each row constant: e0 = 2, e1 = 3. theta = 10.
	// compressed = theta^1 * e0 + theta^0 * e1 = 23.
	exprs := []Expression{constExpr(2), constExpr(3)}
	out := CompressExpressions(4, exprs, elt(10))
	require.Len(t, out, 4)
	for _, v := range out {
		require.Equal(t, elt(23).String(), v.String())
	}
}

func TestCompressExpressionsEmptyExpressionsIsZero(t *testing.T) {
	out := CompressExpressions(3, nil, elt(10))
	require.Len(t, out, 3)
	for _, v := range out {
		require.True(t, v.IsZero())
	}
}

func TestCompressPairCompressesBothColumns(t *testing.T) {
	arg := Argument{
		InputExpressions: []Expression{constExpr(1)},
		TableExpressions: []Expression{constExpr(2)},
	}
	pair := CompressPair(2, arg, elt(10))
	require.Len(t, pair.Input, 2)
	require.Len(t, pair.Table, 2)
	require.Equal(t, elt(1).String(), pair.Input[0].String())
	require.Equal(t, elt(2).String(), pair.Table[0].String())
}
