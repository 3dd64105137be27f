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

// Package lookup drives a PLONK-style lookup argument through its fixed
// pipeline (compress -> permute -> commit -> grand-product -> evaluate ->
// open), feeding the opening claims it produces to the opening package's
// Grouper and quotient.Build.
package lookup

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Expression evaluates one column of a lookup argument at row i of the
// domain, given the circuit's evaluation tables and any challenges drawn so
// far. It is a black-box subroutine: CompressExpressions treats it as an
// opaque per-row evaluator and never inspects its internals.
type Expression func(row int) fr.Element

// Argument is one PLONK-style lookup constraint: every row of the input
// columns, compressed by theta, must appear among the rows of the table
// columns, compressed the same way.
type Argument struct {
	InputExpressions []Expression
	TableExpressions []Expression
}
